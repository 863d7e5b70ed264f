package vfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
)

// Registry is an immutable table of configured mount points.
//
// It is built once at startup from external configuration and never
// mutated afterwards, which makes concurrent lookups race-free without
// any locking. Configuration changes are handled by constructing a
// whole new Registry and swapping it atomically through a Holder.
//
// Example usage:
//
//	reg, err := vfs.NewRegistry([]vfs.MountPoint{
//	    {ID: "docs", Root: "/srv/docs", Description: "Documentation"},
//	})
//	if err != nil {
//	    return err
//	}
//	mp, _ := reg.Lookup("docs")
type Registry struct {
	mounts map[string]*MountPoint
	order  []string
}

// NewRegistry builds a registry from the given mount declarations.
//
// Construction fails if any id is empty or duplicated, or if any root
// does not exist or is not a directory. Each root is canonicalized
// (made absolute, symlinks resolved) before being stored; the resolver
// relies on roots being canonical.
func NewRegistry(mounts []MountPoint) (*Registry, error) {
	reg := &Registry{
		mounts: make(map[string]*MountPoint, len(mounts)),
		order:  make([]string, 0, len(mounts)),
	}

	for _, m := range mounts {
		if m.ID == "" {
			return nil, fmt.Errorf("cannot register mount with empty id")
		}
		if _, exists := reg.mounts[m.ID]; exists {
			return nil, fmt.Errorf("mount %q already registered", m.ID)
		}

		root, err := canonicalRoot(m.Root)
		if err != nil {
			return nil, fmt.Errorf("mount %q: %w", m.ID, err)
		}

		mp := &MountPoint{ID: m.ID, Root: root, Description: m.Description}
		reg.mounts[m.ID] = mp
		reg.order = append(reg.order, m.ID)
	}

	return reg, nil
}

// canonicalRoot canonicalizes a configured mount root and verifies it
// refers to an existing directory.
func canonicalRoot(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("mount root must not be empty")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid mount root %q: %w", root, err)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("mount root %q does not resolve: %w", root, err)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", fmt.Errorf("mount root %q is not accessible: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("mount root %q is not a directory", root)
	}

	return canonical, nil
}

// Lookup retrieves a mount point by id.
// Returns an ErrInvalidMount error if the id is not configured.
func (r *Registry) Lookup(id string) (*MountPoint, error) {
	mp, exists := r.mounts[id]
	if !exists {
		return nil, NewInvalidMountError(id)
	}
	return mp, nil
}

// List returns all mount points in declaration order.
// The returned slice is a copy and safe to modify.
func (r *Registry) List() []*MountPoint {
	out := make([]*MountPoint, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.mounts[id])
	}
	return out
}

// Count returns the number of configured mounts.
func (r *Registry) Count() int {
	return len(r.mounts)
}

// Holder publishes the current Registry to concurrent readers.
//
// Hot reload of mount configuration is implemented as an atomic swap
// of a whole new Registry instance, never in-place mutation, so
// readers are always looking at a consistent snapshot.
type Holder struct {
	current atomic.Pointer[Registry]
}

// NewHolder creates a holder publishing the given registry.
func NewHolder(reg *Registry) *Holder {
	h := &Holder{}
	h.current.Store(reg)
	return h
}

// Load returns the currently published registry.
func (h *Holder) Load() *Registry {
	return h.current.Load()
}

// Swap publishes a new registry, returning the previous one.
func (h *Holder) Swap(reg *Registry) *Registry {
	return h.current.Swap(reg)
}
