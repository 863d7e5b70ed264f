// Package vfs implements the read-only virtual filesystem core: an
// immutable registry of named mount points, a path resolver that
// canonicalizes and validates client-supplied paths against a mount
// root, a lazy directory walker, and a read-only file accessor.
//
// All components are request-scoped, synchronous, and safe for
// concurrent use; the only shared state is the immutable Registry.
package vfs

// MountPoint is a named root directory exposed for browsing under a
// stable identifier.
//
// Root is stored canonical: absolute, with every symlink in the root
// path itself resolved. Canonicalizing once at registry construction
// keeps the resolver's containment check a pure lexical comparison of
// canonical paths.
type MountPoint struct {
	// ID is the stable mount identifier clients address.
	ID string

	// Root is the canonical absolute path of the exposed directory.
	Root string

	// Description is a human-readable label for listings.
	Description string
}

// ResolvedPath is the validated result of resolving a (mount, relative
// path) pair. It is a transient per-request value.
//
// Invariant: Absolute is the mount root or a strict descendant of it
// after canonicalization, including resolution of symbolic links.
type ResolvedPath struct {
	// Mount is the mount point the path was resolved against.
	Mount *MountPoint

	// Absolute is the canonical filesystem path.
	Absolute string

	// Components holds the normalized relative path segments, in order.
	// Empty for the mount root itself.
	Components []string
}

// Relative returns the normalized client-facing relative path,
// "." for the mount root.
func (rp *ResolvedPath) Relative() string {
	if len(rp.Components) == 0 {
		return "."
	}
	out := rp.Components[0]
	for _, c := range rp.Components[1:] {
		out += "/" + c
	}
	return out
}

// IsRoot reports whether the resolved path is the mount root itself.
func (rp *ResolvedPath) IsRoot() bool {
	return len(rp.Components) == 0
}
