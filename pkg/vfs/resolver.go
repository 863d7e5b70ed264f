package vfs

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// Metrics receives observations from the resolver, walker, and
// accessor. Implementations must be safe for concurrent use. A nil
// Metrics disables collection with zero overhead.
//
// The Prometheus implementation lives in pkg/metrics; the interface is
// defined here to keep this package free of metrics dependencies.
type Metrics interface {
	// ObserveResolve records one resolution attempt with its outcome
	// ("ok" or an ErrorCode name) and duration.
	ObserveResolve(outcome string, duration time.Duration)

	// ObserveList records the number of entries emitted by one
	// completed directory listing.
	ObserveList(entries int)

	// ObserveOpen records the size of a file opened for reading.
	ObserveOpen(bytes int64)
}

// Resolver validates and canonicalizes client-supplied paths against
// a mount registry.
//
// Resolve is purely request-scoped, synchronous logic: it holds no
// internal state besides the registry reference and is safe to invoke
// from any number of concurrent callers.
type Resolver struct {
	registry *Registry
	metrics  Metrics
}

// NewResolver creates a resolver over the given registry.
// metrics may be nil to disable collection.
func NewResolver(registry *Registry, metrics Metrics) *Resolver {
	return &Resolver{registry: registry, metrics: metrics}
}

// Resolve turns a (mount id, client-supplied relative path) pair into
// a validated ResolvedPath.
//
// The requested path is normalized segment-wise: empty and "."
// segments are dropped, and any ".." segment rejects the request
// outright. Compensating up/down segment pairs are not permitted
// because a symlinked intermediate directory would make their meaning
// ambiguous.
//
// The joined path is then canonicalized at the filesystem level and
// the containment check is re-applied on the canonical result: a
// symlink inside the mount can point outside the root even when the
// literal path contains no ".." segment at all.
//
// Errors: ErrInvalidMount, ErrTraversalRejected, ErrNotFound,
// ErrPermissionDenied, ErrIOError.
func (r *Resolver) Resolve(ctx context.Context, mountID, requested string) (*ResolvedPath, error) {
	start := time.Now()
	rp, err := r.resolve(ctx, mountID, requested)
	if r.metrics != nil {
		outcome := "ok"
		if err != nil {
			code, _ := CodeOf(err)
			outcome = code.String()
		}
		r.metrics.ObserveResolve(outcome, time.Since(start))
	}
	return rp, err
}

func (r *Resolver) resolve(ctx context.Context, mountID, requested string) (*ResolvedPath, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mount, err := r.registry.Lookup(mountID)
	if err != nil {
		return nil, err
	}

	components, err := splitRelative(mountID, requested)
	if err != nil {
		return nil, err
	}

	joined := mount.Root
	if len(components) > 0 {
		joined = filepath.Join(append([]string{mount.Root}, components...)...)
	}

	canonical, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return nil, translateOSError(mountID, requested, err)
	}

	if !within(mount.Root, canonical) {
		return nil, NewTraversalError(mountID, requested)
	}

	return &ResolvedPath{
		Mount:      mount,
		Absolute:   canonical,
		Components: components,
	}, nil
}

// splitRelative normalizes a client-supplied path into clean segments.
// "." and empty segments are dropped; ".." or segments carrying a
// backslash or NUL byte reject the request.
func splitRelative(mountID, requested string) ([]string, error) {
	if requested == "" || requested == "." {
		return nil, nil
	}

	var components []string
	for _, seg := range strings.Split(requested, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			return nil, NewTraversalError(mountID, requested)
		}
		if strings.ContainsAny(seg, "\\\x00") {
			return nil, NewTraversalError(mountID, requested)
		}
		components = append(components, seg)
	}
	return components, nil
}

// within reports whether candidate is root or a strict descendant of
// root. Both paths must be canonical. The comparison is segment-aware
// so that "/mnt/a" is never treated as a prefix of "/mnt/ab".
func within(root, candidate string) bool {
	rel, err := filepath.Rel(root, candidate)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
