package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for virtual filesystem operations.
// These follow OpenTelemetry semantic conventions where applicable;
// domain-specific keys use the "fs." prefix.
const (
	// ========================================================================
	// Client attributes
	// ========================================================================
	AttrClientIP   = "client.ip"
	AttrClientAddr = "client.address"

	// ========================================================================
	// Virtual filesystem attributes
	// ========================================================================
	AttrOperation = "fs.operation" // resolve, list, open, tree
	AttrMount     = "fs.mount"     // Mount identifier
	AttrPath      = "fs.path"      // Client-supplied relative path
	AttrKind      = "fs.kind"      // Entry kind: file, directory
	AttrSize      = "fs.size"      // File size in bytes
	AttrEntries   = "fs.entries"   // Directory entry count
	AttrDepth     = "fs.depth"     // Tree expansion depth
	AttrOutcome   = "fs.outcome"   // ok or an error code name
	AttrErrorCode = "fs.error_code"

	// ========================================================================
	// Registry attributes
	// ========================================================================
	AttrMounts = "registry.mounts" // Number of configured mounts
)

// ClientIP returns an attribute for client IP address
func ClientIP(ip string) attribute.KeyValue {
	return attribute.String(AttrClientIP, ip)
}

// ClientAddr returns an attribute for full client address
func ClientAddr(addr string) attribute.KeyValue {
	return attribute.String(AttrClientAddr, addr)
}

// FSOperation returns an attribute for filesystem operation name
func FSOperation(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// FSMount returns an attribute for mount identifier
func FSMount(mount string) attribute.KeyValue {
	return attribute.String(AttrMount, mount)
}

// FSPath returns an attribute for the client-supplied relative path
func FSPath(path string) attribute.KeyValue {
	return attribute.String(AttrPath, path)
}

// FSKind returns an attribute for entry kind
func FSKind(kind string) attribute.KeyValue {
	return attribute.String(AttrKind, kind)
}

// FSSize returns an attribute for file size
func FSSize(size int64) attribute.KeyValue {
	return attribute.Int64(AttrSize, size)
}

// FSEntries returns an attribute for directory entry count
func FSEntries(n int) attribute.KeyValue {
	return attribute.Int(AttrEntries, n)
}

// FSDepth returns an attribute for tree expansion depth
func FSDepth(depth int) attribute.KeyValue {
	return attribute.Int(AttrDepth, depth)
}

// FSOutcome returns an attribute for operation outcome
func FSOutcome(outcome string) attribute.KeyValue {
	return attribute.String(AttrOutcome, outcome)
}

// FSErrorCode returns an attribute for a domain error code name
func FSErrorCode(code string) attribute.KeyValue {
	return attribute.String(AttrErrorCode, code)
}

// RegistryMounts returns an attribute for the configured mount count
func RegistryMounts(n int) attribute.KeyValue {
	return attribute.Int(AttrMounts, n)
}

// StartVFSSpan starts a span for a virtual filesystem operation.
// This is a convenience function that sets common attributes.
func StartVFSSpan(ctx context.Context, operation, mount, path string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		FSOperation(operation),
		FSMount(mount),
		FSPath(path),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, "vfs."+operation, trace.WithAttributes(allAttrs...))
}
