package logger

import (
	"log/slog"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements so that mount
// and path activity can be aggregated and queried.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// ========================================================================
	// Virtual Filesystem Operations
	// ========================================================================
	KeyOperation = "operation" // Operation name: resolve, list, open, tree
	KeyMount     = "mount"     // Mount identifier the request addressed
	KeyPath      = "path"      // Mount-relative path as supplied by the client
	KeyFilename  = "filename"  // File or directory base name
	KeyKind      = "kind"      // Entry kind: file, directory
	KeySize      = "size"      // File size in bytes
	KeyEntries   = "entries"   // Number of directory entries
	KeyDepth     = "depth"     // Tree expansion depth

	// ========================================================================
	// Client Identification
	// ========================================================================
	KeyClientIP  = "client_ip"  // Client IP address
	KeyRequestID = "request_id" // HTTP request ID

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyErrorCode  = "error_code"  // Domain error code name
	KeyOutcome    = "outcome"     // Operation outcome: ok or an error code name

	// ========================================================================
	// Process & Configuration
	// ========================================================================
	KeyConfigPath = "config_path" // Configuration file path
	KeyAddr       = "addr"        // Network listen address
	KeyVersion    = "version"     // Build version
	KeyMounts     = "mounts"      // Number of configured mounts
)

// ============================================================================
// Field constructors for type safety
// These functions provide type-safe construction of slog.Attr values.
// ============================================================================

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// Operation returns a slog.Attr for the operation name
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Mount returns a slog.Attr for the mount identifier
func Mount(id string) slog.Attr {
	return slog.String(KeyMount, id)
}

// Path returns a slog.Attr for the client-supplied relative path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Filename returns a slog.Attr for a file or directory base name
func Filename(name string) slog.Attr {
	return slog.String(KeyFilename, name)
}

// Kind returns a slog.Attr for an entry kind
func Kind(kind string) slog.Attr {
	return slog.String(KeyKind, kind)
}

// Size returns a slog.Attr for a file size in bytes
func Size(s int64) slog.Attr {
	return slog.Int64(KeySize, s)
}

// Entries returns a slog.Attr for a directory entry count
func Entries(n int) slog.Attr {
	return slog.Int(KeyEntries, n)
}

// Depth returns a slog.Attr for a tree expansion depth
func Depth(d int) slog.Attr {
	return slog.Int(KeyDepth, d)
}

// ClientIP returns a slog.Attr for a client IP address
func ClientIP(addr string) slog.Attr {
	return slog.String(KeyClientIP, addr)
}

// RequestID returns a slog.Attr for an HTTP request ID
func RequestID(id string) slog.Attr {
	return slog.String(KeyRequestID, id)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// ErrorCode returns a slog.Attr for a domain error code name
func ErrorCode(code string) slog.Attr {
	return slog.String(KeyErrorCode, code)
}

// Outcome returns a slog.Attr for an operation outcome
func Outcome(outcome string) slog.Attr {
	return slog.String(KeyOutcome, outcome)
}

// ConfigPath returns a slog.Attr for a configuration file path
func ConfigPath(p string) slog.Attr {
	return slog.String(KeyConfigPath, p)
}

// Addr returns a slog.Attr for a network listen address
func Addr(addr string) slog.Attr {
	return slog.String(KeyAddr, addr)
}

// Version returns a slog.Attr for a build version
func Version(v string) slog.Attr {
	return slog.String(KeyVersion, v)
}

// Mounts returns a slog.Attr for a mount count
func Mounts(n int) slog.Attr {
	return slog.Int(KeyMounts, n)
}
