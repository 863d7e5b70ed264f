package vfs

import (
	"errors"
	"io/fs"
	"syscall"
)

// Error represents a domain error from virtual filesystem operations.
//
// These are business logic errors (unknown mount, traversal attempt,
// missing file) as opposed to infrastructure errors (disk failure).
// Callers translate the Code to whatever their surface needs (exit
// codes, HTTP statuses); the raw OS error never crosses this boundary,
// so host path structure cannot leak to untrusted callers.
type Error struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// Mount is the mount identifier the request addressed (if known)
	Mount string

	// Path is the client-supplied relative path related to the error.
	// It is never a resolved absolute path: traversal rejections in
	// particular must not reveal where a request would have landed.
	Path string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Mount != "" && e.Path != "":
		return e.Message + ": " + e.Mount + ":" + e.Path
	case e.Mount != "":
		return e.Message + ": " + e.Mount
	default:
		return e.Message
	}
}

// ErrorCode represents the category of a virtual filesystem error.
type ErrorCode int

const (
	// ErrInvalidMount indicates the mount identifier is not configured.
	// Always safe to report to the caller.
	ErrInvalidMount ErrorCode = iota

	// ErrTraversalRejected indicates an escape attempt was detected,
	// either via a ".." segment or via a symlink that canonicalizes
	// outside the mount root. Callers should log this as a security
	// event.
	ErrTraversalRejected

	// ErrNotFound indicates no such file or directory within the mount
	ErrNotFound

	// ErrNotDirectory indicates a listing was requested on a file
	ErrNotDirectory

	// ErrNotFile indicates a file open was requested on a directory
	ErrNotFile

	// ErrPermissionDenied indicates the underlying filesystem denied access
	ErrPermissionDenied

	// ErrIOError indicates any other filesystem-level failure
	ErrIOError
)

// String returns the canonical name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidMount:
		return "invalid_mount"
	case ErrTraversalRejected:
		return "traversal_rejected"
	case ErrNotFound:
		return "not_found"
	case ErrNotDirectory:
		return "not_directory"
	case ErrNotFile:
		return "not_file"
	case ErrPermissionDenied:
		return "permission_denied"
	case ErrIOError:
		return "io_error"
	default:
		return "unknown"
	}
}

// CodeOf extracts the ErrorCode from err.
// Returns ErrIOError, false when err is not a *Error.
func CodeOf(err error) (ErrorCode, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Code, true
	}
	return ErrIOError, false
}

// ============================================================================
// Error Factory Functions
// ============================================================================

// NewInvalidMountError creates an Error for an unknown mount identifier.
func NewInvalidMountError(mount string) *Error {
	return &Error{
		Code:    ErrInvalidMount,
		Message: "mount not found",
		Mount:   mount,
	}
}

// NewTraversalError creates an Error for a detected escape attempt.
// relPath is the client-supplied path, recorded for security logging.
func NewTraversalError(mount, relPath string) *Error {
	return &Error{
		Code:    ErrTraversalRejected,
		Message: "path escapes mount root",
		Mount:   mount,
		Path:    relPath,
	}
}

// NewNotFoundError creates an Error for a missing file or directory.
func NewNotFoundError(mount, relPath string) *Error {
	return &Error{
		Code:    ErrNotFound,
		Message: "no such file or directory",
		Mount:   mount,
		Path:    relPath,
	}
}

// NewNotDirectoryError creates an Error for a directory operation on a file.
func NewNotDirectoryError(mount, relPath string) *Error {
	return &Error{
		Code:    ErrNotDirectory,
		Message: "not a directory",
		Mount:   mount,
		Path:    relPath,
	}
}

// NewNotFileError creates an Error for a file operation on a directory.
func NewNotFileError(mount, relPath string) *Error {
	return &Error{
		Code:    ErrNotFile,
		Message: "not a file",
		Mount:   mount,
		Path:    relPath,
	}
}

// NewPermissionDeniedError creates an Error for a filesystem permission failure.
func NewPermissionDeniedError(mount, relPath string) *Error {
	return &Error{
		Code:    ErrPermissionDenied,
		Message: "permission denied",
		Mount:   mount,
		Path:    relPath,
	}
}

// NewIOError creates an Error for an unclassified filesystem failure.
func NewIOError(mount, relPath string) *Error {
	return &Error{
		Code:    ErrIOError,
		Message: "filesystem error",
		Mount:   mount,
		Path:    relPath,
	}
}

// translateOSError maps an error returned by the os package onto a
// domain Error, discarding the OS-level detail.
//
// ENOTDIR from an intermediate path component means the requested path
// cannot exist, so it is reported as not-found rather than kind
// mismatch; kind mismatches on the final component are detected
// explicitly by the walker and accessor.
func translateOSError(mount, relPath string, err error) *Error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return NewNotFoundError(mount, relPath)
	case errors.Is(err, fs.ErrPermission):
		return NewPermissionDeniedError(mount, relPath)
	default:
		return NewIOError(mount, relPath)
	}
}
