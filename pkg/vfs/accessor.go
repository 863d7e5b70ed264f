package vfs

import (
	"context"
	"os"
)

// Accessor opens resolved file paths for read-only streaming.
type Accessor struct {
	metrics Metrics
}

// NewAccessor creates an accessor. metrics may be nil.
func NewAccessor(metrics Metrics) *Accessor {
	return &Accessor{metrics: metrics}
}

// File is an open read-only file stream.
//
// It is a scoped resource: the caller must Close it on every exit
// path, including early termination.
type File struct {
	f *os.File

	// Name is the file's base name.
	Name string

	// Size is the file size in bytes at open time.
	Size int64
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.f.Read(p)
}

// Close releases the underlying file handle.
func (f *File) Close() error {
	return f.f.Close()
}

// Open opens the resolved path for reading.
//
// The open is strictly read-only: nothing is ever created, truncated,
// or modified. Directories are rejected with ErrNotFile.
//
// Errors: ErrNotFile, ErrNotFound, ErrPermissionDenied, ErrIOError.
func (a *Accessor) Open(ctx context.Context, rp *ResolvedPath) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(rp.Absolute)
	if err != nil {
		return nil, translateOSError(rp.Mount.ID, rp.Relative(), err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, translateOSError(rp.Mount.ID, rp.Relative(), err)
	}
	if info.IsDir() {
		f.Close()
		return nil, NewNotFileError(rp.Mount.ID, rp.Relative())
	}

	if a.metrics != nil {
		a.metrics.ObserveOpen(info.Size())
	}

	return &File{f: f, Name: info.Name(), Size: info.Size()}, nil
}
