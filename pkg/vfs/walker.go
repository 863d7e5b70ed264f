package vfs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// listBatchSize is the number of directory entries fetched per
// filesystem read while iterating.
const listBatchSize = 256

// EntryKind distinguishes directory entries.
type EntryKind int

const (
	// KindFile is a regular file (or anything that is not a directory).
	KindFile EntryKind = iota

	// KindDirectory is a directory.
	KindDirectory
)

// String returns the lowercase kind name.
func (k EntryKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// TreeEntry is one entry of a directory listing. It is a transient
// per-request value owning no resources.
type TreeEntry struct {
	// Name is the entry's base name.
	Name string

	// Kind reports whether the entry is a file or a directory.
	Kind EntryKind

	// Size is the byte count for files; zero for directories.
	Size int64
}

// Walker lists directory entries under resolved paths.
//
// Entries are emitted lazily, one filesystem read per batch, so very
// large directories never require materializing the whole listing.
// The walker never recurses: each subdirectory requires a separate
// resolve + list round trip from the caller, which re-validates the
// security boundary at every level (a subdirectory may itself be a
// symlink).
type Walker struct {
	metrics Metrics
}

// NewWalker creates a walker. metrics may be nil.
func NewWalker(metrics Metrics) *Walker {
	return &Walker{metrics: metrics}
}

// List opens a lazy iteration over the entries of a resolved
// directory. Each call opens a fresh directory handle, so the
// sequence is restartable.
//
// Errors: ErrNotDirectory, ErrNotFound, ErrPermissionDenied, ErrIOError.
func (w *Walker) List(ctx context.Context, rp *ResolvedPath) (*DirIter, error) {
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
	if !info.IsDir() {
		f.Close()
		return nil, NewNotDirectoryError(rp.Mount.ID, rp.Relative())
	}

	return &DirIter{f: f, walker: w, mount: rp.Mount.ID, rel: rp.Relative()}, nil
}

// ListAll drains a fresh iteration into a slice. Intended for callers
// that need the whole listing anyway (CLI output, tests); servers
// streaming large directories should iterate instead.
func (w *Walker) ListAll(ctx context.Context, rp *ResolvedPath) ([]TreeEntry, error) {
	it, err := w.List(ctx, rp)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var entries []TreeEntry
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := it.Next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

// DirIter iterates over the entries of a single directory in
// directory order, with no guaranteed sort order. Abandoning the
// iterator early is allowed; Close must be called on every path.
type DirIter struct {
	f      *os.File
	walker *Walker
	mount  string
	rel    string
	buf    []fs.DirEntry
	idx    int
	count  int
	done   bool
}

// Next returns the next entry, or io.EOF after the last one.
// Any other error terminates the iteration.
func (it *DirIter) Next() (TreeEntry, error) {
	if it.done {
		return TreeEntry{}, io.EOF
	}

	if it.idx >= len(it.buf) {
		batch, err := it.f.ReadDir(listBatchSize)
		if len(batch) == 0 {
			it.finish()
			if err != nil && !errors.Is(err, io.EOF) {
				return TreeEntry{}, NewIOError(it.mount, it.rel)
			}
			return TreeEntry{}, io.EOF
		}
		it.buf = batch
		it.idx = 0
	}

	de := it.buf[it.idx]
	it.idx++
	it.count++

	entry := TreeEntry{Name: de.Name()}
	if de.IsDir() {
		entry.Kind = KindDirectory
		return entry, nil
	}

	entry.Kind = KindFile
	if info, err := de.Info(); err == nil {
		entry.Size = info.Size()
	}
	return entry, nil
}

// Close releases the directory handle. Safe to call more than once.
func (it *DirIter) Close() error {
	if it.f == nil {
		return nil
	}
	err := it.f.Close()
	it.f = nil
	it.done = true
	return err
}

// finish records metrics for a fully drained iteration.
func (it *DirIter) finish() {
	if !it.done && it.walker != nil && it.walker.metrics != nil {
		it.walker.metrics.ObserveList(it.count)
	}
	it.done = true
}

// SortEntries orders a listing for presentation: directories first,
// then case-insensitive by name. The walker itself emits entries in
// directory order; sorting is a consumer concern.
func SortEntries(entries []TreeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Kind != b.Kind {
			return a.Kind == KindDirectory
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}
