package vfs

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
)

// DefaultTreeDepth bounds directory tree expansion when the caller
// does not specify a limit.
const DefaultTreeDepth = 12

// TreeNode is one directory in a depth-bounded tree view. Only
// directories appear in the tree; files are obtained per directory
// through List.
type TreeNode struct {
	// Name is the directory's base name, "." for the mount root.
	Name string

	// Path is the normalized mount-relative path of the directory.
	Path string

	// Truncated reports that children were not expanded because the
	// depth bound was reached.
	Truncated bool

	// Children holds the subdirectories in listing order.
	Children []*TreeNode
}

// Tree builds a directory tree rooted at (mountID, rel), descending
// at most maxDepth levels (DefaultTreeDepth when maxDepth <= 0).
//
// Every level of the descent goes back through the resolver rather
// than joining paths lexically: a subdirectory can itself be a
// symlink, and only re-resolution re-validates the mount boundary.
// Subdirectories that reject (for example a symlink escaping the
// root) are skipped rather than failing the whole tree.
func Tree(ctx context.Context, resolver *Resolver, walker *Walker, mountID, rel string, maxDepth int) (*TreeNode, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultTreeDepth
	}

	rp, err := resolver.Resolve(ctx, mountID, rel)
	if err != nil {
		return nil, err
	}

	name := "."
	if !rp.IsRoot() {
		name = rp.Components[len(rp.Components)-1]
	}

	node := &TreeNode{Name: name, Path: rp.Relative()}
	if err := expandTree(ctx, resolver, walker, mountID, rp, node, maxDepth); err != nil {
		return nil, err
	}
	return node, nil
}

func expandTree(ctx context.Context, resolver *Resolver, walker *Walker, mountID string, rp *ResolvedPath, node *TreeNode, depth int) error {
	if depth <= 0 {
		node.Truncated = true
		return nil
	}

	it, err := walker.List(ctx, rp)
	if err != nil {
		return err
	}
	defer it.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, err := it.Next()
		if errors.Is(err, io.EOF) {
			sort.Slice(node.Children, func(i, j int) bool {
				return strings.ToLower(node.Children[i].Name) < strings.ToLower(node.Children[j].Name)
			})
			return nil
		}
		if err != nil {
			return err
		}
		if entry.Kind != KindDirectory {
			continue
		}

		childRel := entry.Name
		if !rp.IsRoot() {
			childRel = rp.Relative() + "/" + entry.Name
		}

		childRP, err := resolver.Resolve(ctx, mountID, childRel)
		if err != nil {
			// Broken or escaping entries are omitted from the view.
			continue
		}

		child := &TreeNode{Name: entry.Name, Path: childRP.Relative()}
		if err := expandTree(ctx, resolver, walker, mountID, childRP, child, depth-1); err != nil {
			continue
		}
		node.Children = append(node.Children, child)
	}
}
