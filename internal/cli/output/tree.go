package output

import (
	"fmt"
	"io"

	"github.com/imnyang/LunaFinder/pkg/vfs"
)

// PrintTree renders a directory tree with box-drawing connectors, in
// the style of tree(1). Truncated nodes are marked with an ellipsis.
func PrintTree(w io.Writer, root *vfs.TreeNode) error {
	if _, err := fmt.Fprintln(w, root.Name); err != nil {
		return err
	}
	return printTreeChildren(w, root, "")
}

func printTreeChildren(w io.Writer, node *vfs.TreeNode, prefix string) error {
	for i, child := range node.Children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(node.Children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		label := child.Name
		if child.Truncated {
			label += " …"
		}
		if _, err := fmt.Fprintln(w, prefix+connector+label); err != nil {
			return err
		}
		if err := printTreeChildren(w, child, childPrefix); err != nil {
			return err
		}
	}
	return nil
}
