package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/imnyang/LunaFinder/internal/bytesize"
	"github.com/imnyang/LunaFinder/pkg/vfs"
)

var lsCmd = &cobra.Command{
	Use:   "ls <mount>[/path]",
	Short: "List a directory",
	Long: `List the entries of a directory inside a mount. Directories sort
before files, both case-insensitively.

The target is the mount id, optionally followed by a path inside it:

Examples:
  # List the root of the docs mount
  lunafinder ls docs

  # List a subdirectory
  lunafinder ls docs/guides/api

  # List as JSON
  lunafinder ls docs -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runLs,
}

// EntryList is a directory listing for table rendering.
type EntryList []vfs.TreeEntry

// Headers implements TableRenderer.
func (el EntryList) Headers() []string {
	return []string{"NAME", "KIND", "SIZE"}
}

// Rows implements TableRenderer.
func (el EntryList) Rows() [][]string {
	rows := make([][]string, 0, len(el))
	for _, e := range el {
		size := ""
		if e.Kind == vfs.KindFile {
			size = bytesize.Format(e.Size)
		}
		rows = append(rows, []string{e.Name, e.Kind.String(), size})
	}
	return rows
}

func runLs(cmd *cobra.Command, args []string) error {
	stack, err := loadBrowserStack()
	if err != nil {
		return err
	}

	mountID, rel := splitTarget(args[0])
	ctx := context.Background()

	rp, err := stack.resolver.Resolve(ctx, mountID, rel)
	if err != nil {
		return logResolveDenied(err)
	}

	entries, err := stack.walker.ListAll(ctx, rp)
	if err != nil {
		return err
	}
	vfs.SortEntries(entries)

	return printOutput(os.Stdout, entries, len(entries) == 0, "Directory is empty.", EntryList(entries))
}
