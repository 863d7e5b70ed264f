package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/imnyang/LunaFinder/internal/cli/output"
	"github.com/imnyang/LunaFinder/pkg/vfs"
)

var treeDepth int

var treeCmd = &cobra.Command{
	Use:   "tree <mount>[/path]",
	Short: "Show a directory tree",
	Long: `Recursively render the directory structure under a path. Branches
deeper than the depth limit are marked as truncated instead of being
descended into; entries that fail to resolve (such as symlinks leaving
the mount) are skipped.

Examples:
  # Tree of a whole mount
  lunafinder tree docs

  # Tree of a subdirectory, two levels deep
  lunafinder tree docs/guides --depth 2

  # Structured output
  lunafinder tree docs -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum recursion depth (default: from config)")
}

func runTree(cmd *cobra.Command, args []string) error {
	stack, err := loadBrowserStack()
	if err != nil {
		return err
	}

	depth := treeDepth
	if depth <= 0 {
		depth = stack.cfg.VFS.MaxTreeDepth
	}

	mountID, rel := splitTarget(args[0])

	node, err := vfs.Tree(context.Background(), stack.resolver, stack.walker, mountID, rel, depth)
	if err != nil {
		return logResolveDenied(err)
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, node)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, node)
	default:
		return output.PrintTree(os.Stdout, node)
	}
}
