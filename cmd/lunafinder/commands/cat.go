package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/imnyang/LunaFinder/internal/bytesize"
)

var catCmd = &cobra.Command{
	Use:   "cat <mount>/<path>",
	Short: "Print a file",
	Long: `Resolve a file inside a mount and stream its contents to stdout.

Files larger than the configured vfs.max_open_size are refused; raise
the limit in the configuration to print bigger files.

Examples:
  # Print a file
  lunafinder cat docs/guides/intro.md

  # Pipe into a pager
  lunafinder cat docs/README.md | less`,
	Args: cobra.ExactArgs(1),
	RunE: runCat,
}

func runCat(cmd *cobra.Command, args []string) error {
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

	f, err := stack.accessor.Open(ctx, rp)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if limit := int64(stack.cfg.VFS.MaxOpenSize); f.Size > limit {
		return fmt.Errorf("file %s is %s, larger than the configured limit of %s",
			args[0], bytesize.Format(f.Size), bytesize.Format(limit))
	}

	if _, err := io.Copy(os.Stdout, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return nil
}
