package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/imnyang/LunaFinder/pkg/vfs"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <mount>/<path>",
	Short: "Resolve a path without touching it",
	Long: `Run a path through mount lookup, normalization, and boundary checks,
and show the canonical result. Useful for debugging mount layouts and
verifying that hostile paths are rejected.

Examples:
  # Show where a path lands on the host
  lunafinder resolve docs/guides/intro.md

  # Confirm a traversal attempt is rejected
  lunafinder resolve "docs/../etc/passwd"

  # Structured output
  lunafinder resolve docs/notes.md -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

// Resolution is the externally visible result of a resolve operation.
type Resolution struct {
	Mount    string `json:"mount" yaml:"mount"`
	Relative string `json:"relative" yaml:"relative"`
	Absolute string `json:"absolute" yaml:"absolute"`
}

// Headers implements TableRenderer.
func (r Resolution) Headers() []string {
	return []string{"MOUNT", "RELATIVE", "ABSOLUTE"}
}

// Rows implements TableRenderer.
func (r Resolution) Rows() [][]string {
	return [][]string{{r.Mount, r.Relative, r.Absolute}}
}

func runResolve(cmd *cobra.Command, args []string) error {
	stack, err := loadBrowserStack()
	if err != nil {
		return err
	}

	mountID, rel := splitTarget(args[0])

	rp, err := stack.resolver.Resolve(context.Background(), mountID, rel)
	if err != nil {
		err = logResolveDenied(err)
		if code, ok := vfs.CodeOf(err); ok {
			return fmt.Errorf("%s: %w", code, err)
		}
		return err
	}

	res := Resolution{
		Mount:    rp.Mount.ID,
		Relative: rp.Relative(),
		Absolute: rp.Absolute,
	}
	return printOutput(os.Stdout, res, false, "", res)
}
