package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/imnyang/LunaFinder/pkg/vfs"
)

var mountsCmd = &cobra.Command{
	Use:   "mounts",
	Short: "List configured mounts",
	Long: `List the mounts declared in the configuration, with their canonical
roots on the host filesystem.

Examples:
  # List mounts as table
  lunafinder mounts

  # List as JSON
  lunafinder mounts -o json`,
	RunE: runMounts,
}

// MountList is a list of mount points for table rendering.
type MountList []*vfs.MountPoint

// Headers implements TableRenderer.
func (ml MountList) Headers() []string {
	return []string{"ID", "ROOT", "DESCRIPTION"}
}

// Rows implements TableRenderer.
func (ml MountList) Rows() [][]string {
	rows := make([][]string, 0, len(ml))
	for _, mp := range ml {
		rows = append(rows, []string{mp.ID, mp.Root, mp.Description})
	}
	return rows
}

func runMounts(cmd *cobra.Command, args []string) error {
	stack, err := loadBrowserStack()
	if err != nil {
		return err
	}

	mounts := stack.registry.List()
	return printOutput(os.Stdout, mounts, len(mounts) == 0, "No mounts configured.", MountList(mounts))
}
