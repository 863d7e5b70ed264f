package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imnyang/LunaFinder/pkg/config"
	"github.com/imnyang/LunaFinder/pkg/vfs"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and mount table",
	Long: `Load the configuration, validate it, and verify that every configured
mount root exists and is a directory. Exits non-zero on the first problem.

Examples:
  # Check the default config
  lunafinder check

  # Check a specific config file
  lunafinder check --config /etc/lunafinder/config.yaml`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	fmt.Printf("Configuration OK (%d mounts declared)\n", len(cfg.Mounts))

	reg, err := vfs.NewRegistry(mountPoints(cfg))
	if err != nil {
		return fmt.Errorf("mount table check failed: %w", err)
	}

	for _, mp := range reg.List() {
		fmt.Printf("  mount %-12s -> %s\n", mp.ID, mp.Root)
	}
	fmt.Println("All mounts are accessible.")

	return nil
}

// mountPoints converts configured mounts into registry mount points.
func mountPoints(cfg *config.Config) []vfs.MountPoint {
	mounts := make([]vfs.MountPoint, 0, len(cfg.Mounts))
	for _, m := range cfg.Mounts {
		mounts = append(mounts, vfs.MountPoint{
			ID:          m.ID,
			Root:        m.Path,
			Description: m.Description,
		})
	}
	return mounts
}
