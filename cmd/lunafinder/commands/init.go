package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/imnyang/LunaFinder/internal/cli/prompt"
	"github.com/imnyang/LunaFinder/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample LunaFinder configuration file.

By default, the configuration file is created at $XDG_CONFIG_HOME/lunafinder/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  lunafinder init

  # Initialize with custom path
  lunafinder init --config /etc/lunafinder/config.yaml

  # Force overwrite existing config
  lunafinder init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	targetPath := configFile
	if targetPath == "" {
		targetPath = config.GetDefaultConfigPath()
	}

	// Confirm overwrite interactively when the file already exists
	force := initForce
	if !force {
		if _, err := os.Stat(targetPath); err == nil {
			confirmed, err := prompt.Confirm(fmt.Sprintf("Configuration file %s already exists. Overwrite?", targetPath), false)
			if err != nil {
				if prompt.IsAborted(err) {
					fmt.Println("\nAborted.")
					return nil
				}
				return err
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
			force = true
		}
	}

	var configPath string
	var err error

	if configFile != "" {
		// Use custom path
		err = config.InitConfigToPath(configFile, force)
		configPath = configFile
	} else {
		// Use default path
		configPath, err = config.InitConfig(force)
	}

	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the configuration file to declare your mounts")
	fmt.Println("  2. Verify the setup with: lunafinder check")
	fmt.Println("  3. Start the server with: lunafinder serve")
	fmt.Printf("  4. Or specify custom config: lunafinder serve --config %s\n", configPath)

	return nil
}
