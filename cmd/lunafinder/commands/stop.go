package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	stopPidFile string
	stopTimeout time.Duration
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the background server",
	Long: `Stop a LunaFinder server running in the background.

The server is located via its PID file and asked to shut down
gracefully with SIGTERM. If it does not exit within the timeout,
an error is returned.

Examples:
  # Stop the server
  lunafinder stop

  # Stop with a custom PID file
  lunafinder stop --pid-file /var/run/lunafinder.pid`,
	RunE: runStop,
}

func init() {
	stopCmd.Flags().StringVar(&stopPidFile, "pid-file", "", "Path to PID file (default: $XDG_STATE_HOME/lunafinder/lunafinder.pid)")
	stopCmd.Flags().DurationVar(&stopTimeout, "timeout", 30*time.Second, "How long to wait for the server to exit")
}

func runStop(cmd *cobra.Command, args []string) error {
	pidPath := stopPidFile
	if pidPath == "" {
		pidPath = GetDefaultPidFile()
	}

	pidData, err := os.ReadFile(pidPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Server is not running (no PID file found)")
			return nil
		}
		return fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(pidData)))
	if err != nil {
		return fmt.Errorf("invalid PID file %s: %w", pidPath, err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process %d: %w", pid, err)
	}

	// Signal 0 checks for existence without affecting the process
	if err := process.Signal(syscall.Signal(0)); err != nil {
		fmt.Printf("Server is not running (stale PID file removed)\n")
		_ = os.Remove(pidPath)
		return nil
	}

	fmt.Printf("Stopping server (PID %d)...\n", pid)
	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal process %d: %w", pid, err)
	}

	deadline := time.Now().Add(stopTimeout)
	for time.Now().Before(deadline) {
		if err := process.Signal(syscall.Signal(0)); err != nil {
			// The server removes its own PID file on clean shutdown
			fmt.Println("Server stopped.")
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}

	return fmt.Errorf("server did not exit within %s", stopTimeout)
}
