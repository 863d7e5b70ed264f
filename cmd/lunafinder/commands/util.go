package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/imnyang/LunaFinder/internal/cli/output"
	"github.com/imnyang/LunaFinder/internal/logger"
	"github.com/imnyang/LunaFinder/pkg/config"
	"github.com/imnyang/LunaFinder/pkg/vfs"
)

// InitLogger initializes the structured logger from configuration.
func InitLogger(cfg *config.Config) error {
	loggerCfg := logger.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cfg.Logging.Output,
		NoColor: noColor,
	}
	if err := logger.Init(loggerCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// GetDefaultStateDir returns the default state directory path.
func GetDefaultStateDir() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "/tmp"
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "lunafinder")
}

// GetDefaultPidFile returns the default PID file path.
func GetDefaultPidFile() string {
	return filepath.Join(GetDefaultStateDir(), "lunafinder.pid")
}

// GetDefaultLogFile returns the default log file path for daemon mode.
func GetDefaultLogFile() string {
	return filepath.Join(GetDefaultStateDir(), "lunafinder.log")
}

// browserStack bundles the read-side components the browsing commands
// share. The registry is built once from configuration; one-shot CLI
// commands have no use for hot reload.
type browserStack struct {
	cfg      *config.Config
	registry *vfs.Registry
	resolver *vfs.Resolver
	walker   *vfs.Walker
	accessor *vfs.Accessor
}

// loadBrowserStack loads configuration and builds the vfs components
// on top of it. Metrics stay disabled for one-shot commands.
func loadBrowserStack() (*browserStack, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, err
	}

	if err := InitLogger(cfg); err != nil {
		return nil, err
	}

	reg, err := config.BuildRegistry(cfg)
	if err != nil {
		return nil, err
	}

	return &browserStack{
		cfg:      cfg,
		registry: reg,
		resolver: vfs.NewResolver(reg, nil),
		walker:   vfs.NewWalker(nil),
		accessor: vfs.NewAccessor(nil),
	}, nil
}

// logResolveDenied logs rejected traversal attempts as security
// events before the error is returned to the user. The record carries
// the mount id and the path exactly as the client requested it; the
// resolved host path never appears.
func logResolveDenied(err error) error {
	var verr *vfs.Error
	if errors.As(err, &verr) && verr.Code == vfs.ErrTraversalRejected {
		logger.Warn("Path traversal rejected",
			logger.Mount(verr.Mount),
			logger.Path(verr.Path),
			logger.ErrorCode(verr.Code.String()),
		)
	}
	return err
}

// splitTarget splits a CLI target argument of the form "mount" or
// "mount/relative/path" into its mount id and relative path.
func splitTarget(target string) (mountID, rel string) {
	mountID, rel, found := strings.Cut(target, "/")
	if !found {
		return target, "."
	}
	if rel == "" {
		rel = "."
	}
	return mountID, rel
}

// printOutput prints data in the format selected by the -o flag
// (JSON, YAML, or table). For table format it displays emptyMsg when
// the data is empty, otherwise renders via the tableRenderer.
func printOutput(w io.Writer, data any, isEmpty bool, emptyMsg string, tableRenderer output.TableRenderer) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		if isEmpty {
			_, _ = fmt.Fprintln(w, emptyMsg)
			return nil
		}
		return output.PrintTable(w, tableRenderer)
	}
}
