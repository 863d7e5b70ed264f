package config

import (
	"fmt"

	"github.com/imnyang/LunaFinder/internal/logger"
	"github.com/imnyang/LunaFinder/pkg/vfs"
)

// BuildRegistry creates a mount registry from the provided configuration.
//
// Every configured mount is canonicalized and verified against the host
// filesystem; a mount whose root does not exist or is not a directory
// fails the whole build. The resulting registry is immutable, so hot
// reload builds a fresh registry and swaps it into the holder rather
// than mutating this one.
//
// Example:
//
//	cfg, _ := config.Load("config.yaml")
//	reg, err := config.BuildRegistry(cfg)
//	if err != nil {
//	    log.Fatalf("Failed to build registry: %v", err)
//	}
func BuildRegistry(cfg *Config) (*vfs.Registry, error) {
	logger.Debug("Building mount registry from configuration")

	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	if len(cfg.Mounts) == 0 {
		return nil, fmt.Errorf("no mounts configured: at least one mount is required")
	}

	mounts := make([]vfs.MountPoint, 0, len(cfg.Mounts))
	for _, m := range cfg.Mounts {
		logger.Debug("Adding mount", "id", m.ID, "path", m.Path)
		mounts = append(mounts, vfs.MountPoint{
			ID:          m.ID,
			Root:        m.Path,
			Description: m.Description,
		})
	}

	reg, err := vfs.NewRegistry(mounts)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry: %w", err)
	}

	logger.Info("Mount registry built", logger.Mounts(reg.Count()))
	return reg, nil
}
