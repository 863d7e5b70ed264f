package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/imnyang/LunaFinder/internal/logger"
	"github.com/imnyang/LunaFinder/pkg/vfs"
)

// Watch reloads the mount registry whenever the configuration file changes.
//
// On each change the file is re-read, re-validated, and a fresh registry
// is built and swapped into the holder. A change that fails to load or
// validate is logged and ignored; the previous registry stays published,
// so readers never observe a broken configuration.
//
// Only the mount list is hot-reloadable. Changes to logging, telemetry,
// or server settings take effect on the next restart.
//
// Watch returns immediately; viper watches the file on a background
// goroutine for the lifetime of the process.
func Watch(configPath string, holder *vfs.Holder) {
	if configPath == "" {
		configPath = GetDefaultConfigPath()
	}

	v := viper.New()
	v.SetConfigFile(configPath)

	v.OnConfigChange(func(e fsnotify.Event) {
		logger.Info("Configuration file changed, reloading mounts", logger.ConfigPath(e.Name))

		cfg, err := Load(configPath)
		if err != nil {
			logger.Error("Reload failed, keeping current mounts", logger.Err(err))
			return
		}

		reg, err := BuildRegistry(cfg)
		if err != nil {
			logger.Error("Reload failed, keeping current mounts", logger.Err(err))
			return
		}

		holder.Swap(reg)
		logger.Info("Mounts reloaded", logger.Mounts(reg.Count()))
	})

	v.WatchConfig()
}
