package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Initialize writes the default configuration into dir if none exists yet
// and returns the loaded result.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(dir, ConfigurationName)

	switch _, err := os.Stat(configPath); {
	case errors.Is(err, fs.ErrNotExist):
		logger.Printf("Writing default config to %s", configPath)
		if err := os.WriteFile(configPath, defaultConfigData, 0644); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		logger.Printf("Config already exists at %s, leaving it unchanged", configPath)
	}

	return Load(dir)
}
