package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)
	cfg.resolvePaths()

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./pixelart.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "PixelArt")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "PixelArt")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "pixelart")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "pixelart")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// resolvePaths expands ~ and fills in the default storage directory.
func (c *Config) resolvePaths() {
	if c.Storage.Dir == "" {
		c.Storage.Dir = filepath.Join(ConfigDir(), "drawings")
	}
	c.Storage.Dir = expandPath(c.Storage.Dir)
	c.Export.Dir = expandPath(c.Export.Dir)
	c.Logging.LogFile = expandPath(c.Logging.LogFile)
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// ExportPath returns where an export called filename is written, creating
// the export directory if needed.
func (c *Config) ExportPath(filename string) (string, error) {
	if c.Export.Dir == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.Export.Dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(c.Export.Dir, filename), nil
}
