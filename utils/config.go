package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var ErrConfigNotFound = errors.New("config file not found")

// UI settings
type UIConfig struct {
	Language      string `toml:"language"`
	DefaultSort   string `toml:"default_sort"`
	NoticeSeconds int    `toml:"notice_seconds"`
}

// Catalog settings
type CatalogConfig struct {
	Path string `toml:"path"` // empty: use the embedded catalog
}

// Log settings
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// Root config
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Catalog CatalogConfig `toml:"catalog"`
	Log     LogConfig     `toml:"log"`
}

// Global variable to hold config
var AppConfig = DefaultConfig()

func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Language:      "en",
			DefaultSort:   "rating",
			NoticeSeconds: 3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// expandPath replaces leading "~" with user home dir
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "book_catalog"), nil
}

// LoadConfig reads a config.toml on top of the defaults. A missing file
// yields the defaults together with ErrConfigNotFound.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.UI.NoticeSeconds < 1 {
		c.UI.NoticeSeconds = 1
	}
	if strings.TrimSpace(c.UI.Language) == "" {
		c.UI.Language = "en"
	}
	switch c.UI.DefaultSort {
	case "rating", "title", "author", "year", "reviews":
	default:
		c.UI.DefaultSort = "rating"
	}
	c.Catalog.Path = expandPath(strings.TrimSpace(c.Catalog.Path))
	c.Log.Path = expandPath(strings.TrimSpace(c.Log.Path))
}

// Main loads ~/.config/book_catalog/config.toml into AppConfig. Only a
// broken config file is reported; a missing one keeps the defaults.
func Main() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	cfg, err := LoadConfig(filepath.Join(dir, "config.toml"))
	AppConfig = cfg
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return err
	}
	return nil
}
