package logbook

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LogConfig controls the tool's own diagnostic log file (not the todo files). The
// zero value disables file logging.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Level      string `yaml:"level"`
}

// Config is the process-wide configuration. The root directory is read once at
// startup and stays immutable for the process lifetime: to act on a different root,
// construct a different Book.
type Config struct {
	Root   string    `yaml:"root"`
	Period string    `yaml:"period"`
	Editor string    `yaml:"editor"`
	Log    LogConfig `yaml:"log"`
}

// DefaultConfigPath is where LoadConfig looks when no --config flag is given.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(home, ".config", "logbook", "config.yaml"), nil
}

// LoadConfig reads the yaml configuration file, applies the LOGBOOK_ROOT and
// LOGBOOK_EDITOR environment overrides, and fills in defaults. A missing file is not
// an error: the defaults alone describe a usable logbook under lib/logbook in the
// user's home directory.
func LoadConfig(pathname string) (*Config, error) {
	var cfg Config
	b, err := os.ReadFile(pathname)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", pathname, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("config %s: %w", pathname, err)
	}
	if v := os.Getenv("LOGBOOK_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("LOGBOOK_EDITOR"); v != "" {
		cfg.Editor = v
	}
	if cfg.Root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg.Root = filepath.Join(home, "lib", "logbook")
	}
	if !filepath.IsAbs(cfg.Root) {
		return nil, fmt.Errorf("%q: %w", cfg.Root, ErrNoRoot)
	}
	if _, err := ParsePeriod(cfg.Period); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewBook builds a Book from the configuration. Extra options are applied after the
// configured period, so they win.
func (c *Config) NewBook(opts ...bookOption) (*Book, error) {
	period, err := ParsePeriod(c.Period)
	if err != nil {
		return nil, err
	}
	return NewBook(c.Root, append([]bookOption{WithPeriod(period)}, opts...)...)
}
