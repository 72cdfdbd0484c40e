package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"localesync/internal/domain"
)

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = "localesync.toml"

// Environment overrides.
const (
	EnvLocalesDir = "LOCALESYNC_LOCALES_DIR"
	EnvFileName   = "LOCALESYNC_FILE_NAME"
	EnvLogLevel   = "LOCALESYNC_LOG_LEVEL"
)

type Config struct {
	LocalesDir string `toml:"locales_dir"`
	FileName   string `toml:"file_name"`
	LogLevel   string `toml:"log_level"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		LocalesDir: "locales",
		FileName:   "common.json",
		LogLevel:   "info",
	}
}

// Load builds the configuration from defaults, the TOML file at path (or
// DefaultFile when path is empty and the file exists), then the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; variables may come from the environment directly.
	}

	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvLocalesDir); v != "" {
		c.LocalesDir = v
	}
	if v := os.Getenv(EnvFileName); v != "" {
		c.FileName = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the values after every override has been applied.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LocalesDir) == "" {
		return fmt.Errorf("config: locales_dir is required: %w", domain.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.FileName) == "" {
		return fmt.Errorf("config: file_name is required: %w", domain.ErrInvalidConfig)
	}
	if strings.ContainsAny(c.FileName, `/\`) {
		return fmt.Errorf("config: file_name %q must be a bare file name: %w", c.FileName, domain.ErrInvalidConfig)
	}
	switch strings.ToLower(filepath.Ext(c.FileName)) {
	case ".json", ".yaml", ".yml":
	default:
		return fmt.Errorf("config: file_name %q must end in .json, .yaml or .yml: %w", c.FileName, domain.ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level %q is not one of debug, info, warn, error: %w", c.LogLevel, domain.ErrInvalidConfig)
	}
	return nil
}
