package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/proffy/internal/util"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	API        APIConfig     `yaml:"api"`
	Storage    StorageConfig `yaml:"storage"`
	Log        LogConfig     `yaml:"log"`
	Theme      string        `yaml:"theme"`
	ReportsDir string        `yaml:"reports_dir"`
}

// APIConfig points at the backend exposing the classes endpoint.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// StorageConfig locates the local key/value store.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig locates the log file written while the screen runs.
type LogConfig struct {
	File string `yaml:"file"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	dataDir := util.DataDir(AppName)
	return &Config{
		API: APIConfig{
			BaseURL: DefaultAPIURL,
			Timeout: DefaultAPITimeout,
		},
		Storage: StorageConfig{
			Path: filepath.Join(dataDir, DBFileName),
		},
		Log: LogConfig{
			File: filepath.Join(dataDir, LogFileName),
		},
		Theme:      "default",
		ReportsDir: util.ReportsDir(AppName),
	}
}

// Load loads configuration from file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to defaults
// otherwise. The API URL environment override is applied in both cases.
func LoadOrDefault(path string) (*Config, error) {
	cfg := DefaultConfig()
	if Exists(path) {
		var err error
		cfg, err = Load(path)
		if err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides file values with environment variables.
func (c *Config) ApplyEnv() {
	if url := strings.TrimSpace(os.Getenv(APIURLEnv)); url != "" {
		c.API.BaseURL = url
	}
}

// Validate reports configuration values the screen cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage.path must not be empty")
	}
	return nil
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Exists checks if config file exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
