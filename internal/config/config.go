// Package config loads the EMBER terminal configuration from
// ~/.ember/config.yaml with environment variable overrides. A missing config
// file is not an error; the defaults point at the stock public bin.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Stock bin credentials shipped with the terminal. The bin is public demo
// data; the master key is not a secret worth protecting.
const (
	defaultBinID     = "6832d5068561e97a501b3c2b"
	defaultMasterKey = "$2a$10$hqlbz8FagW8YWBkeXVLhouovoqwqV4alPw/1i2Ty7Pf8YD..HJtlK"
	jsonbinBase      = "https://api.jsonbin.io/v3/b/"
)

// Config holds all tunables for the terminal.
type Config struct {
	BinID     string    `yaml:"bin_id"`
	MasterKey string    `yaml:"master_key"`
	Theme     string    `yaml:"theme"` // "dark" or "light"
	Debug     bool      `yaml:"debug"` // enables category file logging
	Dev       DevConfig `yaml:"dev"`
}

// DevConfig overrides the developer-gate credentials.
type DevConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		BinID:     defaultBinID,
		MasterKey: defaultMasterKey,
		Theme:     "dark",
	}
}

// DefaultPath returns the user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ember", "config.yaml")
	}
	return filepath.Join(home, ".ember", "config.yaml")
}

// Load reads the config file at path (DefaultPath when empty), fills in
// defaults for unset fields, and applies environment overrides. A missing
// file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults + env only.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.BinID == "" {
			cfg.BinID = defaultBinID
		}
		if cfg.MasterKey == "" {
			cfg.MasterKey = defaultMasterKey
		}
		if cfg.Theme == "" {
			cfg.Theme = "dark"
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets environment variables override file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("EMBER_BIN_ID"); v != "" {
		c.BinID = v
	}
	if v := os.Getenv("EMBER_MASTER_KEY"); v != "" {
		c.MasterKey = v
	}
	if v := os.Getenv("EMBER_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("EMBER_DEBUG"); v == "1" || v == "true" {
		c.Debug = true
	}
	if v := os.Getenv("EMBER_DEV_USERNAME"); v != "" {
		c.Dev.Username = v
	}
	if v := os.Getenv("EMBER_DEV_PASSWORD"); v != "" {
		c.Dev.Password = v
	}
}

// BinURL returns the full JSONBin document URL for the configured bin.
func (c Config) BinURL() string {
	return jsonbinBase + c.BinID
}

// LogDir returns where category log files are written.
func LogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ember", "logs")
	}
	return filepath.Join(home, ".ember", "logs")
}
