// Package config loads server settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is searched for under the XDG config directories.
const DefaultConfigFile = "puz_shelf/config.yaml"

type Config struct {
	Port           string `yaml:"port"`
	DBPath         string `yaml:"db_path"`
	Env            string `yaml:"env"`
	CacheSize      int    `yaml:"cache_size"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

func Default() Config {
	return Config{
		Port:           "8080",
		DBPath:         "puzshelf.db",
		Env:            "development",
		CacheSize:      256,
		MaxUploadBytes: 1024 * 1024,
	}
}

func (c Config) IsProd() bool {
	return c.Env == "production"
}

// Load reads path, or the XDG config file when path is empty, and applies
// PORT, DB_PATH, ENV and CACHE_SIZE from the environment on top. A missing
// default file is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(DefaultConfigFile)
		if err == nil {
			path = found
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("CACHE_SIZE: %w", err)
		}
		cfg.CacheSize = n
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.CacheSize < 1 {
		return errors.New("cache_size must be at least 1")
	}
	if c.MaxUploadBytes < 1 {
		return errors.New("max_upload_bytes must be at least 1")
	}
	return nil
}
