package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Server settings. File values come from an optional yaml config;
// environment variables override the file.
type Config struct {
	Port    string `yaml:"port"`
	DataDir string `yaml:"data_dir"`
}

// Get returns the value of an environment variable, or fallback when it
// is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the yaml config at path. A missing file is not an error;
// defaults apply and env overrides still run.
func Load(path string) (Config, error) {
	cfg := Config{
		Port:    "8080",
		DataDir: "data",
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load config: read %q: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	}

	cfg.Port = Get("PORT", cfg.Port)
	cfg.DataDir = Get("DATA_DIR", cfg.DataDir)
	return cfg, nil
}
