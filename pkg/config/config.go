// Package config loads the typed service settings at process start.
//
// Settings come from three layers with increasing precedence: built-in
// defaults, an optional YAML settings file, and environment variables
// (DATABASE_URL, ENVIRONMENT, LOG_LEVEL, PORT). Command-line flags are
// applied on top by the caller.
package config

import (
	"fmt"
	"os"

	"github.com/gookit/config/v2"
	"github.com/gookit/config/v2/yaml"
)

// Settings is the typed configuration object for the service.
type Settings struct {
	DatabaseURL string `config:"database_url"`
	Environment string `config:"environment"`
	LogLevel    string `config:"log_level"`
	Port        string `config:"port"`
}

// envKeys maps environment variable names to config keys.
var envKeys = map[string]string{
	"DATABASE_URL": "database_url",
	"ENVIRONMENT":  "environment",
	"LOG_LEVEL":    "log_level",
	"PORT":         "port",
}

// Load reads settings from defaults, the optional YAML file at path, and the
// environment. An empty path skips the file layer; a named file that is
// missing is an error so that a typoed -config flag fails loudly.
func Load(path string) (*Settings, error) {
	c := config.NewWithOptions("notelite", func(opt *config.Options) {
		opt.ParseEnv = true
		opt.DecoderConfig.TagName = "config"
	})
	c.AddDriver(yaml.Driver)

	if err := c.LoadData(map[string]any{
		"database_url": "notes.db",
		"environment":  "development",
		"log_level":    "info",
		"port":         "8080",
	}); err != nil {
		return nil, fmt.Errorf("failed to load default settings: %w", err)
	}

	if path != "" {
		if err := c.LoadFiles(path); err != nil {
			return nil, fmt.Errorf("failed to load settings file %s: %w", path, err)
		}
	}

	// Environment variables override defaults and file values. Empty values
	// are treated as unset, which containers sometimes leave behind.
	for name, key := range envKeys {
		if val, ok := os.LookupEnv(name); ok && val != "" {
			if err := c.Set(key, val); err != nil {
				return nil, fmt.Errorf("failed to apply %s: %w", name, err)
			}
		}
	}

	settings := &Settings{}
	if err := c.BindStruct("", settings); err != nil {
		return nil, fmt.Errorf("failed to bind settings: %w", err)
	}
	return settings, nil
}
