// Package config handles reading and writing the codename configuration file (~/.codename/config.toml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/scbrown/codename/internal/codename"
)

// Config holds codename defaults. Zero values mean "not set".
type Config struct {
	Num       int    `toml:"num,omitempty" json:"num,omitempty"`
	Delimiter string `toml:"delimiter,omitempty" json:"delimiter,omitempty"`
	DictPath  string `toml:"dict_path,omitempty" json:"dict_path,omitempty"`
}

// validKeys lists the allowed configuration keys.
var validKeys = map[string]bool{
	"num":       true,
	"delimiter": true,
	"dict_path": true,
}

// ValidKeys returns the sorted list of valid configuration keys.
func ValidKeys() []string {
	return []string{"delimiter", "dict_path", "num"}
}

// Path returns the default config file path (~/.codename/config.toml).
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".codename", "config.toml")
	}
	return filepath.Join(home, ".codename", "config.toml")
}

// LoadFrom reads the config from a specific path. Returns an empty Config if
// the file does not exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// SaveTo writes the config to a specific path, creating parent directories as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Get returns the string value of a configuration key.
func (c *Config) Get(key string) (string, error) {
	if !validKeys[key] {
		return "", fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(ValidKeys(), ", "))
	}
	switch key {
	case "num":
		if c.Num == 0 {
			return "", nil
		}
		return strconv.Itoa(c.Num), nil
	case "delimiter":
		return c.Delimiter, nil
	case "dict_path":
		return c.DictPath, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Set assigns a value to a configuration key. An empty value unsets it.
// num and delimiter are validated the same way as their flags.
func (c *Config) Set(key, value string) error {
	if !validKeys[key] {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(ValidKeys(), ", "))
	}
	switch key {
	case "num":
		if value == "" {
			c.Num = 0
			return nil
		}
		n, err := codename.ParseNum(value)
		if err != nil {
			return err
		}
		c.Num = n
	case "delimiter":
		if value != "" {
			if err := codename.ValidateDelimiter(value); err != nil {
				return err
			}
		}
		c.Delimiter = value
	case "dict_path":
		c.DictPath = value
	}
	return nil
}
