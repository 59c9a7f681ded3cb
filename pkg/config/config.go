/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btclog"
	"gopkg.in/yaml.v3"
)

// Config represents the txwire configuration
type Config struct {
	Output  Output  `yaml:"output"`
	Decode  Decode  `yaml:"decode"`
	Logging Logging `yaml:"logging"`
	Metrics Metrics `yaml:"metrics"`
}

// Output controls how decoded transactions are rendered
type Output struct {
	Format string `yaml:"format"`
}

// Decode contains decoding policy
type Decode struct {
	// Strict rejects input that has bytes left over after the transaction
	Strict bool `yaml:"strict"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Metrics contains metrics configuration
type Metrics struct {
	// Textfile is where a Prometheus text exposition dump is written after
	// each command. Empty disables it.
	Textfile string `yaml:"textfile"`
}

// OutputFormats lists the accepted values for output.format
var OutputFormats = []string{"text", "json", "yaml", "table", "dump"}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: Output{
			Format: "text",
		},
		Decode: Decode{
			Strict: false,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate checks that every field holds a supported value
func (c *Config) Validate() error {
	if !isOutputFormat(c.Output.Format) {
		return fmt.Errorf("unsupported output format %q (want one of %s)",
			c.Output.Format, strings.Join(OutputFormats, ", "))
	}

	if _, ok := btclog.LevelFromString(c.Logging.Level); !ok {
		return fmt.Errorf("unsupported log level %q", c.Logging.Level)
	}

	return nil
}

func isOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// LoadConfig loads configuration from the specified path. Fields missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BootstrapConfig writes a default configuration to configPath and returns it
func BootstrapConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./txwire.yaml"
	}

	// For Linux/macOS, use ~/.config/txwire/config.yaml
	configDir := filepath.Join(homeDir, ".config", "txwire")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
