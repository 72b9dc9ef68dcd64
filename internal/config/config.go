package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFiles are the config file names looked up in the working directory,
// in order.
var ConfigFiles = []string{".stackpickrc.json", ".stackpickrc.yaml", ".stackpickrc.yml"}

// Config represents the stackpick configuration
type Config struct {
	Catalog        string       `mapstructure:"catalog" json:"catalog"`
	FollowSymlinks bool         `mapstructure:"followSymlinks" json:"followSymlinks"`
	Format         string       `mapstructure:"format" json:"format"`
	Output         string       `mapstructure:"output" json:"output,omitempty"`
	Quiet          bool         `mapstructure:"quiet" json:"quiet"`
	Verbose        bool         `mapstructure:"verbose" json:"verbose"`
	Parallel       bool         `mapstructure:"parallel" json:"parallel"`
	Concurrency    int          `mapstructure:"concurrency" json:"concurrency"`
	ShowBreakdown  bool         `mapstructure:"showBreakdown" json:"showBreakdown"`
	Schemas        SchemaConfig `mapstructure:"schemas" json:"schemas"`
}

// SchemaConfig contains schema configuration
type SchemaConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"`
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("catalog", "")
	viper.SetDefault("followSymlinks", false)
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("parallel", false)
	viper.SetDefault("concurrency", 4)
	viper.SetDefault("showBreakdown", false)
	viper.SetDefault("schemas.enabled", true)
}

// LoadConfig loads configuration from defaults, the first config file found,
// STACKPICK_* environment variables and any flags already bound to viper.
// A non-empty catalogPath overrides the configured catalog.
func LoadConfig(catalogPath string) (*Config, error) {
	SetDefaults()

	for _, path := range ConfigFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		break
	}

	// Environment variables
	viper.SetEnvPrefix("STACKPICK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if catalogPath != "" {
		config.Catalog = catalogPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	if config.Quiet && config.Verbose {
		return fmt.Errorf("quiet and verbose cannot both be set")
	}

	return nil
}

// Default returns the configuration produced by the defaults alone.
func Default() *Config {
	return &Config{
		Format:      "console",
		Concurrency: 4,
		Schemas:     SchemaConfig{Enabled: true},
	}
}

// SaveConfig saves the configuration to path as indented JSON
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, append(jsonData, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
