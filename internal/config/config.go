// Package config loads dqview configuration from flags, config files,
// and the environment via viper.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents the dqview configuration.
type Config struct {
	Root     string   `mapstructure:"root"`
	Format   string   `mapstructure:"format"`
	Output   string   `mapstructure:"output"`
	Quiet    bool     `mapstructure:"quiet"`
	Verbose  bool     `mapstructure:"verbose"`
	Details  bool     `mapstructure:"details"`
	NoColor  bool     `mapstructure:"noColor"`
	Patterns []string `mapstructure:"patterns"`
}

// LoadConfig loads configuration from config files, environment variables,
// and previously bound flags. rootPath, when non-empty, overrides the
// configured root.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("details", false)
	viper.SetDefault("noColor", false)

	configPaths := []string{".dqviewrc.json", ".dqviewrc.yaml", ".dqviewrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		break
	}

	viper.SetEnvPrefix("DQVIEW")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}
	if config.Root == "" {
		return fmt.Errorf("root directory must not be empty")
	}
	return nil
}
