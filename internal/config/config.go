package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	CredentialsPath string `mapstructure:"credentials_path"`
	Scope           string `mapstructure:"scope"`         // "readonly" or "full"
	LookbackDays    int    `mapstructure:"lookback_days"` // default analytics window
	RowLimit        int64  `mapstructure:"row_limit"`     // default analytics row limit
	LogLevel        string `mapstructure:"log_level"`
}

// ReadOnly reports whether the readonly webmasters scope should be used.
// Sitemap submit/delete need the full scope.
func (c *Config) ReadOnly() bool {
	return c.Scope != "full"
}

// DefaultConfigDir returns the default config directory (~/.gscctl/).
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".gscctl")
	}
	return filepath.Join(home, ".gscctl")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("credentials_path", "")
	v.SetDefault("scope", "readonly")
	v.SetDefault("lookback_days", 28)
	v.SetDefault("row_limit", 1000)
	v.SetDefault("log_level", "info")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "gscctl"))
		}
		v.AddConfigPath(DefaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: GSCCTL_CREDENTIALS_PATH, GSCCTL_SCOPE, etc.
	v.SetEnvPrefix("GSCCTL")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
