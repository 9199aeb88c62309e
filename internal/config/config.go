// Package config handles CLI configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/bnema/screenpos/display"
)

// Config represents the application configuration
type Config struct {
	// Display contains the session signals handed to the display backends.
	Display DisplayConfig `mapstructure:"display"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// DisplayConfig mirrors display.Config so a config file can pin the
// session signals that otherwise come from the environment.
type DisplayConfig struct {
	SessionType       string `mapstructure:"session_type"`
	RuntimeDir        string `mapstructure:"runtime_dir"`
	InstanceSignature string `mapstructure:"instance_signature"`
	SocketPath        string `mapstructure:"socket_path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("screenpos")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "screenpos"))
		}
		viper.AddConfigPath(".")
	}

	// Session signals default to the live environment; a config file can
	// pin them for reproducible setups.
	env := display.ConfigFromEnv()
	viper.SetDefault("display.session_type", env.SessionType)
	viper.SetDefault("display.runtime_dir", env.RuntimeDir)
	viper.SetDefault("display.instance_signature", env.InstanceSignature)
	viper.SetDefault("display.socket_path", "")
	viper.SetDefault("logging.log_level", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		env := display.ConfigFromEnv()
		return &Config{
			Display: DisplayConfig{
				SessionType:       env.SessionType,
				RuntimeDir:        env.RuntimeDir,
				InstanceSignature: env.InstanceSignature,
			},
		}
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// DisplayConfig converts the app config into the struct the display
// backends consume.
func (c *Config) DisplayConfig() display.Config {
	return display.Config{
		SessionType:       c.Display.SessionType,
		RuntimeDir:        c.Display.RuntimeDir,
		InstanceSignature: c.Display.InstanceSignature,
		SocketPath:        c.Display.SocketPath,
	}
}
