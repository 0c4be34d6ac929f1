package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	apperrors "chatwidget/internal/infrastructure/errors"
)

const (
	// AppName is used for the config directory and the window title
	AppName = "chatwidget"

	// EnvPrefix is the prefix for environment overrides, e.g. WIDGET_LOG_LEVEL
	EnvPrefix = "WIDGET"

	configName = "widget"
	configType = "yaml"
)

// Config holds the application configuration
type Config struct {
	Environment string       `mapstructure:"environment" yaml:"environment"`
	Window      WindowConfig `mapstructure:"window" yaml:"window"`
	Log         LogConfig    `mapstructure:"log" yaml:"log"`
}

// WindowConfig describes the primary window
type WindowConfig struct {
	Name        string `mapstructure:"name" yaml:"name"` // well-known identifier of the primary window
	Title       string `mapstructure:"title" yaml:"title"`
	Frameless   bool   `mapstructure:"frameless" yaml:"frameless"`
	AlwaysOnTop bool   `mapstructure:"always_on_top" yaml:"always_on_top"`
}

// LogConfig controls the structured logger
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// setDefaults registers every key so that env overrides work with Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "production")
	v.SetDefault("window.name", "main")
	v.SetDefault("window.title", AppName)
	v.SetDefault("window.frameless", true)
	v.SetDefault("window.always_on_top", true)
	v.SetDefault("log.level", "info")
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() *Config {
	return &Config{
		Environment: "production",
		Window: WindowConfig{
			Name:        "main",
			Title:       AppName,
			Frameless:   true,
			AlwaysOnTop: true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultConfigDir returns the per-user configuration directory, or "" if unknown
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName)
}

// Load reads configuration from defaults, an optional widget.yaml in
// configDir, and WIDGET_* environment variables, in increasing priority.
// A missing config file is not an error.
func Load(v *viper.Viper, configDir string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configDir != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, apperrors.NewWithContext("config.load", err, apperrors.ErrCodeConfig,
					map[string]string{"dir": configDir})
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.New("config.unmarshal", err, apperrors.ErrCodeConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the application cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Window.Name) == "" {
		return invalid("window.name", c.Window.Name, "window name cannot be empty")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}

	switch c.Environment {
	case "development", "test", "production":
	default:
		return invalid("environment", c.Environment,
			fmt.Sprintf("environment must be development, test or production, got %q", c.Environment))
	}

	return nil
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func invalid(key, value, msg string) error {
	return apperrors.NewWithContext("config.validate", errors.New(msg), apperrors.ErrCodeConfig,
		map[string]string{"key": key, "value": value})
}
