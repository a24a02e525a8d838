package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	OutputText = "text"
	OutputJSON = "json"

	envPrefix = "WORKTIME"
)

// Config represents application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // Empty means console
}

// OutputConfig represents how CLI results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load loads configuration from file, .env and WORKTIME_* environment variables.
// A missing config file is not an error unless configPath names it explicitly.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("output.format", OutputText)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("worktime")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.worktime")
		v.AddConfigPath("/etc/worktime")
	}

	// Read environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}

	switch c.Output.Format {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output.format must be '%s' or '%s', got '%s'", OutputText, OutputJSON, c.Output.Format)
	}

	return nil
}

// ZapLevel parses log.level
func (c *LogConfig) ZapLevel() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
