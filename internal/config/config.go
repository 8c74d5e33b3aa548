package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Resolver ResolverConfig `mapstructure:"resolver"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig lists where holidays come from
type CalendarConfig struct {
	HolidayFiles []string `mapstructure:"holiday_files"` // one YYYY-MM-DD [note] per line
	Holidays     []string `mapstructure:"holidays"`      // inline YYYY-MM-DD values
}

// ResolverConfig tunes the business-day offset search
type ResolverConfig struct {
	MaxIterations int `mapstructure:"max_iterations"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty logs to stderr
	Level string `mapstructure:"level"`
}

const (
	defaultMaxIterations = 10000
	defaultLogLevel      = "warn"
)

// Load loads configuration from file. With an empty configPath the usual
// locations are searched and a missing file falls back to defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("calendar.holiday_files", []string{})
	v.SetDefault("calendar.holidays", []string{})
	v.SetDefault("resolver.max_iterations", defaultMaxIterations)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", defaultLogLevel)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.biz-days")
		v.AddConfigPath("/etc/biz-days")
	}

	// Read environment variables, e.g. BIZDAYS_LOG_LEVEL
	v.SetEnvPrefix("bizdays")
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
	if c.Resolver.MaxIterations <= 0 {
		return fmt.Errorf("resolver.max_iterations must be positive")
	}

	for i, file := range c.Calendar.HolidayFiles {
		if strings.TrimSpace(file) == "" {
			return fmt.Errorf("calendar.holiday_files[%d] is empty", i)
		}
	}

	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}

	return nil
}

// ZapLevel parses the configured log level. Default: warn
func (c *LogConfig) ZapLevel() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.WarnLevel, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return level, fmt.Errorf("log.level %q is not a valid level: %w", c.Level, err)
	}
	return level, nil
}
