package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eslsoft/vocdrill/pkg/validator"
	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Study    StudyConfig    `mapstructure:"study"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path   string `mapstructure:"path" validate:"required"`
	LogSQL bool   `mapstructure:"log_sql"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// StudyConfig holds quiz behaviour settings
type StudyConfig struct {
	FeedbackDelay time.Duration `mapstructure:"feedback_delay" validate:"gte=0"`
	WeeklyLimit   int           `mapstructure:"weekly_limit" validate:"gte=1"`
	ChoiceOptions int           `mapstructure:"choice_options" validate:"gte=2,lte=8"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration through v. Flags bound to v take precedence over the file.
func LoadFrom(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".vocdrill"))
	}

	setDefaults(v)

	v.SetEnvPrefix("VOCDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := validator.ValidateStruct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("database.log_sql", false)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "json")

	v.SetDefault("study.feedback_delay", 1500*time.Millisecond)
	v.SetDefault("study.weekly_limit", 8)
	v.SetDefault("study.choice_options", 4)
}

// DefaultDatabasePath places the database under the user config directory, falling back to
// the working directory.
func DefaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "vocabulary.db"
	}
	return filepath.Join(dir, "vocdrill", "vocabulary.db")
}

// DatabaseDSN returns the go-sqlite3 connection string
func (c *Config) DatabaseDSN() string {
	if c.Database.Path == ":memory:" {
		return ":memory:?_foreign_keys=on&_loc=auto"
	}
	return fmt.Sprintf("file:%s?_foreign_keys=on&_loc=auto&_busy_timeout=5000", c.Database.Path)
}
