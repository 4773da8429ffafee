package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the optional config
// file and environment variables. Flags on the CLI override these values.
type Config struct {
	Env    string `mapstructure:"env"`    // application environment (local, production)
	DBPath string `mapstructure:"-"`      // SQLite database path, loaded from RECALLO_DB
	Study  Study  `mapstructure:"study"`  // session-sizing section
	Watch  Watch  `mapstructure:"watch"`  // reminder-watcher section
}

// Study contains session-sizing parameters.
type Study struct {
	MaxSessionSize int `mapstructure:"max_session_size"` // cards per session cap
}

// Watch contains reminder-watcher parameters.
type Watch struct {
	IntervalMinutes int `mapstructure:"interval_minutes"` // minutes between recommendation checks
	QuietStartHour  int `mapstructure:"quiet_start_hour"` // no reminders from this hour (inclusive)
	QuietEndHour    int `mapstructure:"quiet_end_hour"`   // until this hour (exclusive)
}

// Load reads configuration from the config file and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())
	v.AddConfigPath(".")

	v.SetDefault("env", "local")
	v.SetDefault("study.max_session_size", 20)
	v.SetDefault("watch.interval_minutes", 60)
	v.SetDefault("watch.quiet_start_hour", 22)
	v.SetDefault("watch.quiet_end_hour", 8)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("RECALLO")
	v.AutomaticEnv()

	_ = v.BindEnv("env", "RECALLO_ENV")
	_ = v.BindEnv("db_path", "RECALLO_DB")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// DBPath stays optional here; the CLI falls back to the XDG data dir.
	cfg.DBPath = v.GetString("db_path")

	return &cfg, nil
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "recallo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "recallo")
}
