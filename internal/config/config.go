package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is populated from the environment; an optional env file is loaded
// first and never overrides variables that are already set.
type Config struct {
	GinMode   string `mapstructure:"gin_mode"`
	TZ        string `mapstructure:"tz"`
	Addr      string `mapstructure:"app_addr"`
	DBDriver  string `mapstructure:"db_driver"`
	DBURL     string `mapstructure:"db_url"`
	DBHost    string `mapstructure:"db_host"`
	DBPort    string `mapstructure:"db_port"`
	DBUser    string `mapstructure:"db_user"`
	DBPass    string `mapstructure:"db_pass"`
	DBName    string `mapstructure:"db_name"`
	DBSSLMode string `mapstructure:"db_sslmode"`
	// SQLitePath is the database file used when DBDriver is sqlite.
	SQLitePath string `mapstructure:"sqlite_path"`

	LogLevel          string `mapstructure:"log_level"`
	LogFile           string `mapstructure:"log_file"`
	LogFileMaxSize    int    `mapstructure:"log_file_max_size"`
	LogFileMaxBackups int    `mapstructure:"log_file_max_backups"`
	LogFileMaxAge     int    `mapstructure:"log_file_max_age"`
	LogCompress       bool   `mapstructure:"log_compress"`

	CoverEnabled   bool          `mapstructure:"cover_enabled"`
	CoverBaseURL   string        `mapstructure:"cover_base_url"`
	CoverUserAgent string        `mapstructure:"cover_user_agent"`
	CoverRPS       int           `mapstructure:"cover_rps"`
	CoverTimeout   time.Duration `mapstructure:"cover_timeout"`
}

var defaults = map[string]any{
	"gin_mode":             "debug",
	"tz":                   "UTC",
	"app_addr":             ":8080",
	"db_driver":            DriverSQLite,
	"db_url":               "",
	"db_host":              "localhost",
	"db_port":              "5432",
	"db_user":              "postgres",
	"db_pass":              "",
	"db_name":              "library",
	"db_sslmode":           "",
	"sqlite_path":          "data/library.sqlite",
	"log_level":            "info",
	"log_file":             "",
	"log_file_max_size":    10,
	"log_file_max_backups": 3,
	"log_file_max_age":     28,
	"log_compress":         false,
	"cover_enabled":        true,
	"cover_base_url":       "https://openlibrary.org",
	"cover_user_agent":     "library-catalog/0.1",
	"cover_rps":            5,
	"cover_timeout":        "3s",
}

// Load reads envFile (if it exists) and then the process environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, errors.Wrapf(err, "load %s", envFile)
			}
		}
	}

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, errors.Wrapf(err, "bind %s", key)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if cfg.DBDriver != DriverSQLite && cfg.DBDriver != DriverPostgres {
		return nil, errors.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.CoverRPS <= 0 {
		return nil, errors.Errorf("COVER_RPS must be positive, got %d", cfg.CoverRPS)
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	if c.DBURL != "" {
		return c.DBURL
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}
