package db

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/snnyvrz/library/internal/config"
	"github.com/snnyvrz/library/internal/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

// Open connects to the configured database, retrying while it is not ready.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.GinMode == "debug" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	return ConnectWithRetry(dialector, gormCfg, defaultMaxAttempts, defaultDelayBetweenTry, log)
}

func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite, "":
		if err := ensureDir(cfg.SQLitePath); err != nil {
			return nil, err
		}
		return sqlite.Open(SQLiteDSN(cfg.SQLitePath)), nil
	default:
		return nil, errors.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// SQLiteDSN turns a file path into a DSN with foreign key enforcement on.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func ensureDir(path string) error {
	if strings.HasPrefix(path, "file:") || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "unable to create data folder %s", dir)
	}
	return nil
}

func ConnectWithRetry(dialector gorm.Dialector, gormCfg *gorm.Config, maxAttempts int, delay time.Duration, log *zap.Logger) (*gorm.DB, error) {
	var err error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var db *gorm.DB
		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				if dialector.Name() == "sqlite" {
					sqlDB.SetMaxOpenConns(1)
				}
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					return db, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Warn("db not ready",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
			zap.Error(err),
		)
		if attempt < maxAttempts {
			time.Sleep(delay)
		}
	}

	return nil, errors.Wrapf(err, "could not connect to db after %d attempts", maxAttempts)
}

// Migrate creates or updates the authors and books tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Author{}, &model.Book{}); err != nil {
		return errors.Wrap(err, "migrate schema")
	}
	return nil
}
