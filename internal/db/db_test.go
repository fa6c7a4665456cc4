package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/snnyvrz/library/internal/config"
	"github.com/snnyvrz/library/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "data/library.sqlite?_foreign_keys=on", SQLiteDSN("data/library.sqlite"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", SQLiteDSN("file:x?mode=memory"))
}

func TestDialector_UnsupportedDriver(t *testing.T) {
	_, err := Dialector(&config.Config{DBDriver: "mysql"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestDialector_Postgres(t *testing.T) {
	d, err := Dialector(&config.Config{DBDriver: config.DriverPostgres, DBURL: "postgres://localhost/library"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())
}

func TestOpen_SQLiteCreatesDirectoryAndEnforcesForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "library.sqlite")
	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: path, GinMode: "test"}

	gdb, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.FileExists(t, path)
	require.NoError(t, Migrate(gdb))

	orphan := model.Book{ISBN: "0123456789", Title: "Orphan", AuthorID: 99}
	err = gdb.Omit("Author").Create(&orphan).Error
	assert.Error(t, err, "foreign key to a missing author should be rejected")
}

func TestConnectWithRetry_GivesUpAndLogs(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	dir := t.TempDir()
	_, err := ConnectWithRetry(sqlite.Open(dir), &gorm.Config{}, 2, time.Millisecond, zap.New(core))

	assert.ErrorContains(t, err, "could not connect to db after 2 attempts")
	assert.Equal(t, 2, logs.FilterMessage("db not ready").Len())
}
