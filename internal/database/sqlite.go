package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alp-turan/sugarbyte/internal/config"
	"github.com/alp-turan/sugarbyte/internal/database/migrations"
	apperrors "github.com/alp-turan/sugarbyte/internal/errors"
	"github.com/alp-turan/sugarbyte/internal/logger"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the application's storage handle. It is constructed once by the
// composition root and passed by reference to the stores; liveness checks and
// reconnection are explicit methods rather than first-access side effects.
type DB struct {
	path string
	mu   sync.Mutex
	db   *gorm.DB
}

// Open opens (or creates) the SQLite database at cfg.Path and applies
// pending migrations.
func Open(cfg config.DBConfig) (*DB, error) {
	h := &DB{path: cfg.Path}

	db, err := h.connect()
	if err != nil {
		return nil, err
	}

	if err := migrations.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	h.db = db
	logger.Info("Database opened and migrations completed", "path", cfg.Path)
	return h, nil
}

func (h *DB) connect() (*gorm.DB, error) {
	if dir := filepath.Dir(h.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// SQLite leaves foreign keys off unless asked; the logentry cascade
	// depends on this pragma, and it must apply to every pooled connection.
	dsn := h.path + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// Gorm returns the underlying GORM database instance.
func (h *DB) Gorm() *gorm.DB {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.db
}

// Ping verifies the connection is live. If it is not, exactly one reconnect
// is attempted; a second failure surfaces as a storage-unavailable error.
func (h *DB) Ping(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil && sqlDB.PingContext(ctx) == nil {
			return nil
		}
	}

	logger.Warn("Database connection lost, reconnecting", "path", h.path)
	db, err := h.connect()
	if err != nil {
		return apperrors.NewStorageUnavailableError(err)
	}

	h.db = db
	return nil
}

// Close closes the underlying connection.
func (h *DB) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return nil
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
