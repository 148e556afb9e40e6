// Package database owns the GORM handle and schema migrations. The backend
// (local embedded SQLite or a remote hosted Postgres) is chosen by
// configuration; both are reached through the same *gorm.DB, never through
// type hierarchies.
package database

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kaslele/internal/config"
	"kaslele/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Manager handles the database connection lifecycle: opened once in main,
// passed to the store, closed at shutdown. Migrations run over their own
// short-lived connection so closing the migrator never touches the GORM
// handle.
type Manager struct {
	db      *gorm.DB
	backend config.Backend
	dbURL   string
}

// NewManager opens the database selected by cfg.DBBackend.
func NewManager(cfg *config.Config) (*Manager, error) {
	var dialector gorm.Dialector
	var dbURL string

	switch cfg.DBBackend {
	case config.BackendSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
		dbURL = "sqlite3://" + cfg.SQLitePath
	case config.BackendPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
		})
		dbURL = cfg.PostgresURL()
	default:
		return nil, fmt.Errorf("unsupported database backend: %s", cfg.DBBackend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	switch cfg.DBBackend {
	case config.BackendSQLite:
		// A single connection makes SQLite the sole arbiter of write
		// ordering, matching its file-locking model.
		sqlDB.SetMaxOpenConns(1)
	case config.BackendPostgres:
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &Manager{db: db, backend: cfg.DBBackend, dbURL: dbURL}, nil
}

// Migrate applies pending migrations from the embedded, backend-specific SQL.
func (m *Manager) Migrate() error {
	logger.Get().Info("Running database migrations...")

	mig, err := m.Migrator()
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// Migrator builds a migrate instance over the embedded sources for the
// active backend. It dials its own connection; callers own Close.
func (m *Manager) Migrator() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations/"+string(m.backend))
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", src, m.dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the underlying database connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB: %w", err)
	}
	return sqlDB.Close()
}
