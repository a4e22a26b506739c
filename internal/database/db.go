package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/internship-hub-portal/internal/config"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// KVTable holds the persisted key-value entries
const KVTable = "kv_entries"

var (
	// ErrDirtySchema means a migration failed half way and needs manual repair
	ErrDirtySchema = errors.New("database schema is dirty")
	// ErrSchemaMissing means the key-value table does not exist yet
	ErrSchemaMissing = errors.New("key-value table is missing")
)

// DB is the Postgres connection backing the key-value store
type DB struct {
	*sql.DB
	log            zerolog.Logger
	migrationsPath string

	mu      sync.RWMutex
	version uint
	dirty   bool
}

// New opens a pooled connection and verifies it with a ping
func New(cfg *config.DatabaseConfig, log zerolog.Logger) (*DB, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	wrapper := &DB{
		DB:             db,
		log:            log.With().Str("component", "database").Str("table", KVTable).Logger(),
		migrationsPath: cfg.MigrationsPath,
	}

	wrapper.log.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Name).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Store database connection established")

	return wrapper, nil
}

// Migrate brings the key-value schema up to date and records its version
func (db *DB) Migrate() error {
	db.log.Info().Str("path", db.migrationsPath).Msg("Running store migrations")

	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+db.migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	db.mu.Lock()
	db.version, db.dirty = version, dirty
	db.mu.Unlock()

	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirtySchema, version)
	}
	db.log.Info().Uint("version", version).Msg("Store schema ready")
	return nil
}

// SchemaVersion returns the version recorded by the last Migrate
func (db *DB) SchemaVersion() (uint, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.version, db.dirty
}

// HealthCheck pings the database and checks that the key-value table exists
func (db *DB) HealthCheck(ctx context.Context) error {
	if _, dirty := db.SchemaVersion(); dirty {
		return ErrDirtySchema
	}

	var table sql.NullString
	if err := db.QueryRowContext(ctx, `SELECT to_regclass($1)::text`, KVTable).Scan(&table); err != nil {
		return fmt.Errorf("store health check: %w", err)
	}
	if !table.Valid {
		return ErrSchemaMissing
	}
	return nil
}
