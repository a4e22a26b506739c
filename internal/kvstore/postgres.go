package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/internship-hub-portal/internal/database"
)

// Postgres is a Store backed by the kv_entries table
type Postgres struct {
	db     *database.DB
	prefix string
}

var _ Store = (*Postgres)(nil)

// NewPostgres creates a store over an open, migrated database
func NewPostgres(db *database.DB, prefix string) *Postgres {
	return &Postgres{db: db, prefix: prefix}
}

func (s *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = $1`, s.prefix+key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or overwrites key
func (s *Postgres) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, s.prefix+key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *Postgres) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, s.prefix+key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Ping verifies the database connection is healthy
func (s *Postgres) Ping(ctx context.Context) error {
	return s.db.HealthCheck(ctx)
}
