package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shiftboard/internal/client/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLite persists the token of one origin in a local database file.
type SQLite struct {
	db     *sql.DB
	origin string
}

// OpenSQLite opens (creating if needed) the database at path and applies the
// embedded migrations.
func OpenSQLite(ctx context.Context, path, origin string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate credential db: %w", err)
	}

	return NewSQLite(db, origin), nil
}

// NewSQLite wraps an already migrated database.
func NewSQLite(db *sql.DB, origin string) *SQLite {
	return &SQLite{db: db, origin: origin}
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (s *SQLite) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `SELECT token FROM credentials WHERE origin = ?`, s.origin).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token[%s]: %w", s.origin, err)
	}
	return token, nil
}

func (s *SQLite) Set(ctx context.Context, token string) error {
	if token == "" {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE origin = ?`, s.origin); err != nil {
			return fmt.Errorf("failed to clear token[%s]: %w", s.origin, err)
		}
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (origin, token, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(origin) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at
	`, s.origin, token)
	if err != nil {
		return fmt.Errorf("failed to set token[%s]: %w", s.origin, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
