package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/session"
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS local_storage (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at TEXT NOT NULL
    )`,
}

// LocalStorage persists session.Storage items in SQL: sqlite for a file path,
// Postgres for a postgres:// URL.
type LocalStorage struct {
	db      *sql.DB
	dialect dialect
}

var _ session.Storage = (*LocalStorage)(nil)

// OpenStorage opens the database named by dsn and applies migrations.
func OpenStorage(ctx context.Context, dsn string) (*LocalStorage, error) {
	if dsn == "" {
		return nil, errors.New("storage dsn is empty")
	}

	var (
		db  *sql.DB
		d   dialect
		err error
	)
	if isPostgresURL(dsn) {
		d = dialectPostgres
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(4)
		db.SetConnMaxIdleTime(5 * time.Minute)
	} else {
		d = dialectSQLite
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)

		if err := applyPragmas(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping storage: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &LocalStorage{db: db, dialect: d}, nil
}

func isPostgresURL(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	for _, stmt := range pragmas {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply %s: %w", stmt, err)
		}
	}
	return nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	return WithTx(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		for _, stmt := range migrationStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("execute migration: %w", err)
			}
		}
		return nil
	})
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func WithTx(ctx context.Context, db *sql.DB, fn func(context.Context, *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// rebind rewrites ? placeholders to $1, $2, ... for Postgres.
func (s *LocalStorage) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *LocalStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT value FROM local_storage WHERE key = ?`), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *LocalStorage) SetItem(ctx context.Context, key, value string) error {
	const upsert = `INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
        ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	return WithTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, s.rebind(upsert), key, value, Now()); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	})
}

func (s *LocalStorage) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM local_storage WHERE key = ?`), key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// UpdatedAt reports when key was last written.
func (s *LocalStorage) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT updated_at FROM local_storage WHERE key = ?`), key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get %s: %w", key, err)
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse updated_at of %s: %w", key, err)
	}
	return ts, true, nil
}

// Ping checks the database is reachable.
func (s *LocalStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *LocalStorage) Close() error {
	return s.db.Close()
}

func Now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
