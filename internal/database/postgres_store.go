package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/locvowork/staff_attendance/internal/repository/builder"
)

const kvTable = "kv_store"

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		kv_key     TEXT PRIMARY KEY,
		kv_value   TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// PostgresStore keeps each key as one row of kv_store
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps db and creates the table if it does not exist.
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("postgres store: %w", errNilDB)
	}
	if _, err := db.ExecContext(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", kvTable, err)
	}
	return &PostgresStore{db: db}, nil
}

var errNilDB = errors.New("db is nil")

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := getQuery(key)
	if err != nil {
		return "", false, err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query, args, err := upsertQuery(key, value, time.Now().UTC())
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	query, args, err := deleteQuery(key)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func getQuery(key string) (string, []interface{}, error) {
	return checked(builder.NewSQLBuilder().
		Select("kv_value").
		From(kvTable).
		Where("kv_key = ?", key).
		Limit(1))
}

func upsertQuery(key, value string, updatedAt time.Time) (string, []interface{}, error) {
	return checked(builder.NewSQLBuilder().
		Insert(kvTable, "kv_key", "kv_value", "updated_at").
		Values(key, value, updatedAt).
		OnConflict([]string{"kv_key"}, "kv_value", "updated_at"))
}

func deleteQuery(key string) (string, []interface{}, error) {
	return checked(builder.NewSQLBuilder().
		Delete(kvTable).
		Where("kv_key = ?", key))
}

func checked(b *builder.SQLBuilder) (string, []interface{}, error) {
	query, args, err := b.BuildSafe()
	if err != nil {
		return "", nil, fmt.Errorf("invalid %s query: %w", kvTable, err)
	}
	return query, args, nil
}
