package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresStore holds the persistent identifier-mapping cache and the
// request audit log.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection and returns a store instance.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// --- Mapping cache ---

// Get reads a cached hash translation.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM revision_mappings WHERE cache_key = $1`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get mapping: %w", err)
	}
	return value, true, nil
}

// Put stores a hash translation. Mappings are immutable, so a
// concurrent duplicate insert is a no-op rather than a conflict.
func (s *PostgresStore) Put(ctx context.Context, key, value string) error {
	query := `INSERT INTO revision_mappings (cache_key, value)
	          VALUES ($1, $2)
	          ON CONFLICT (cache_key) DO NOTHING`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("put mapping: %w", err)
	}
	return nil
}

// --- Audit log ---

// WriteAudit implements middleware.AuditWriter.
func (s *PostgresStore) WriteAudit(action, resource, details, ip, userAgent string) error {
	query := `INSERT INTO audit_logs (action, resource, details, ip, user_agent)
	          VALUES ($1, $2, $3::jsonb, $4, $5)`
	_, err := s.db.ExecContext(context.Background(), query,
		action, resource, details, ip, userAgent,
	)
	return err
}
