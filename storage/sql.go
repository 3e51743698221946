package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"hotel-frontdesk/models"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Dialect selects driver name and placeholder style for SQLRepository.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "pgx"
)

// SQLRepository persists the snapshot to a single state table keyed by
// bucket, as a JSON blob.
type SQLRepository struct {
	db      *sql.DB
	dialect Dialect
}

// OpenSQLite opens (and creates, if needed) a SQLite database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLRepository, error) {
	if path == "" {
		path = "hotel.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open(string(DialectSQLite), path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return NewSQLRepository(ctx, db, DialectSQLite)
}

// OpenPostgres connects through pgx and pings before returning.
func OpenPostgres(ctx context.Context, dsn string) (*SQLRepository, error) {
	db, err := sql.Open(string(DialectPostgres), dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return NewSQLRepository(ctx, db, DialectPostgres)
}

// NewSQLRepository wraps an open handle and ensures the state table exists.
func NewSQLRepository(ctx context.Context, db *sql.DB, dialect Dialect) (*SQLRepository, error) {
	payloadType := "BLOB"
	if dialect == DialectPostgres {
		payloadType = "BYTEA"
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload `+payloadType+` NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &SQLRepository{db: db, dialect: dialect}, nil
}

func (r *SQLRepository) placeholder(n int) string {
	if r.dialect == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (r *SQLRepository) Load(ctx context.Context) (models.Snapshot, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM state WHERE bucket = `+r.placeholder(1), SnapshotKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("select state: %w", err)
	}
	return DecodeSnapshot(payload)
}

func (r *SQLRepository) Save(ctx context.Context, snap models.Snapshot) (retErr error) {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	stmt := `INSERT INTO state(bucket,payload) VALUES(` + r.placeholder(1) + `,` + r.placeholder(2) +
		`) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`
	if _, err = tx.ExecContext(ctx, stmt, SnapshotKey, data); err != nil {
		return fmt.Errorf("upsert %s: %w", SnapshotKey, err)
	}
	return tx.Commit()
}

// DB exposes the underlying handle for tests.
func (r *SQLRepository) DB() *sql.DB { return r.db }

func (r *SQLRepository) Close() error { return r.db.Close() }
