package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/streamhub/streamhub/internal/recordstore/migrations"
)

// PostgresStore keeps every collection as a row in a single jsonb table.
// Each Save is one upsert, so individual writes are atomic; the
// read-modify-write cycle above the store remains last-write-wins.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the database, runs embedded migrations, and returns
// a ready store.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.runMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return s, nil
}

// NewPostgresStoreWithDB wraps an existing connection without running
// migrations. Used by tests.
func NewPostgresStoreWithDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, s.db, ".")
}

func (s *PostgresStore) Load(ctx context.Context, collection string) ([]byte, error) {
	query := `SELECT data FROM collections WHERE name = $1`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, collection).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return data, nil
}

func (s *PostgresStore) Save(ctx context.Context, collection string, data []byte) error {
	query := `INSERT INTO collections (name, data)
	          VALUES ($1, $2)
	          ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	if _, err := s.db.ExecContext(ctx, query, collection, data); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection string) error {
	query := `DELETE FROM collections WHERE name = $1`

	if _, err := s.db.ExecContext(ctx, query, collection); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
