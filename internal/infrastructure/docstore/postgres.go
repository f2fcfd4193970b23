package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"qbrain-backend/internal/infrastructure/database"
	pkgdb "qbrain-backend/pkg/database"
)

const pgUniqueViolation = "23505"

// PostgresStore keeps documents in one JSONB table keyed by (collection, id)
type PostgresStore struct {
	db *database.PostgresDB
}

// NewPostgresStore wraps a connected PostgresDB and creates the schema
func NewPostgresStore(ctx context.Context, db *database.PostgresDB) (*PostgresStore, error) {
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			data JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (collection, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_created ON documents (collection, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_data ON documents USING GIN (data jsonb_path_ops)`,
	}

	return pkgdb.WithTransaction(ctx, s.db.Pool, func(tx pgx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("postgres schema: %w", err)
			}
		}
		return nil
	})
}

func (s *PostgresStore) Create(ctx context.Context, collection, id string, data []byte) error {
	if _, err := decodeObject(data); err != nil {
		return err
	}
	_, err := s.db.Pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3::jsonb)`,
		collection, id, string(data))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("postgres insert %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	var doc Document
	err := s.db.Pool.QueryRow(ctx,
		`SELECT id, data, created_at, updated_at FROM documents WHERE collection = $1 AND id = $2`,
		collection, id).Scan(&doc.ID, &doc.Data, &doc.CreatedAt, &doc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get %s/%s: %w", collection, id, err)
	}
	return &doc, nil
}

func (s *PostgresStore) Find(ctx context.Context, collection string, q Query) ([]Document, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	where, args := postgresWhere(collection, q)

	// field names are validated against fieldPattern so they are safe to inline
	order := "created_at"
	if q.OrderBy != "" {
		order = fmt.Sprintf("data->>'%s'", q.OrderBy)
	}
	dir := "ASC"
	if q.Descending {
		dir = "DESC"
	}
	query := fmt.Sprintf(`SELECT id, data, created_at, updated_at FROM documents WHERE %s ORDER BY %s %s NULLS LAST, id %s`, where, order, dir, dir)
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.Limit)
	}

	rows, err := s.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres find %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("postgres scan %s: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *PostgresStore) Set(ctx context.Context, collection, id string, data []byte) error {
	if _, err := decodeObject(data); err != nil {
		return err
	}
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		collection, id, string(data))
	if err != nil {
		return fmt.Errorf("postgres set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Merge uses jsonb concatenation, which replaces top-level keys
func (s *PostgresStore) Merge(ctx context.Context, collection, id string, patch []byte) error {
	if _, err := validatePatch(patch); err != nil {
		return err
	}
	tag, err := s.db.Pool.Exec(ctx,
		`UPDATE documents SET data = data || $3::jsonb, updated_at = NOW() WHERE collection = $1 AND id = $2`,
		collection, id, string(patch))
	if err != nil {
		return fmt.Errorf("postgres merge %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return fmt.Errorf("postgres delete %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Count(ctx context.Context, collection string, q Query) (int64, error) {
	if err := q.validate(); err != nil {
		return 0, err
	}
	where, args := postgresWhere(collection, q)

	var n int64
	if err := s.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE `+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("postgres count %s: %w", collection, err)
	}
	return n, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.HealthCheck(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func postgresWhere(collection string, q Query) (string, []interface{}) {
	clauses := []string{"collection = $1"}
	args := []interface{}{collection}
	for _, f := range q.Filters {
		args = append(args, f.Value)
		clauses = append(clauses, fmt.Sprintf("data->>'%s' = $%d", f.Field, len(args)))
	}
	return strings.Join(clauses, " AND "), args
}

// connectPostgres connects with retry/backoff and prepares the schema
func connectPostgres(ctx context.Context, cfg *database.DBConfig) (*PostgresStore, error) {
	db := database.NewPostgresDB(cfg)

	connectCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store, err := NewPostgresStore(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
