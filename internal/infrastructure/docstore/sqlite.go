package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps documents as JSON text in a single table. Used for local
// development and tests (STORE_DRIVER=sqlite).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path, ensures the data
// directory exists and creates the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite pragmas: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS documents (
    collection TEXT NOT NULL,
    id TEXT NOT NULL,
    data TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_created ON documents (collection, created_at);
`)
	if err != nil {
		return fmt.Errorf("sqlite schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Create(ctx context.Context, collection, id string, data []byte) error {
	if _, err := decodeObject(data); err != nil {
		return err
	}
	now := time.Now().UnixNano()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		collection, id, string(data), now, now)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			return ErrAlreadyExists
		}
		return fmt.Errorf("sqlite insert %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, data, created_at, updated_at FROM documents WHERE collection = ? AND id = ?`,
		collection, id)
	doc, err := scanSQLiteDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite get %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func (s *SQLiteStore) Find(ctx context.Context, collection string, q Query) ([]Document, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	where, args := sqliteWhere(collection, q)

	order := "created_at"
	if q.OrderBy != "" {
		order = fmt.Sprintf("json_extract(data, '$.%s')", q.OrderBy)
	}
	dir := "ASC"
	if q.Descending {
		dir = "DESC"
	}
	query := fmt.Sprintf(`SELECT id, data, created_at, updated_at FROM documents WHERE %s ORDER BY %s %s, id %s`, where, order, dir, dir)
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite find %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		doc, err := scanSQLiteDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite scan %s: %w", collection, err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func (s *SQLiteStore) Set(ctx context.Context, collection, id string, data []byte) error {
	if _, err := decodeObject(data); err != nil {
		return err
	}
	now := time.Now().UnixNano()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO documents (collection, id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		collection, id, string(data), now, now)
	if err != nil {
		return fmt.Errorf("sqlite set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Merge reads, overlays and writes back inside one transaction
func (s *SQLiteStore) Merge(ctx context.Context, collection, id string, patch []byte) error {
	if _, err := validatePatch(patch); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite begin: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`, collection, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("sqlite merge read %s/%s: %w", collection, id, err)
	}

	merged, err := mergeObjects([]byte(current), patch)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE documents SET data = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		string(merged), time.Now().UnixNano(), collection, id); err != nil {
		return fmt.Errorf("sqlite merge write %s/%s: %w", collection, id, err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("sqlite delete %s/%s: %w", collection, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Count(ctx context.Context, collection string, q Query) (int64, error) {
	if err := q.validate(); err != nil {
		return 0, err
	}
	where, args := sqliteWhere(collection, q)

	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents WHERE `+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite count %s: %w", collection, err)
	}
	return n, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func sqliteWhere(collection string, q Query) (string, []interface{}) {
	clauses := []string{"collection = ?"}
	args := []interface{}{collection}
	for _, f := range q.Filters {
		clauses = append(clauses, fmt.Sprintf("json_extract(data, '$.%s') = ?", f.Field))
		args = append(args, f.Value)
	}
	return strings.Join(clauses, " AND "), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSQLiteDocument(row rowScanner) (*Document, error) {
	var (
		doc     Document
		data    string
		created int64
		updated int64
	)
	if err := row.Scan(&doc.ID, &data, &created, &updated); err != nil {
		return nil, err
	}
	doc.Data = []byte(data)
	doc.CreatedAt = time.Unix(0, created).UTC()
	doc.UpdatedAt = time.Unix(0, updated).UTC()
	return &doc, nil
}
