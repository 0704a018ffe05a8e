package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-registry/internal/domain/store"
)

// SnapshotRepo guarda el documento completo en documents bajo la key data.json.
type SnapshotRepo struct {
	db      *sql.DB
	dialect Dialect
}

func NewSnapshotRepo(db *sql.DB, d Dialect) *SnapshotRepo {
	return &SnapshotRepo{db: db, dialect: d}
}

func (r *SnapshotRepo) Read(ctx context.Context) ([]byte, error) {
	var body string
	err := r.db.QueryRowContext(ctx, r.dialect.bind(`
		SELECT body FROM documents WHERE key = $1
	`), store.SnapshotKey).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("sqldb: read snapshot: %w", err)
	}
	return []byte(body), nil
}

func (r *SnapshotRepo) Write(ctx context.Context, raw []byte) error {
	_, err := r.db.ExecContext(ctx, r.dialect.bind(`
		INSERT INTO documents (key, body) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET body = excluded.body
	`), store.SnapshotKey, string(raw))
	if err != nil {
		return fmt.Errorf("sqldb: write snapshot: %w", err)
	}
	return nil
}
