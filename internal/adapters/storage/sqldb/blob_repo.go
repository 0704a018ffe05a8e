package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-registry/internal/ports/blob"
)

// BlobRepo guarda payloads de fotos en la tabla blobs; se sirven bajo /__uploads/.
type BlobRepo struct {
	db      *sql.DB
	dialect Dialect
}

func NewBlobRepo(db *sql.DB, d Dialect) *BlobRepo {
	return &BlobRepo{db: db, dialect: d}
}

func (r *BlobRepo) Put(ctx context.Context, pathname string, data []byte, contentType string) (blob.Object, error) {
	rel := blob.SanitizePath(pathname)
	_, err := r.db.ExecContext(ctx, r.dialect.bind(`
		INSERT INTO blobs (path, content_type, body) VALUES ($1, $2, $3)
		ON CONFLICT (path) DO UPDATE SET content_type = excluded.content_type, body = excluded.body
	`), rel, contentType, data)
	if err != nil {
		return blob.Object{}, fmt.Errorf("sqldb: put blob: %w", err)
	}
	return blob.Object{URL: blob.LocalURL(rel)}, nil
}

func (r *BlobRepo) DeleteByURL(ctx context.Context, url string) error {
	rel, ok := blob.RelFromLocalURL(url)
	if !ok {
		return nil
	}
	_, err := r.db.ExecContext(ctx, r.dialect.bind(`DELETE FROM blobs WHERE path = $1`), rel)
	if err != nil {
		return fmt.Errorf("sqldb: delete blob: %w", err)
	}
	return nil
}

func (r *BlobRepo) Open(ctx context.Context, rel string) (blob.Payload, error) {
	var p blob.Payload
	err := r.db.QueryRowContext(ctx, r.dialect.bind(`
		SELECT content_type, body FROM blobs WHERE path = $1
	`), blob.SanitizePath(rel)).Scan(&p.ContentType, &p.Data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return blob.Payload{}, blob.ErrNotFound
		}
		return blob.Payload{}, fmt.Errorf("sqldb: open blob: %w", err)
	}
	return p, nil
}
