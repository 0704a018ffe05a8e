package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pet-registry/internal/adapters/storage/local"
	"pet-registry/internal/adapters/storage/memory"
	"pet-registry/internal/adapters/storage/sqldb"
	"pet-registry/internal/adapters/storage/vercelblob"
	"pet-registry/internal/domain/store"
	"pet-registry/internal/platform/config"
	"pet-registry/internal/platform/metrics"
	"pet-registry/internal/ports/blob"
)

// Kind es el backend activo. Se resuelve una vez al arrancar y se inyecta;
// snapshot y fotos siempre comparten el mismo Kind.
type Kind string

const (
	KindRemote   Kind = "remote"
	KindLocal    Kind = "local"
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
	KindMemory   Kind = "memory"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindRemote, KindLocal, KindPostgres, KindSQLite, KindMemory:
		return k, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q", s)
	}
}

// Resolve aplica la regla de selección: override explícito, si no token de
// blob => remote, si no DSN => postgres, si no path sqlite => sqlite, si no local.
func Resolve(cfg config.Storage) (Kind, error) {
	if strings.TrimSpace(cfg.Backend) != "" {
		return ParseKind(cfg.Backend)
	}
	switch {
	case cfg.BlobToken != "":
		return KindRemote, nil
	case cfg.DatabaseDSN != "":
		return KindPostgres, nil
	case cfg.SQLitePath != "":
		return KindSQLite, nil
	default:
		return KindLocal, nil
	}
}

// Backends es lo que consumen repositorio y handlers.
// Opener es nil cuando los payloads no los sirve el proceso (remote).
type Backends struct {
	Kind     Kind
	Snapshot store.Backend
	Blobs    blob.Store
	Opener   blob.Opener

	db *sql.DB
}

func (b *Backends) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Open construye los backends del Kind resuelto a partir de cfg.
func Open(cfg config.Storage, m *metrics.Metrics) (*Backends, error) {
	kind, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}

	var b *Backends
	switch kind {
	case KindRemote:
		c, err := vercelblob.New(vercelblob.Options{APIURL: cfg.BlobAPIURL, Token: cfg.BlobToken})
		if err != nil {
			return nil, err
		}
		b = &Backends{Snapshot: c, Blobs: c}

	case KindLocal:
		u := local.NewUploads(cfg.LocalDataDir)
		b = &Backends{Snapshot: local.NewSnapshot(cfg.LocalDataDir), Blobs: u, Opener: u}

	case KindPostgres, KindSQLite:
		b, err = openSQL(kind, cfg)
		if err != nil {
			return nil, err
		}

	case KindMemory:
		b = Memory()
	}

	b.Kind = kind
	b.Blobs = instrument(b.Blobs, m)
	return b, nil
}

// Memory devuelve backends en memoria, vacíos (el primer Load da la seed).
func Memory() *Backends {
	bl := memory.NewBlobs()
	return &Backends{Kind: KindMemory, Snapshot: memory.NewSnapshot(), Blobs: bl, Opener: bl}
}

func openSQL(kind Kind, cfg config.Storage) (*Backends, error) {
	var (
		db  *sql.DB
		d   sqldb.Dialect
		err error
	)
	if kind == KindPostgres {
		if cfg.DatabaseDSN == "" {
			return nil, fmt.Errorf("storage backend %s requires DB_DSN", kind)
		}
		d = sqldb.Postgres
		db, err = sqldb.OpenPostgres(cfg.DatabaseDSN)
	} else {
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("storage backend %s requires SQLITE_PATH", kind)
		}
		d = sqldb.SQLite
		db, err = sqldb.OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", kind, err)
	}

	br := sqldb.NewBlobRepo(db, d)
	return &Backends{Snapshot: sqldb.NewSnapshotRepo(db, d), Blobs: br, Opener: br, db: db}, nil
}

// instrumented cuenta puts/deletes por resultado.
type instrumented struct {
	next    blob.Store
	metrics *metrics.Metrics
}

func instrument(next blob.Store, m *metrics.Metrics) blob.Store {
	if m == nil {
		return next
	}
	return &instrumented{next: next, metrics: m}
}

func (s *instrumented) Put(ctx context.Context, pathname string, data []byte, contentType string) (blob.Object, error) {
	obj, err := s.next.Put(ctx, pathname, data, contentType)
	s.metrics.RecordBlobOp("put", err)
	return obj, err
}

func (s *instrumented) DeleteByURL(ctx context.Context, url string) error {
	err := s.next.DeleteByURL(ctx, url)
	s.metrics.RecordBlobOp("delete", err)
	return err
}
