package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"pet-registry/internal/domain/store"
)

// Snapshot guarda el documento en <dir>/data.json.
type Snapshot struct {
	dir string
}

func NewSnapshot(dataDir string) *Snapshot {
	return &Snapshot{dir: dataDir}
}

func (s *Snapshot) Path() string {
	return filepath.Join(s.dir, store.SnapshotKey)
}

func (s *Snapshot) Read(ctx context.Context) ([]byte, error) {
	raw, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return raw, nil
}

// Write reemplaza el archivo entero vía temp + rename, así un lector
// nunca ve un documento a medio escribir.
func (s *Snapshot) Write(ctx context.Context, raw []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, store.SnapshotKey+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
