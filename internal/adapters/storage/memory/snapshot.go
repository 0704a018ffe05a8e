package memory

import (
	"context"
	"sync"

	"pet-registry/internal/domain/store"
)

// Snapshot guarda el documento en memoria del proceso (tests y modo efímero).
type Snapshot struct {
	mu  sync.RWMutex
	raw []byte
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

func (s *Snapshot) Read(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.raw == nil {
		return nil, store.ErrSnapshotNotFound
	}
	return append([]byte(nil), s.raw...), nil
}

func (s *Snapshot) Write(ctx context.Context, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw = append([]byte(nil), raw...)
	return nil
}
