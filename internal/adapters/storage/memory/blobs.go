package memory

import (
	"context"
	"sort"
	"sync"

	"pet-registry/internal/ports/blob"
)

// Blobs guarda payloads en memoria, servidos bajo blob.LocalURLPrefix.
type Blobs struct {
	mu     sync.RWMutex
	byPath map[string]blob.Payload
}

func NewBlobs() *Blobs {
	return &Blobs{
		byPath: make(map[string]blob.Payload),
	}
}

func (b *Blobs) Put(ctx context.Context, pathname string, data []byte, contentType string) (blob.Object, error) {
	rel := blob.SanitizePath(pathname)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.byPath[rel] = blob.Payload{
		Data:        append([]byte(nil), data...),
		ContentType: contentType,
	}
	return blob.Object{URL: blob.LocalURL(rel)}, nil
}

func (b *Blobs) DeleteByURL(ctx context.Context, url string) error {
	rel, ok := blob.RelFromLocalURL(url)
	if !ok {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.byPath, rel)
	return nil
}

func (b *Blobs) Open(ctx context.Context, rel string) (blob.Payload, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.byPath[blob.SanitizePath(rel)]
	if !ok {
		return blob.Payload{}, blob.ErrNotFound
	}
	return p, nil
}

// Paths lista los paths guardados, ordenados (útil en tests).
func (b *Blobs) Paths() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, 0, len(b.byPath))
	for k := range b.byPath {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
