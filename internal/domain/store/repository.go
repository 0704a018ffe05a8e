package store

import (
	"context"
	"errors"
	"sync"

	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/metrics"

	"go.uber.org/zap"
)

// SnapshotKey es el nombre fijo del documento en todos los backends.
const SnapshotKey = "data.json"

var ErrSnapshotNotFound = errors.New("snapshot not found")

// Backend es el medio persistido del snapshot (blob remoto, disco, SQL, memoria).
// Read devuelve ErrSnapshotNotFound si todavía no hay documento.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, raw []byte) error
}

type Options struct {
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	// SerializeWrites pone un único punto de escritura por proceso alrededor de Mutate.
	// Apagado (default) el contrato es last-write-wins: dos mutaciones concurrentes
	// leen el mismo snapshot y la última en guardar pisa a la otra.
	SerializeWrites bool
}

// Repository carga y guarda el agregado completo. No hay cache entre requests.
type Repository struct {
	backend   Backend
	log       *zap.Logger
	metrics   *metrics.Metrics
	serialize bool
	mu        sync.Mutex
}

func NewRepository(backend Backend, opts Options) *Repository {
	return &Repository{
		backend:   backend,
		log:       logger.OrNop(opts.Logger),
		metrics:   opts.Metrics,
		serialize: opts.SerializeWrites,
	}
}

// Load nunca falla: ante snapshot ausente, error del backend o JSON roto
// devuelve la seed. Los errores se loguean, no se propagan.
func (r *Repository) Load(ctx context.Context) *Store {
	raw, err := r.backend.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			r.metrics.RecordStoreOp("load", nil)
			return Seed()
		}
		r.metrics.RecordStoreOp("load", err)
		r.log.Warn("snapshot load failed, using seed", zap.Error(err))
		return Seed()
	}

	s, err := Decode(raw)
	if err != nil {
		r.metrics.RecordStoreOp("load", err)
		r.log.Warn("snapshot decode failed, using seed", zap.Error(err))
		return Seed()
	}

	r.metrics.RecordStoreOp("load", nil)
	return s
}

// Save reescribe el snapshot completo. Sin merge ni chequeo de versión.
func (r *Repository) Save(ctx context.Context, s *Store) error {
	raw, err := Encode(s)
	if err != nil {
		r.metrics.RecordStoreOp("save", err)
		return err
	}
	err = r.backend.Write(ctx, raw)
	r.metrics.RecordStoreOp("save", err)
	return err
}

// Mutate = Load -> fn -> Save. Si fn falla no se guarda nada.
func (r *Repository) Mutate(ctx context.Context, fn func(*Store) error) error {
	if r.serialize {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	s := r.Load(ctx)
	if err := fn(s); err != nil {
		return err
	}
	return r.Save(ctx, s)
}
