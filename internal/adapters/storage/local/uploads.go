package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"pet-registry/internal/ports/blob"
)

// Uploads guarda payloads bajo <dir>/uploads y los referencia como /__uploads/<rel>.
type Uploads struct {
	root string
}

func NewUploads(dataDir string) *Uploads {
	return &Uploads{root: filepath.Join(dataDir, "uploads")}
}

func (u *Uploads) Root() string { return u.root }

func (u *Uploads) diskPath(rel string) string {
	return filepath.Join(u.root, filepath.FromSlash(rel))
}

func (u *Uploads) Put(ctx context.Context, pathname string, data []byte, contentType string) (blob.Object, error) {
	rel := blob.SanitizePath(pathname)
	p := u.diskPath(rel)

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return blob.Object{}, fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return blob.Object{}, fmt.Errorf("write upload: %w", err)
	}
	return blob.Object{URL: blob.LocalURL(rel)}, nil
}

// DeleteByURL ignora URLs que no son locales y archivos que ya no existen.
func (u *Uploads) DeleteByURL(ctx context.Context, url string) error {
	rel, ok := blob.RelFromLocalURL(url)
	if !ok {
		return nil
	}
	if err := os.Remove(u.diskPath(rel)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

func (u *Uploads) Open(ctx context.Context, rel string) (blob.Payload, error) {
	rel = blob.SanitizePath(rel)
	data, err := os.ReadFile(u.diskPath(rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return blob.Payload{}, blob.ErrNotFound
		}
		return blob.Payload{}, fmt.Errorf("read upload: %w", err)
	}

	// El disco no guarda el content-type: se infiere por extensión o contenido.
	ct := mime.TypeByExtension(filepath.Ext(rel))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	return blob.Payload{Data: data, ContentType: ct}, nil
}
