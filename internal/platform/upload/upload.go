package upload

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

const (
	DefaultMaxBytes = 10 << 20

	defaultContentType = "application/octet-stream"
)

var ErrTooLarge = errors.New("upload too large")

// File es un archivo recibido por multipart, ya en memoria.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReadFile devuelve el primer archivo del campo field, o nil si el request no
// es multipart o no trae ese campo.
func ReadFile(r *http.Request, field string, maxBytes int64) (*File, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") || params["boundary"] == "" {
		return nil, nil
	}

	mr := multipart.NewReader(r.Body, params["boundary"])
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart: %w", err)
		}

		// Partes sin filename son campos de texto, no archivos.
		if part.FormName() != field || part.FileName() == "" {
			_ = part.Close()
			continue
		}

		data, err := io.ReadAll(io.LimitReader(part, maxBytes+1))
		_ = part.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", field, err)
		}
		if int64(len(data)) > maxBytes {
			return nil, ErrTooLarge
		}

		f := &File{
			Name:        part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Data:        data,
		}
		if f.ContentType == "" {
			f.ContentType = defaultContentType
		}
		return f, nil
	}
}
