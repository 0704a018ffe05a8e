package blob

import (
	"context"
	"errors"
)

// LocalURLPrefix es donde el file server del host resuelve payloads no remotos.
const LocalURLPrefix = "/__uploads/"

var ErrNotFound = errors.New("blob not found")

// Object es lo que devuelve un Put: la URL/path con la que se recupera el payload.
type Object struct {
	URL string
}

// Store guarda/borra payloads binarios (fotos).
type Store interface {
	Put(ctx context.Context, pathname string, data []byte, contentType string) (Object, error)
	// DeleteByURL es no-op (no error) si el payload ya no existe.
	DeleteByURL(ctx context.Context, url string) error
}

// Payload es un archivo leído para servirlo por HTTP.
type Payload struct {
	Data        []byte
	ContentType string
}

// Opener lo implementan los backends cuyos payloads sirve el propio proceso
// bajo LocalURLPrefix (todos menos el remoto). rel es el path sin el prefijo.
type Opener interface {
	Open(ctx context.Context, rel string) (Payload, error)
}
