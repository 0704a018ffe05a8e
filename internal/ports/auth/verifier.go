package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AuthVerifier verifica un token del tipo esperado y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string, want TokenType) (Claims, error)
}

// Issuer emite un par access/refresh para un subject.
type Issuer interface {
	Issue(ctx context.Context, subject string) (TokenPair, error)
}
