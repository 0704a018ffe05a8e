package sessions

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"pet-registry/internal/ports/auth"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("token missing")
)

// Credentials es el único usuario habilitado (no hay multi-tenant).
type Credentials struct {
	Username string
	Password string
}

// Service emite pares de tokens en login y los rota en refresh.
type Service struct {
	issuer   auth.Issuer
	verifier auth.AuthVerifier
	creds    Credentials
}

func NewService(issuer auth.Issuer, verifier auth.AuthVerifier, creds Credentials) *Service {
	return &Service{issuer: issuer, verifier: verifier, creds: creds}
}

func (s *Service) Login(ctx context.Context, username, password string) (auth.TokenPair, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	if !userOK || !passOK {
		return auth.TokenPair{}, ErrInvalidCredentials
	}
	return s.issuer.Issue(ctx, s.creds.Username)
}

// Refresh acepta solo refresh tokens y emite un par nuevo para el mismo subject.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return auth.TokenPair{}, ErrTokenMissing
	}
	claims, err := s.verifier.Verify(ctx, refreshToken, auth.TokenRefresh)
	if err != nil {
		return auth.TokenPair{}, err
	}

	subject := claims.Subject
	if subject == "" {
		subject = s.creds.Username
	}
	return s.issuer.Issue(ctx, subject)
}
