package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-registry/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultAccessTTL  = time.Hour
	DefaultRefreshTTL = 24 * time.Hour
)

type Config struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Now        func() time.Time
}

// Manager emite y verifica JWT HS256 con un claim typ access|refresh.
// Implementa auth.Issuer y auth.AuthVerifier.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Type auth.TokenType `json:"typ"`
}

func New(cfg Config) (*Manager, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("jwtauth: secret is required")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Manager{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        cfg.Now,
	}, nil
}

func (m *Manager) Issue(ctx context.Context, subject string) (auth.TokenPair, error) {
	access, err := m.sign(subject, auth.TokenAccess, m.accessTTL)
	if err != nil {
		return auth.TokenPair{}, err
	}
	refresh, err := m.sign(subject, auth.TokenRefresh, m.refreshTTL)
	if err != nil {
		return auth.TokenPair{}, err
	}
	return auth.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresIn:        int64(m.accessTTL / time.Second),
		RefreshExpiresIn: int64(m.refreshTTL / time.Second),
	}, nil
}

func (m *Manager) sign(subject string, typ auth.TokenType, ttl time.Duration) (string, error) {
	now := m.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Type: typ,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwtauth: sign %s token: %w", typ, err)
	}
	return signed, nil
}

// Verify valida firma, expiración y tipo. Todo fallo es auth.ErrInvalidToken
// envuelto con la causa.
func (m *Manager) Verify(ctx context.Context, token string, want auth.TokenType) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	if parsed.Type != want {
		return auth.Claims{}, fmt.Errorf("%w: token type %q, want %q", auth.ErrInvalidToken, parsed.Type, want)
	}

	return auth.Claims{
		Subject:   parsed.Subject,
		TokenID:   parsed.ID,
		Type:      parsed.Type,
		ExpiresAt: parsed.ExpiresAt.Time,
	}, nil
}
