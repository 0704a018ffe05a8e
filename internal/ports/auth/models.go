package auth

import "time"

type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// Claims representa la información extraída del token.
type Claims struct {
	Subject   string
	TokenID   string
	Type      TokenType
	ExpiresAt time.Time
}

// TokenPair es la respuesta de login y refresh. Los TTL van en segundos.
type TokenPair struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
}
