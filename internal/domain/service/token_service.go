package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess marks access tokens.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID string
	Type   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken signs an access token for the user.
	GenerateAccessToken(userID string) (string, error)

	// ValidateToken parses the token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration
}
