package auth

import (
	"testing"
	"time"

	"canteen/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newJWTConfig(testAccessSecret, time.Hour))
	require.NoError(t, err)

	userID := "64b7f0c2e1a4c3b2a1d0e9f8"
	accessToken, err := jwtService.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newJWTConfig(testAccessSecret, 0))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newJWTConfig("another_secret_key_also_long_enough", 0))
	require.NoError(t, err)
	verifier, err := NewJWTService(newJWTConfig(testAccessSecret, 0))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken("user-1")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newJWTConfig(testAccessSecret, 0))
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnknownTokenType(t *testing.T) {
	jwtService, err := NewJWTService(newJWTConfig(testAccessSecret, 0))
	require.NoError(t, err)

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Type:             "refresh",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	signed, err := refresh.SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newJWTConfig("", 0))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetAccessTokenDuration(t *testing.T) {
	withDefault, err := NewJWTService(newJWTConfig(testAccessSecret, 0))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, withDefault.GetAccessTokenDuration())

	configured, err := NewJWTService(newJWTConfig(testAccessSecret, 2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, configured.GetAccessTokenDuration())
}
