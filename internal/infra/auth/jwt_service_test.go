package auth

import (
	"testing"
	"time"

	"crosspath/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newAuthConfig(secret))
	require.NoError(t, err)

	userID := uuid.New()
	tokenString := signTestToken(t, secret, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := jwtService.ValidateToken(tokenString, secret)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newAuthConfig(secret))
	require.NoError(t, err)

	tokenString := signTestToken(t, "some_other_secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := jwtService.ValidateToken(tokenString, secret)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newAuthConfig(secret))
	require.NoError(t, err)

	tokenString := signTestToken(t, secret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	token, err := jwtService.ValidateToken(tokenString, secret)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newAuthConfig(secret))
	require.NoError(t, err)

	token, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", secret)
	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newAuthConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
