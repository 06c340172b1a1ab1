package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates the access tokens minted by the auth service.
// Token issuance and the login flow live outside this service.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
