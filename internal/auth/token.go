package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogplatform/api/internal/models"
)

// TokenTTL is the fixed validity window of a session token.
const TokenTTL = 7 * 24 * time.Hour

var (
	ErrMalformed    = errors.New("auth: malformed token")
	ErrExpired      = errors.New("auth: token expired")
	ErrBadSignature = errors.New("auth: bad signature")
)

// Claims is the payload embedded in a session token. Identity and role are
// self-sufficient: protected requests never need a user lookup.
type Claims struct {
	UserID string      `json:"userId"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given user with a TokenTTL validity window.
func Issue(userID string, role models.Role, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Validate checks signature and expiry and returns the decoded claims.
// Failures are distinguished as ErrMalformed, ErrExpired or ErrBadSignature.
func Validate(tokenStr string, secret []byte) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	claims := &Claims{}
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrBadSignature
	default:
		return nil, ErrMalformed
	}

	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		return nil, ErrExpired
	}

	return claims, nil
}

// Decode parses the claims without verifying the signature. Logout uses it
// to read the expiry out of whatever token the client presents.
func Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, ErrMalformed
	}
	if claims.ExpiresAt == nil {
		return nil, ErrMalformed
	}
	return claims, nil
}
