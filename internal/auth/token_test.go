package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogplatform/api/internal/models"
)

func TestIssueAndValidate_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := Issue("user-123", models.RoleAdmin, secret)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := Validate(tok, secret)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Role != models.RoleAdmin {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, models.RoleAdmin)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected expiry claim")
	}

	window := time.Until(claims.ExpiresAt.Time)
	if window > TokenTTL || window < TokenTTL-time.Minute {
		t.Fatalf("expected ~%v validity window, got %v", TokenTTL, window)
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	// Correctly signed token with an expiry in the past.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "u1",
		Role:   models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tok, err := expired.SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = Validate(tok, secret)
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Issue("u2", models.RoleUser, []byte("right-secret"))
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = Validate(tok, []byte("wrong-secret"))
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Validate("not.a.jwt", []byte("k"))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestDecode_ReadsExpiryWithoutVerifying(t *testing.T) {
	t.Parallel()

	tok, err := Issue("u3", models.RoleUser, []byte("some-secret"))
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Decode never sees the secret; logout only needs the claims.
	claims, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if claims.UserID != "u3" {
		t.Fatalf("userID mismatch: got %q", claims.UserID)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected expiry claim")
	}

	if _, err := Decode("garbage"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for garbage, got %v", err)
	}
}
