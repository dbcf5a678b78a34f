package middleware

import (
	"context"
	"net/http"
	"strings"

	"blogplatform/api/internal/auth"
	"blogplatform/api/internal/models"
	"blogplatform/api/internal/utils"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// TokenChecker is the revocation-list lookup the auth gate needs.
type TokenChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// BearerToken extracts the token from an Authorization header value.
// Returns "" when the header is absent or the prefix is not Bearer.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Auth validates the bearer token against the signing key and the
// revocation list, then attaches the decoded claims to the request
// context. No user lookup happens here; the claims are self-sufficient.
func Auth(secret []byte, tokens TokenChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				utils.JSONError(w, http.StatusUnauthorized, "Authorization token missing or invalid format")
				return
			}

			revoked, err := tokens.IsRevoked(r.Context(), token)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			if revoked {
				utils.JSONError(w, http.StatusUnauthorized, "Token has been invalidated")
				return
			}

			claims, err := auth.Validate(token, secret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects requests whose claims carry a non-admin role. Must run
// after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			utils.JSONError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		if claims.Role != models.RoleAdmin {
			utils.JSONError(w, http.StatusForbidden, "Access denied. Admin privileges required.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the claims the auth gate stored for this request.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// WithClaims returns a context carrying claims, mirroring what the auth
// gate does. Exposed for handler tests.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}
