package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/hemodesk/hemodesk/internal/user"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// ClaimsFromContext returns the verified token claims for the request, if
// the middleware admitted one.
func ClaimsFromContext(ctx context.Context) (*user.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*user.Claims)
	return claims, ok
}

// Middleware verifies the bearer token on every request. When no secret is
// configured the check is disabled entirely, matching deployments of the
// dashboard that ran without authentication.
func Middleware(svc *user.Service, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := svc.VerifyToken(token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}
