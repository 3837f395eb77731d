package middleware

import (
	"context"
	"net/http"
	"strings"

	h "clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

// SetIdentity returns a context with the authenticated user's ID and role set.
func SetIdentity(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RoleFromContext returns the authenticated user's role from the context, if present.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// user's identity in the request context. If the token is missing or invalid,
// it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteMessage(w, http.StatusUnauthorized, "Missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteMessage(w, http.StatusUnauthorized, "Invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteMessage(w, http.StatusUnauthorized, "Missing token")
				return
			}
			userID, role, err := verifier.Verify(token)
			if err != nil {
				h.WriteMessage(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			r = r.WithContext(SetIdentity(r.Context(), userID, role))
			next(w, r)
		}
	}
}

// RequireAdmin returns a wrapper that rejects non-admin callers with 403. It
// must run inside RequireAuth, which populates the role.
func RequireAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok || role != domain.RoleAdmin {
				h.WriteMessage(w, http.StatusForbidden, "Admin access required")
				return
			}
			next(w, r)
		}
	}
}
