package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "conferenceagenda/internal/delivery/http/helpers"
	"conferenceagenda/internal/domain"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	rolesKey  contextKey = "roles"
)

// AccessTokenParam is the query parameter accepted in place of the Authorization header on
// GET requests. Browsers cannot set headers on EventSource connections.
const AccessTokenParam = "access_token"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// SetRoles returns a context carrying the caller's roles.
func SetRoles(ctx context.Context, roles []string) context.Context {
	return context.WithValue(ctx, rolesKey, roles)
}

// RolesFromContext returns the roles of the authenticated caller, or nil.
func RolesFromContext(ctx context.Context) []string {
	roles, _ := ctx.Value(rolesKey).([]string)
	return roles
}

// bearerToken extracts the token from the Authorization header, or from the access_token
// query parameter on GET requests without the header. The string result is an error message.
func bearerToken(r *http.Request) (string, string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		if r.Method == http.MethodGet {
			if token := strings.TrimSpace(r.URL.Query().Get(AccessTokenParam)); token != "" {
				return token, ""
			}
		}
		return "", "missing authorization header"
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", "invalid authorization format"
	}
	token := strings.TrimSpace(auth[len(prefix):])
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the user ID in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, msg := bearerToken(r)
			if msg != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, msg)
				return
			}
			principal, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			ctx := SetUserID(r.Context(), principal.UserID)
			ctx = SetRoles(ctx, principal.Roles)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireRole returns a wrapper that lets the request through only when the caller holds
// one of roles. It must run inside RequireAuth; other callers get 403.
func RequireRole(logger *slog.Logger, roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			caller := domain.Principal{Roles: RolesFromContext(r.Context())}
			if !caller.HasAnyRole(roles...) {
				userID, _ := UserIDFromContext(r.Context())
				logger.InfoContext(r.Context(), "role required", "path", r.URL.Path, "user_id", userID, "need", roles)
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "insufficient role")
				return
			}
			next(w, r)
		}
	}
}
