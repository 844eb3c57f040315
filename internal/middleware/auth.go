// Package middleware provides HTTP middleware for authentication,
// authorization, CORS and request logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bgogeta007/health-hustler/internal/service"
)

type userIDKey struct{}

// UserID returns the authenticated user id from the request context, or
// zero for unauthenticated requests
func UserID(ctx context.Context) uint64 {
	id, _ := ctx.Value(userIDKey{}).(uint64)
	return id
}

// AuthMiddleware resolves the bearer token to a user id and stores it in
// the request context. Requests without a valid session get 401.
func AuthMiddleware(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractTokenFromHeader(r)
			if token == "" {
				writeAuthError(w)
				return
			}

			userID, err := auth.Authenticate(r.Context(), token)
			if err != nil || userID == 0 {
				writeAuthError(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware resolves the bearer token if present but lets
// anonymous requests through. Used on routes that render differently for
// signed-in viewers.
func OptionalAuthMiddleware(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractTokenFromHeader(r); token != "" {
				if userID, err := auth.Authenticate(r.Context(), token); err == nil && userID != 0 {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminMiddleware gates back-office routes. Must run after AuthMiddleware.
func AdminMiddleware(admin service.AdminService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := UserID(r.Context())
			ok, err := admin.IsAdmin(r.Context(), userID)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
				return
			}
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"error": "Administrator access required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractTokenFromHeader(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthenticated"})
}
