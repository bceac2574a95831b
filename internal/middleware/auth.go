package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Stsam98/employee-service/internal/auth"
	"github.com/Stsam98/employee-service/internal/models"
)

const userIDKey contextKey = "userID"

// Auth validates the bearer token from the Authorization header and places
// the authenticated user ID on the request context
func Auth(tokenGenerator *auth.TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Expected format: "Authorization: Bearer <token>"
			var token string
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
					token = parts[1]
				}
			}

			if token == "" {
				respondUnauthorized(w, "authentication required")
				return
			}

			userID, err := tokenGenerator.Validate(token)
			if err != nil {
				// Expired and invalid tokens get distinct messages but the
				// same status
				if errors.Is(err, models.ErrTokenExpired) {
					respondUnauthorized(w, "token expired")
				} else {
					respondUnauthorized(w, "invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID retrieves the authenticated user ID from context
func GetUserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
