package middleware

import (
	"net/http"
	"strings"

	"github.com/dixitshiv/Roomate-Meal/internal/auth"
	"github.com/dixitshiv/Roomate-Meal/internal/model"
)

// RequireAuth validates the bearer session token and attaches the
// authenticated user to the request context.
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "authorization token required", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			user := model.User{ID: claims.UserID, Email: claims.Email}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}
