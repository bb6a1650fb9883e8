package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"healthcare-auth/internal/domain/entity"
	"healthcare-auth/internal/usecase"
	"healthcare-auth/pkg/response"
)

type contextKey string

const UserKey contextKey = "user"

type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate resolves the bearer token to an account and loads it into the
// request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		user, err := m.authUsecase.ResolveToken(r.Context(), parts[1])
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidToken) {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}
			response.InternalServerError(w, "Failed to validate token")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext extracts the authenticated user from context
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	return user, ok
}
