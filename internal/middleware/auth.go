package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/optimrental/rental-api/internal/pkg/jwt"
	"github.com/optimrental/rental-api/internal/pkg/response"
)

type contextKey string

const (
	AdminIDKey    contextKey = "admin_id"
	AdminEmailKey contextKey = "admin_email"
)

// Auth returns middleware that validates the admin JWT.
// Tokens are taken from the Authorization header, or from the "token" query
// parameter for the websocket upgrade (browsers cannot set headers there).
func Auth(jwtService *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := ""

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
					response.Unauthorized(w, "Invalid authorization header format")
					return
				}
				tokenString = parts[1]
			} else {
				tokenString = r.URL.Query().Get("token")
			}

			if tokenString == "" {
				response.Unauthorized(w, "Missing authorization header")
				return
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				if err == jwt.ErrExpiredToken {
					response.Unauthorized(w, "Token expired")
				} else {
					response.Unauthorized(w, "Invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
			ctx = context.WithValue(ctx, AdminEmailKey, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminID extracts admin ID from context
func GetAdminID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(AdminIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// GetAdminEmail extracts admin email from context
func GetAdminEmail(ctx context.Context) string {
	if email, ok := ctx.Value(AdminEmailKey).(string); ok {
		return email
	}
	return ""
}
