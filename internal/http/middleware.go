package http

import (
	"context"
	"net"
	"net/http"

	"github.com/Gangesh855/factory-ops/internal/auth"
	rl "github.com/Gangesh855/factory-ops/internal/http/rate_limiter"
)

type contextKey string

const (
	userIDKey = contextKey("user_id")
	roleKey   = contextKey("role")
)

// RequirePermission authenticates the bearer token and checks that the
// caller's role grants the given permission before the handler runs.
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
			if err != nil {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			role, _ := claims["role"].(string)
			if !auth.HasPermission(role, permission) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			sub, _ := claims["sub"].(float64)
			ctx := context.WithValue(r.Context(), userIDKey, int(sub))
			ctx = context.WithValue(ctx, roleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}

func GetRole(r *http.Request) string {
	if val, ok := r.Context().Value(roleKey).(string); ok {
		return val
	}
	return ""
}

// RateLimitMiddleware throttles unauthenticated endpoints per client IP.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
