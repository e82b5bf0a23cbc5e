package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/harshit1711/Bakery-Management/internal/auth"
	"github.com/harshit1711/Bakery-Management/internal/logs"
	"github.com/harshit1711/Bakery-Management/internal/web"
)

type contextKey string

const customerClaimsKey contextKey = "customerClaims"

func AuthMiddleware(jwtManager *auth.JWTManager, logger logs.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				web.RespondWithError(w, logger, r, http.StatusUnauthorized, "Unauthorized", "Missing authorization header.")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				web.RespondWithError(w, logger, r, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format.")
				return
			}

			tokenString := parts[1]

			claims, err := jwtManager.ValidateToken(tokenString)
			if err != nil {
				logger.Warn("invalid token", "error", err)
				web.RespondWithError(w, logger, r, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token.")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

func ContextWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, customerClaimsKey, claims)
}

func GetCustomerClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(customerClaimsKey).(*auth.Claims)
	return claims, ok
}
