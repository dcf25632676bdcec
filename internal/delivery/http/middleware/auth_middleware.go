package middleware

import (
	"context"
	"net/http"

	"arena-portal-backend/internal/domain"
	"arena-portal-backend/pkg/logger"
	"arena-portal-backend/pkg/utils"
)

// AuthMiddleware validates the portal session token and puts the user in context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := utils.TokenFromRequest(r)
		if tokenString == "" {
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
			return
		}

		mapClaims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			l := logger.WithContext(r.Context())
			l.Debug().Err(err).Msg("Rejected session token")
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
			return
		}

		// The user is built from claims alone; the portal never needs a DB hit here.
		claims := utils.ClaimsFromMap(mapClaims)
		user := &domain.User{
			ID:       claims.UserID,
			ClientID: claims.ClientID,
			Email:    claims.Email,
			Role:     claims.Role,
		}

		ctx := context.WithValue(r.Context(), domain.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the user set by AuthMiddleware.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(domain.UserContextKey).(*domain.User)
	return user, ok && user != nil
}
