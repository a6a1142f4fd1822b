package http

import (
	"context"
	"net/http"
	"strings"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user-claims"

// AuthMiddleware validates the bearer token and injects its claims into the
// request context. Handlers behind it can rely on userClaims succeeding.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, domain.Forbidden("authentication required"))
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, domain.Forbidden("invalid or expired token"))
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, domain.Forbidden("invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userClaims(r *http.Request) (*security.UserClaims, bool) {
	claims, ok := r.Context().Value(claimsContextKey).(*security.UserClaims)
	return claims, ok
}

func userID(r *http.Request) (int32, bool) {
	claims, ok := userClaims(r)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
