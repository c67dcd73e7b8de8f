// Package middleware provides the HTTP middleware chain pieces specific
// to this API: bearer-token authentication and request tracing.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taskboard-hq/taskboard-api/internal/api/shared"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/platform/logger"
	"github.com/taskboard-hq/taskboard-api/internal/service/auth"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

// Error messages sent to clients. Missing and invalid tokens get distinct
// messages; every other failure mode collapses into "invalid" so the
// response never reveals why verification failed.
const (
	msgTokenMissing = "Token is missing!"
	msgTokenInvalid = "Token is invalid!"
)

// bearerPrefix is matched case-sensitively.
const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller's identity from a bearer token. It
// verifies the token, loads the user it names, and stores the resolved
// user in the request context. The raw token goes no further than here.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate wraps a handler so it only runs for requests carrying a
// valid token that resolves to an existing user.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgTokenMissing)
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgTokenMissing)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgTokenInvalid)
			return
		}

		// The user may have disappeared between issuance and use; a token
		// naming an unknown user is as good as no token.
		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if !store.IsNotFoundError(err) {
				log.Error("failed to resolve token user", "error", err)
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgTokenInvalid)
			return
		}

		ctx := context.WithValue(r.Context(), shared.CurrentUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser extracts the resolved user from the request context.
// Returns the user and whether one was present.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.CurrentUserContextKey).(*domain.User)
	return user, ok && user != nil
}
