package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/taskboard-hq/taskboard-api/internal/api/middleware"
	"github.com/taskboard-hq/taskboard-api/internal/api/shared"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
)

// currentUser extracts the authenticated user placed in the context by
// the auth middleware. If it is absent the middleware chain is
// misconfigured; the caller gets a 401 and false is returned.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token is missing!")
		return nil, false
	}
	return user, true
}

// pathUUID parses the named chi route parameter as a UUID. A malformed ID
// cannot name any entity, so parse failures surface as the entity's
// not-found error rather than a format complaint.
func pathUUID(r *http.Request, paramName string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, paramName))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}
