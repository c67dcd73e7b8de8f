package api

import (
	"errors"
	"net/http"

	"github.com/taskboard-hq/taskboard-api/internal/api/shared"
	"github.com/taskboard-hq/taskboard-api/internal/domain"
	"github.com/taskboard-hq/taskboard-api/internal/service/auth"
	"github.com/taskboard-hq/taskboard-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients. An ownership miss surfaces
// through the same not-found sentinels as a genuinely absent entity, so
// both arrive here already indistinguishable.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	case domain.IsValidationError(err),
		errors.Is(err, store.ErrInvalidEntity),
		isDomainFieldError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the sanitized, user-facing message for an
// error. Internal details never reach the response body.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, auth.ErrMissingToken):
		return "Token is missing!"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, domain.ErrUnauthorized):
		return "Token is invalid!"

	case errors.Is(err, store.ErrBoardNotFound):
		return "Board not found!"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found!"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found!"

	case errors.Is(err, store.ErrEmailExists):
		return "User already exists!"

	case errors.Is(err, domain.ErrEmptyBoardName):
		return "Board name is required!"

	case errors.Is(err, domain.ErrEmptyTaskName),
		errors.Is(err, domain.ErrEmptyTaskBoardID):
		return "Task name and board_id are required!"

	case domain.IsValidationError(err), isDomainFieldError(err):
		return "Missing required fields!"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err: status from
// MapErrorToStatusCode, body message from GetSafeErrorMessage (or the
// override when non-empty), with the underlying error logged server-side.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, messageOverride string) {
	status := MapErrorToStatusCode(err)
	message := messageOverride
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// isDomainFieldError reports whether err is one of the per-field domain
// validation sentinels, which don't wrap domain.ErrValidation themselves.
func isDomainFieldError(err error) bool {
	return errors.Is(err, domain.ErrEmptyUsername) ||
		errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrEmptyPassword) ||
		errors.Is(err, domain.ErrPasswordTooLong) ||
		errors.Is(err, domain.ErrEmptyBoardName) ||
		errors.Is(err, domain.ErrEmptyTaskName) ||
		errors.Is(err, domain.ErrEmptyTaskBoardID)
}
