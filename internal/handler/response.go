// Package handler exposes the HTTP API. Handlers decode and validate
// requests, delegate to the service layer and translate service errors
// into HTTP status codes.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bgogeta007/health-hustler/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":  "validation failed",
		"fields": fields,
	})
}

// writeServiceError maps the service layer's sentinel errors onto HTTP
// statuses; anything unmapped is a 500
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPhotoNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrChallengeNotFound),
		errors.Is(err, service.ErrResultNotFound),
		errors.Is(err, service.ErrTipNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAlreadyJoined):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotPhotoOwner),
		errors.Is(err, service.ErrNotAdmin):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidChallenge):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrPrivateConflict),
		errors.Is(err, service.ErrReplyDepth),
		errors.Is(err, service.ErrEmptyComment),
		errors.Is(err, service.ErrInvalidProgress):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrChallengeInactive),
		errors.Is(err, service.ErrNotJoined),
		errors.Is(err, service.ErrChallengeCompleted):
		writeError(w, http.StatusPreconditionFailed, err.Error())
	default:
		var validationErr *service.AnswerValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  validationErr.Error(),
				"fields": validationErr.Fields,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
