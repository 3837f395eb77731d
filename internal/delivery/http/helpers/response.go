package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"clubsite/internal/domain"
)

// MessageResponse is the body shape for status and error responses.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a {"message": ...} body with the given status code.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteServiceError maps a service error to a status code and writes a
// {"message": ...} body. notFound is the resource-specific message used for
// domain.ErrNotFound ("Event not found", "User not found", ...).
func WriteServiceError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteMessage(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrForbidden):
		WriteMessage(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicateEmail):
		WriteMessage(w, http.StatusBadRequest, err.Error())
	default:
		WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
