// Package handlers implements the HTTP surface.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/venturelens/venture-engine/pkg/apperrors"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// WriteAppError maps a sentinel error from apperrors to its HTTP status.
// notFoundMessage customizes the 404 body; other statuses carry the error
// text.
func WriteAppError(w http.ResponseWriter, err error, notFoundMessage string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return ErrorResponse(w, http.StatusNotFound, "not_found", notFoundMessage)
	case errors.Is(err, apperrors.ErrValidation):
		return ErrorResponse(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return ErrorResponse(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, apperrors.ErrUpstream):
		return ErrorResponse(w, http.StatusBadGateway, "upstream_failed", err.Error())
	default:
		return ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Internal Server Error")
	}
}
