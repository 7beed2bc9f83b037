// Package api provides standardized helper functions for HTTP API responses.
package api

import (
	"encoding/json"
	"net/http"

	apperrors "wordhoard-backend/pkg/errors"
)

// Success sends a standardized successful HTTP response with optional JSON data.
func Success(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error sends a standardized error response with consistent JSON format.
func Error(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// ErrorFrom maps an application error onto the HTTP status space and sends it.
func ErrorFrom(w http.ResponseWriter, err error) {
	Error(w, StatusFor(err), err.Error())
}

// StatusFor maps error taxonomy types to HTTP status codes.
func StatusFor(err error) int {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		return http.StatusBadRequest
	case apperrors.ErrorTypeNotFound, apperrors.ErrorTypeNotListed:
		return http.StatusNotFound
	case apperrors.ErrorTypeConflict, apperrors.ErrorTypeAlreadyListed,
		apperrors.ErrorTypeDuplicateClaim, apperrors.ErrorTypeInactive:
		return http.StatusConflict
	case apperrors.ErrorTypeNotOwner:
		return http.StatusForbidden
	case apperrors.ErrorTypeShortage, apperrors.ErrorTypeInsufficientPayment:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
