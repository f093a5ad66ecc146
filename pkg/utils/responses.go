package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope every endpoint returns on failure. The
// dashboard reads the `error` field; `details` carries per-field validation
// messages when present.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// ResponseJSON writes any payload with the given status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Error responses -------------

func ResponseError(w http.ResponseWriter, code int, message string, details map[string]string) {
	ResponseJSON(w, code, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	ResponseError(w, http.StatusBadRequest, message, details)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message, nil)
}
