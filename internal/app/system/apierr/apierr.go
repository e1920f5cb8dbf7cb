// Package apierr writes JSON error envelopes with the application's error
// taxonomy: validation (400), auth (401), permission (403), not found (404),
// store connectivity (503), and generic failures (500). Permission errors get
// a distinct, actionable message rather than a generic failure. No error is
// retried automatically; callers re-trigger the action.
package apierr

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func write(w http.ResponseWriter, status int, kind, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Error: msg, Kind: kind})
}

// Validation rejects a request before any write occurs.
func Validation(w http.ResponseWriter, msg string) {
	write(w, http.StatusBadRequest, "validation", msg)
}

// Unauthorized signals a missing or invalidated session.
func Unauthorized(w http.ResponseWriter) {
	write(w, http.StatusUnauthorized, "unauthorized", "sign in required")
}

// Forbidden signals a permission failure, distinct from generic errors.
func Forbidden(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "you don't have permission to perform this action"
	}
	write(w, http.StatusForbidden, "permission", msg)
}

// NotFound signals a missing entity.
func NotFound(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "not found"
	}
	write(w, http.StatusNotFound, "not_found", msg)
}

// Unavailable signals a store connectivity problem. The operation is not
// retried; the user sees a transient notice and may try again.
func Unavailable(w http.ResponseWriter) {
	write(w, http.StatusServiceUnavailable, "unavailable", "the data store is unavailable; try again shortly")
}

// Internal signals an unexpected failure.
func Internal(w http.ResponseWriter) {
	write(w, http.StatusInternalServerError, "internal", "an unexpected error occurred")
}
