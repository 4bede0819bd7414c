// Package httputil centralizes JSON response writing so every handler
// produces the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "atlas/pkg/domain-errors"
)

// WriteJSON writes v as the JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into a JSON error envelope.
// Internal errors omit the description so implementation detail never
// leaks to callers; everything else returns its message verbatim.
func WriteError(w http.ResponseWriter, err error) {
	status := dErrors.StatusFor(err)
	code := dErrors.CodeInternal

	var de *dErrors.Error
	if errors.As(err, &de) {
		code = de.Code
	}

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal && de != nil && de.Message != "" {
		body["error_description"] = de.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
