package server

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v as the response body. Encoding errors are ignored:
// by the time they surface the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// readJSON decodes the request body into v. An empty body yields io.EOF,
// which callers that accept bodyless requests (guess, session create)
// treat as an empty request rather than an error.
func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
