package httpapi

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response wrapper used by every endpoint.
// On success, Data and/or Message are populated; on failure only Error is.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func fail(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

// apiFunc is a transport-agnostic handler: it receives the request and
// returns the envelope plus HTTP status. Only handle() touches the
// ResponseWriter, so handlers are unit-testable without a server.
type apiFunc func(r *http.Request) (Envelope, int)

func handle(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env, status := fn(r)
		writeJSON(w, status, env)
	}
}

func writeJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
