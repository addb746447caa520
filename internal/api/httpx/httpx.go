// Package httpx holds the JSON envelopes shared by every handler and
// middleware.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody carries a stable machine code, a human-readable message,
// optional per-field details, and the request id so a client can quote it
// when reporting a problem.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type errorResponse struct {
	Error ErrorBody `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError emits the error envelope. The request-id middleware sets
// X-Request-Id on the response before handlers run, so it is read back from
// the headers here rather than threaded through every call site.
func WriteError(w http.ResponseWriter, status int, code, msg string, details any) {
	WriteJSON(w, status, errorResponse{Error: ErrorBody{
		Code:      code,
		Message:   msg,
		Details:   details,
		RequestID: w.Header().Get("X-Request-Id"),
	}})
}
