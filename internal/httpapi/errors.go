package httpapi

import (
	"encoding/json"
	"net/http"

	"aitrends-dashboard/internal/dashboard"
)

// ErrorWriter reports a failed request in whatever form the route's client
// understands.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, status int, code, message string)

// APIError is the JSON envelope used by the page, health and method errors.
type APIError struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	WriteJSON(w, status, APIError{Error: ErrorBody{
		Code:      code,
		Message:   message,
		RequestID: RequestIDFrom(r.Context()),
	}})
}

// WriteListError answers a job-list callback with a fragment that replaces
// the list, since the page swaps the response body straight into it. The
// machine-readable code goes in X-Error-Code.
func WriteListError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Error-Code", code)
	w.WriteHeader(status)
	_ = dashboard.ListError(message, RequestIDFrom(r.Context())).Render(r.Context(), w)
}

// errorWriterFor picks the error form for a request path.
func errorWriterFor(r *http.Request) ErrorWriter {
	if r.URL.Path == dashboard.CallbackPath {
		return WriteListError
	}
	return WriteError
}
