package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"aitrends-dashboard/internal/dashboard"
)

const maxCallbackBody = 64 << 10

// CallbackRequest mirrors the Dash callback body: {"clickData": {...}|null}.
type CallbackRequest struct {
	ClickData *dashboard.ClickEvent `json:"clickData"`
}

type CallbackHandler struct {
	Selection dashboard.Selection
	Logger    *slog.Logger
	Debug     bool
}

// JobList answers a chart click with the new job-list HTML fragment.
// An empty body is treated like clickData: null.
func (h CallbackHandler) JobList(w http.ResponseWriter, r *http.Request) {
	var req CallbackRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxCallbackBody))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.Logger.Debug("job-list callback: bad body", "request_id", RequestIDFrom(r.Context()), "err", err)
		WriteListError(w, r, http.StatusBadRequest, "bad_request", "Could not read the click event.")
		return
	}

	frag, err := h.Selection.Handle(r.Context(), req.ClickData)
	if err != nil {
		h.Logger.Error("job-list callback failed", "request_id", RequestIDFrom(r.Context()), "err", err)
		WriteListError(w, r, http.StatusInternalServerError, "lookup_failed", "Could not load job titles.")
		return
	}

	if h.Debug {
		industry, _ := req.ClickData.Industry()
		h.Logger.Debug("job-list callback", "request_id", RequestIDFrom(r.Context()), "industry", industry)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := frag.Render(r.Context(), w); err != nil {
		h.Logger.Error("render job list", "request_id", RequestIDFrom(r.Context()), "err", err)
	}
}
