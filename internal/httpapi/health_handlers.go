package httpapi

import (
	"net/http"

	"aitrends-dashboard/internal/dashboard"
)

type HealthHandler struct {
	State *dashboard.State
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"records":    h.State.Table.Len(),
		"industries": len(h.State.Summaries),
		"skipped":    len(h.State.Figure.Skipped),
	})
}
