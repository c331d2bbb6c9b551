package httpapi

import (
	"net/http"

	"github.com/a-h/templ"

	"aitrends-dashboard/internal/dashboard"
)

type PageHandler struct {
	State *dashboard.State
}

func (h PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, "not_found", "not found")
		return
	}
	templ.Handler(dashboard.Page(h.State.Figure, dashboard.PageOptions{})).ServeHTTP(w, r)
}
