package httpapi

import (
	"net/http"

	"aitrends-dashboard/internal/dashboard"
)

// NewMux wires the page, the job-list callback and the health check.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	log := d.logger()

	ph := PageHandler{State: d.State}
	mux.HandleFunc("/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Index,
	}))

	ch := CallbackHandler{Selection: d.State.Selection(), Logger: log, Debug: d.Debug}
	var jobList http.Handler = methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch.JobList,
	})
	if d.Limiter != nil {
		jobList = RateLimit(d.Limiter, WriteListError)(jobList)
	}
	mux.Handle(dashboard.CallbackPath, jobList)

	hh := HealthHandler{State: d.State}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
