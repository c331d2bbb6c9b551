package httpapi

import (
	"log/slog"

	"aitrends-dashboard/internal/dashboard"
)

type Deps struct {
	State *dashboard.State

	// Rate limiting for the callback route; nil disables it.
	Limiter *ClientLimiter

	Logger *slog.Logger
	Debug  bool
}
