// Package dashboard renders the page and answers chart-click callbacks.
package dashboard

import (
	"context"

	"aitrends-dashboard/internal/chart"
	"aitrends-dashboard/internal/dataset"
	"aitrends-dashboard/internal/domain"
)

// TitleSource looks up the distinct, sorted job titles of an industry in the
// raw (unaggregated) job table.
type TitleSource interface {
	JobTitles(ctx context.Context, industry string) ([]string, error)
}

// State is everything built at startup. It is read-only once the server runs.
type State struct {
	Table     *dataset.Table
	Summaries []domain.IndustrySummary
	Figure    chart.Figure
	Titles    TitleSource
}

func (s *State) Selection() Selection {
	return Selection{Titles: s.Titles}
}
