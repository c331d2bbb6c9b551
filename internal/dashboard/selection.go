package dashboard

import (
	"context"
	"fmt"

	"github.com/a-h/templ"
)

// ClickEvent is the payload plotly reports for a click on the chart.
type ClickEvent struct {
	Points []ClickPoint `json:"points"`
}

type ClickPoint struct {
	CurveNumber int     `json:"curveNumber"`
	PointNumber int     `json:"pointNumber"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	HoverText   string  `json:"hovertext"`
}

// Industry is the industry of the first clicked point.
func (e *ClickEvent) Industry() (string, bool) {
	if e == nil || len(e.Points) == 0 {
		return "", false
	}
	return e.Points[0].HoverText, true
}

// Selection computes the job-list region from the latest click event.
type Selection struct {
	Titles TitleSource
}

// Handle returns the new job-list content. A nil event means nothing has been
// clicked yet.
func (s Selection) Handle(ctx context.Context, ev *ClickEvent) (templ.Component, error) {
	industry, ok := ev.Industry()
	if !ok {
		return Prompt(), nil
	}

	titles, err := s.Titles.JobTitles(ctx, industry)
	if err != nil {
		return nil, fmt.Errorf("job titles for %q: %w", industry, err)
	}
	if len(titles) == 0 {
		return NoTitles(industry), nil
	}
	return TitleList(industry, titles), nil
}
