package dashboard

import (
	"github.com/a-h/templ"

	"aitrends-dashboard/internal/chart"
)

//go:generate templ generate

const (
	PageTitle       = "AI Job Trends Dashboard"
	ListHeading     = "Job Titles in Selected Industry:"
	PromptText      = "Click on a bubble to view job titles."
	CallbackPath    = "/callbacks/job-list"
	DefaultPlotlyJS = "https://cdn.plot.ly/plotly-2.35.2.min.js"

	ChartID = "bubble-chart"
	ListID  = "job-list"
)

type PageOptions struct {
	CallbackPath string
	PlotlyJS     string
}

// Page is the whole dashboard: heading, chart, sub-heading and the job list,
// which starts out holding the Prompt.
func Page(fig chart.Figure, opts PageOptions) templ.Component {
	if opts.CallbackPath == "" {
		opts.CallbackPath = CallbackPath
	}
	if opts.PlotlyJS == "" {
		opts.PlotlyJS = DefaultPlotlyJS
	}
	return page(fig, opts)
}
