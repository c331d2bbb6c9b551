package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"aitrends-dashboard/internal/domain"
)

const (
	DefaultTitle   = "Industry-Level Job Change % vs. AI Impact Intensity"
	DefaultSizeMax = 50
	// Smallest bubble in pixels, so a 0% industry can still be clicked.
	DefaultSizeMin = 4

	xAxisLabel = "AI Impact Intensity (Low → High)"
	yAxisLabel = "Net Job Change % (2030–2024)"

	// plotly_white grid colour
	gridColor = "#EBF0F8"

	hoverTemplate = "<b>%{hovertext}</b><br>" +
		"AI impact: %{customdata[0]}<br>" +
		"Net job change: %{y:.1f}%<br>" +
		"Openings 2024: %{customdata[1]}<br>" +
		"Change in openings: %{customdata[2]}" +
		"<extra></extra>"
)

// Trend order of the traces.
var trendOrder = []domain.Trend{domain.TrendCreation, domain.TrendLoss}

// Options controls presentation. Zero fields fall back to the defaults.
type Options struct {
	Title   string
	SizeMax float64
	SizeMin float64
	Colors  map[domain.Trend]string
}

func DefaultOptions() Options {
	return Options{
		Title:   DefaultTitle,
		SizeMax: DefaultSizeMax,
		SizeMin: DefaultSizeMin,
		Colors: map[domain.Trend]string{
			domain.TrendCreation: "#2ecc71",
			domain.TrendLoss:     "#e74c3c",
		},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.SizeMax <= 0 {
		o.SizeMax = d.SizeMax
	}
	if o.SizeMin <= 0 {
		o.SizeMin = d.SizeMin
	}
	colors := make(map[domain.Trend]string, len(d.Colors))
	for t, c := range d.Colors {
		colors[t] = c
	}
	for t, c := range o.Colors {
		if c != "" {
			colors[t] = c
		}
	}
	o.Colors = colors
	return o
}

// Build maps summaries onto a bubble chart: x is the impact level, y the
// job change percentage, bubble area the magnitude and colour the trend.
// Summaries that are not Plottable are reported in Figure.Skipped.
func Build(summaries []domain.IndustrySummary, opts Options) Figure {
	opts = opts.withDefaults()
	p := message.NewPrinter(language.English)

	var fig Figure
	byTrend := make(map[domain.Trend]*Trace, len(trendOrder))
	maxAbs := 0.0

	for _, s := range summaries {
		if !s.Plottable() {
			fig.Skipped = append(fig.Skipped, s.Industry)
			continue
		}
		tr, ok := byTrend[s.Trend]
		if !ok {
			tr = newTrace(s.Trend, opts.Colors[s.Trend])
			byTrend[s.Trend] = tr
		}
		tr.X = append(tr.X, s.ImpactNumeric)
		tr.Y = append(tr.Y, s.JobChangePct)
		tr.HoverText = append(tr.HoverText, s.Industry)
		tr.Marker.Size = append(tr.Marker.Size, s.AbsJobChangePct)
		tr.CustomData = append(tr.CustomData, []string{
			string(s.ImpactLevel),
			p.Sprintf("%d", s.Openings2024),
			signed(p, s.JobChange),
		})
		if s.AbsJobChangePct > maxAbs {
			maxAbs = s.AbsJobChangePct
		}
	}

	ref := SizeRef(maxAbs, opts.SizeMax)
	for _, t := range trendOrder {
		if tr, ok := byTrend[t]; ok {
			tr.Marker.SizeRef = ref
			tr.Marker.SizeMin = opts.SizeMin
			fig.Data = append(fig.Data, *tr)
		}
	}

	fig.Layout = Layout{
		Title: Text{Text: opts.Title},
		XAxis: Axis{
			Title:         Text{Text: xAxisLabel},
			TickVals:      []float64{1, 2, 3},
			TickText:      []string{string(domain.ImpactLow), string(domain.ImpactModerate), string(domain.ImpactHigh)},
			GridColor:     gridColor,
			ZeroLineColor: gridColor,
		},
		YAxis: Axis{
			Title:         Text{Text: yAxisLabel},
			TickFormat:    ".1f",
			TickSuffix:    "%",
			GridColor:     gridColor,
			ZeroLineColor: gridColor,
		},
		Legend:       Legend{Title: Text{Text: "Trend"}},
		PaperBGColor: "white",
		PlotBGColor:  "white",
		HoverMode:    "closest",
	}
	return fig
}

func newTrace(t domain.Trend, color string) *Trace {
	return &Trace{
		Type:          "scatter",
		Mode:          "markers",
		Name:          string(t),
		LegendGroup:   string(t),
		HoverTemplate: hoverTemplate,
		Marker: Marker{
			Color:    color,
			SizeMode: "area",
			Opacity:  0.8,
		},
	}
}

func signed(p *message.Printer, n int) string {
	if n > 0 {
		return "+" + p.Sprintf("%d", n)
	}
	return p.Sprintf("%d", n)
}

// SizeRef scales area-mode markers so a bubble of size maxSize is drawn
// sizeMax pixels across.
func SizeRef(maxSize, sizeMax float64) float64 {
	if maxSize <= 0 || sizeMax <= 0 {
		return 1
	}
	return 2 * maxSize / (sizeMax * sizeMax)
}
