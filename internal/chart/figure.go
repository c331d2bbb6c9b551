// Package chart turns industry summaries into a plotly.js bubble-chart figure.
package chart

// Figure is a declarative plotly.js figure: {data, layout}.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`

	// Skipped lists industries left out because they have no plottable coordinates.
	Skipped []string `json:"-"`
}

type Trace struct {
	Type          string     `json:"type"`
	Mode          string     `json:"mode"`
	Name          string     `json:"name"`
	LegendGroup   string     `json:"legendgroup"`
	X             []int      `json:"x"`
	Y             []float64  `json:"y"`
	HoverText     []string   `json:"hovertext"`
	CustomData    [][]string `json:"customdata,omitempty"`
	HoverTemplate string     `json:"hovertemplate,omitempty"`
	Marker        Marker     `json:"marker"`
}

type Marker struct {
	Color    string    `json:"color"`
	Size     []float64 `json:"size"`
	SizeMode string    `json:"sizemode"`
	SizeRef  float64   `json:"sizeref"`
	SizeMin  float64   `json:"sizemin,omitempty"`
	Opacity  float64   `json:"opacity,omitempty"`
}

type Layout struct {
	Title        Text   `json:"title"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	Legend       Legend `json:"legend"`
	PaperBGColor string `json:"paper_bgcolor"`
	PlotBGColor  string `json:"plot_bgcolor"`
	HoverMode    string `json:"hovermode"`
}

type Text struct {
	Text string `json:"text"`
}

type Axis struct {
	Title         Text      `json:"title"`
	TickVals      []float64 `json:"tickvals,omitempty"`
	TickText      []string  `json:"ticktext,omitempty"`
	TickFormat    string    `json:"tickformat,omitempty"`
	TickSuffix    string    `json:"ticksuffix,omitempty"`
	GridColor     string    `json:"gridcolor,omitempty"`
	ZeroLineColor string    `json:"zerolinecolor,omitempty"`
}

type Legend struct {
	Title Text `json:"title"`
}
