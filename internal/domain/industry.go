package domain

// Trend is the direction of an industry's net job change.
type Trend string

const (
	TrendCreation Trend = "Job Creation"
	TrendLoss     Trend = "Job Loss"
)

// IndustrySummary aggregates every JobRecord of one industry.
type IndustrySummary struct {
	Industry     string
	JobChange    int
	Openings2024 int
	ImpactLevel  ImpactLevel // modal level, first occurring on ties

	JobChangePct    float64
	ImpactNumeric   int // 1..3, 0 when ImpactKnown is false
	Trend           Trend
	AbsJobChangePct float64

	// PctDefined is false when Openings2024 is zero; JobChangePct is then 0.
	PctDefined  bool
	ImpactKnown bool
}

// Plottable reports whether the summary has both chart coordinates.
func (s IndustrySummary) Plottable() bool {
	return s.PctDefined && s.ImpactKnown
}
