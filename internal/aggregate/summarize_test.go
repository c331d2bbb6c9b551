package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitrends-dashboard/internal/domain"
)

func sampleRecords() []domain.JobRecord {
	return []domain.JobRecord{
		{Industry: "Tech", JobTitle: "ML Engineer", ImpactLevel: domain.ImpactHigh, Openings2024: 1200, Projected2030: 1800},
		{Industry: "Tech", JobTitle: "Data Analyst", ImpactLevel: domain.ImpactModerate, Openings2024: 900, Projected2030: 1000},
		{Industry: "Tech", JobTitle: "AI Ethicist", ImpactLevel: domain.ImpactHigh, Openings2024: 100, Projected2030: 300},
		{Industry: "Retail", JobTitle: "Cashier", ImpactLevel: domain.ImpactHigh, Openings2024: 5000, Projected2030: 3000},
		{Industry: "Retail", JobTitle: "Store Manager", ImpactLevel: domain.ImpactModerate, Openings2024: 800, Projected2030: 700},
		{Industry: "Healthcare", JobTitle: "Nurse", ImpactLevel: domain.ImpactLow, Openings2024: 2000, Projected2030: 2000},
	}
}

func byIndustry(sums []domain.IndustrySummary) map[string]domain.IndustrySummary {
	m := make(map[string]domain.IndustrySummary, len(sums))
	for _, s := range sums {
		m[s.Industry] = s
	}
	return m
}

func TestSummarize(t *testing.T) {
	sums := Summarize(sampleRecords())
	require.Len(t, sums, 3)

	names := []string{sums[0].Industry, sums[1].Industry, sums[2].Industry}
	assert.Equal(t, []string{"Healthcare", "Retail", "Tech"}, names)

	tech := byIndustry(sums)["Tech"]
	assert.Equal(t, 900, tech.JobChange)
	assert.Equal(t, 2200, tech.Openings2024)
	assert.Equal(t, domain.ImpactHigh, tech.ImpactLevel)
	assert.Equal(t, 3, tech.ImpactNumeric)
	assert.InDelta(t, 40.909, tech.JobChangePct, 0.001)
	assert.Equal(t, domain.TrendCreation, tech.Trend)
	assert.True(t, tech.Plottable())

	retail := byIndustry(sums)["Retail"]
	assert.Equal(t, -2100, retail.JobChange)
	assert.Equal(t, domain.TrendLoss, retail.Trend)
	assert.InDelta(t, 36.207, retail.AbsJobChangePct, 0.001)
}

func TestSummarizeJobChangeSumsMatchRecords(t *testing.T) {
	records := sampleRecords()
	want := map[string]int{}
	for _, r := range records {
		want[r.Industry] += domain.Derive(r).JobChange
	}

	sums := Summarize(records)
	assert.Len(t, sums, len(want))
	for _, s := range sums {
		assert.Equal(t, want[s.Industry], s.JobChange, s.Industry)
	}
}

func TestSummarizeTrendAndMagnitude(t *testing.T) {
	for _, s := range Summarize(sampleRecords()) {
		assert.Equal(t, s.JobChangePct > 0, s.Trend == domain.TrendCreation, s.Industry)
		assert.GreaterOrEqual(t, s.AbsJobChangePct, 0.0)
		if s.JobChangePct < 0 {
			assert.Equal(t, -s.JobChangePct, s.AbsJobChangePct)
		} else {
			assert.Equal(t, s.JobChangePct, s.AbsJobChangePct)
		}
	}

	health := byIndustry(Summarize(sampleRecords()))["Healthcare"]
	assert.Zero(t, health.JobChangePct)
	assert.Equal(t, domain.TrendLoss, health.Trend)
}

func TestSummarizeZeroOpenings(t *testing.T) {
	sums := Summarize([]domain.JobRecord{
		{Industry: "Space", JobTitle: "Astronaut", ImpactLevel: domain.ImpactLow, Openings2024: 0, Projected2030: 5},
	})
	require.Len(t, sums, 1)

	s := sums[0]
	assert.False(t, s.PctDefined)
	assert.False(t, s.Plottable())
	assert.Zero(t, s.JobChangePct)
	assert.Equal(t, 5, s.JobChange)
	assert.Equal(t, domain.TrendLoss, s.Trend)
}

func TestSummarizeUnknownImpact(t *testing.T) {
	sums := Summarize([]domain.JobRecord{
		{Industry: "Arts", JobTitle: "Painter", ImpactLevel: "Extreme", Openings2024: 10, Projected2030: 20},
	})
	require.Len(t, sums, 1)
	assert.False(t, sums[0].ImpactKnown)
	assert.Zero(t, sums[0].ImpactNumeric)
	assert.True(t, sums[0].PctDefined)
	assert.False(t, sums[0].Plottable())
}

func TestSummarizeDeterministic(t *testing.T) {
	first := Summarize(sampleRecords())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Summarize(sampleRecords()))
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		levels []domain.ImpactLevel
		want   domain.ImpactLevel
	}{
		{"empty", nil, ""},
		{"single", []domain.ImpactLevel{domain.ImpactLow}, domain.ImpactLow},
		{"majority", []domain.ImpactLevel{domain.ImpactLow, domain.ImpactHigh, domain.ImpactHigh}, domain.ImpactHigh},
		{"tie goes to first seen", []domain.ImpactLevel{domain.ImpactModerate, domain.ImpactLow, domain.ImpactLow, domain.ImpactModerate}, domain.ImpactModerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.levels))
		})
	}
}

func TestImpactNumeric(t *testing.T) {
	n, ok := ImpactNumeric(domain.ImpactModerate)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = ImpactNumeric("low")
	assert.False(t, ok)
}
