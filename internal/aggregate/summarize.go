// Package aggregate rolls job records up into one summary per industry.
package aggregate

import (
	"math"
	"sort"

	"aitrends-dashboard/internal/domain"
)

var impactNumeric = map[domain.ImpactLevel]int{
	domain.ImpactLow:      1,
	domain.ImpactModerate: 2,
	domain.ImpactHigh:     3,
}

// ImpactNumeric maps an impact level onto its ordinal position.
// ok is false for levels outside Low/Moderate/High.
func ImpactNumeric(level domain.ImpactLevel) (n int, ok bool) {
	n, ok = impactNumeric[level]
	return n, ok
}

type group struct {
	industry string
	rows     []domain.DerivedJobRecord
}

// Summarize groups records by industry and derives the per-industry metrics.
// The result holds exactly one summary per distinct industry, sorted by name.
func Summarize(records []domain.JobRecord) []domain.IndustrySummary {
	groups := groupByIndustry(records)

	out := make([]domain.IndustrySummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, summarizeGroup(g))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Industry < out[j].Industry })
	return out
}

func groupByIndustry(records []domain.JobRecord) []group {
	pos := make(map[string]int)
	var groups []group

	for _, r := range records {
		i, ok := pos[r.Industry]
		if !ok {
			i = len(groups)
			pos[r.Industry] = i
			groups = append(groups, group{industry: r.Industry})
		}
		groups[i].rows = append(groups[i].rows, domain.Derive(r))
	}
	return groups
}

func summarizeGroup(g group) domain.IndustrySummary {
	s := domain.IndustrySummary{Industry: g.industry}

	levels := make([]domain.ImpactLevel, 0, len(g.rows))
	for _, r := range g.rows {
		s.JobChange += r.JobChange
		s.Openings2024 += r.Openings2024
		levels = append(levels, r.ImpactLevel)
	}
	s.ImpactLevel = Mode(levels)

	if s.Openings2024 != 0 {
		s.JobChangePct = 100 * float64(s.JobChange) / float64(s.Openings2024)
		s.PctDefined = true
	}
	s.ImpactNumeric, s.ImpactKnown = ImpactNumeric(s.ImpactLevel)

	s.Trend = TrendOf(s.JobChangePct)
	s.AbsJobChangePct = math.Abs(s.JobChangePct)
	return s
}

// TrendOf classifies a percentage change. Zero counts as a loss.
func TrendOf(pct float64) domain.Trend {
	if pct > 0 {
		return domain.TrendCreation
	}
	return domain.TrendLoss
}

// Mode returns the most frequent level. Ties go to the level seen first.
func Mode(levels []domain.ImpactLevel) domain.ImpactLevel {
	if len(levels) == 0 {
		return ""
	}

	counts := make(map[domain.ImpactLevel]int)
	var order []domain.ImpactLevel
	for _, l := range levels {
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
	}

	best := order[0]
	for _, l := range order[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	return best
}
