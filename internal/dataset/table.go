package dataset

import (
	"context"
	"sort"

	"aitrends-dashboard/internal/domain"
)

// Table holds the raw, unaggregated job records in file order.
// It is never mutated after Parse returns.
type Table struct {
	Records []domain.JobRecord
}

func (t *Table) Len() int { return len(t.Records) }

// JobTitles returns the distinct job titles of industry, sorted.
func (t *Table) JobTitles(_ context.Context, industry string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, r := range t.Records {
		if r.Industry != industry || seen[r.JobTitle] {
			continue
		}
		seen[r.JobTitle] = true
		out = append(out, r.JobTitle)
	}
	sort.Strings(out)
	return out, nil
}
