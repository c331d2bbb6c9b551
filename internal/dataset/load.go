package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"aitrends-dashboard/internal/domain"
)

// Column headers the loader requires. Other columns are ignored.
const (
	ColIndustry      = "Industry"
	ColJobTitle      = "Job Title"
	ColImpactLevel   = "AI Impact Level"
	ColOpenings2024  = "Job Openings (2024)"
	ColProjected2030 = "Projected Openings (2030)"
)

var requiredColumns = []string{ColIndustry, ColJobTitle, ColImpactLevel, ColOpenings2024, ColProjected2030}

var (
	ErrEmpty         = errors.New("dataset is empty")
	ErrMissingColumn = errors.New("missing required column")
)

// RowError reports a malformed value in a data row.
type RowError struct {
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Load reads the CSV file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return t, nil
}

// Parse reads CSV rows from r. The header row must carry every required column.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		rec, err := parseRow(row, idx, line)
		if err != nil {
			return nil, err
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, strconv.Quote(c))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRow(row []string, idx map[string]int, line int) (domain.JobRecord, error) {
	field := func(col string) string { return strings.TrimSpace(row[idx[col]]) }

	count := func(col string) (int, error) {
		n, err := strconv.Atoi(field(col))
		if err != nil {
			return 0, &RowError{Line: line, Column: col, Err: err}
		}
		if n < 0 {
			return 0, &RowError{Line: line, Column: col, Err: fmt.Errorf("negative count %d", n)}
		}
		return n, nil
	}

	open, err := count(ColOpenings2024)
	if err != nil {
		return domain.JobRecord{}, err
	}
	proj, err := count(ColProjected2030)
	if err != nil {
		return domain.JobRecord{}, err
	}

	return domain.JobRecord{
		Industry:      field(ColIndustry),
		JobTitle:      field(ColJobTitle),
		ImpactLevel:   domain.ImpactLevel(field(ColImpactLevel)),
		Openings2024:  open,
		Projected2030: proj,
	}, nil
}
