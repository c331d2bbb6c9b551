package domain

// ImpactLevel is the ordinal AI impact category of a job.
type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "Low"
	ImpactModerate ImpactLevel = "Moderate"
	ImpactHigh     ImpactLevel = "High"
)

// JobRecord is one (job title, industry) row of the input dataset.
type JobRecord struct {
	Industry      string
	JobTitle      string
	ImpactLevel   ImpactLevel
	Openings2024  int
	Projected2030 int
}

// DerivedJobRecord is a JobRecord with its net change in openings.
type DerivedJobRecord struct {
	JobRecord
	JobChange int // Projected2030 - Openings2024
}

func Derive(r JobRecord) DerivedJobRecord {
	return DerivedJobRecord{JobRecord: r, JobChange: r.Projected2030 - r.Openings2024}
}
