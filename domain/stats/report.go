package stats

import (
	"dsconf/domain/core"
)

// Verdict states whether the confidence interval allows rejection of the
// null hypothesis (population mean is zero).
type Verdict string

const (
	// VerdictAccepted means the interval contains zero: cannot reject.
	VerdictAccepted Verdict = "accepted"
	// VerdictRejected means the interval excludes zero.
	VerdictRejected Verdict = "rejected"
)

// Report is the immutable record produced by one analysis. One dataset in,
// one report out; nothing mutates it after Analyze returns. Analyze is
// deterministic, so two runs over the same dataset and critical value yield
// bit-identical reports; run metadata (analysis ID, wall time) is stamped by
// the caller, not here.
type Report struct {
	Source          string  `json:"source"`
	ConfidenceLevel float64 `json:"confidence_level"` // (0,1)
	CriticalValue   float64 `json:"critical_value"`   // z or t multiplier used

	Size     int     `json:"size"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Variance float64 `json:"variance"` // Bessel-corrected (n-1 divisor)
	StdDev   float64 `json:"stddev"`

	BoundFactor float64 `json:"bound_factor"` // critical * stddev / sqrt(n)
	LowerBound  float64 `json:"lower_bound"`
	UpperBound  float64 `json:"upper_bound"`

	AboveMean    int     `json:"above_mean"` // strictly greater than mean
	BelowMean    int     `json:"below_mean"` // strictly less than mean
	AbovePercent float64 `json:"above_percent"`
	BelowPercent float64 `json:"below_percent"`

	Verdict Verdict `json:"verdict"`
}

// RunRecord pairs a report with the metadata of the run that produced it.
type RunRecord struct {
	AnalysisID core.AnalysisID `json:"analysis_id"`
	ComputedAt core.Timestamp  `json:"computed_at"`
	Report     *Report         `json:"report"`
}

// NewRunRecord stamps a report with a fresh analysis ID and timestamp.
func NewRunRecord(r *Report) RunRecord {
	return RunRecord{
		AnalysisID: core.AnalysisID(core.NewID()),
		ComputedAt: core.Now(),
		Report:     r,
	}
}

// BoundDiff returns the full interval width
func (r *Report) BoundDiff() float64 {
	return r.UpperBound - r.LowerBound
}
