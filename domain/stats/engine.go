package stats

import (
	"math"
	"sort"

	"dsconf/domain/core"
	"dsconf/domain/dataset"

	mstats "github.com/montanaflynn/stats"
)

// Analyze computes the confidence interval report for a dataset and an
// externally supplied critical value. Pure computation: no I/O, deterministic
// for identical inputs.
func Analyze(ds *dataset.Dataset, confidenceLevel, criticalValue float64) (*Report, error) {
	n := ds.Size()
	if n < dataset.MinSampleSize {
		return nil, core.NewUndefinedVarianceError(ds.Source, n)
	}
	if criticalValue < 0 || math.IsNaN(criticalValue) || math.IsInf(criticalValue, 0) {
		return nil, core.NewComputationError("critical value", criticalValue)
	}

	// Sort a copy: the dataset itself stays untouched so a second Analyze
	// call yields a bit-identical report.
	sorted := make([]float64, n)
	copy(sorted, ds.Values)
	sort.Float64s(sorted)

	min, err := mstats.Min(sorted)
	if err != nil {
		return nil, core.NewComputationError("min", math.NaN())
	}
	max, err := mstats.Max(sorted)
	if err != nil {
		return nil, core.NewComputationError("max", math.NaN())
	}

	median := quirkMedian(sorted)

	mean, err := mstats.Mean(sorted)
	if err != nil {
		return nil, core.NewComputationError("mean", math.NaN())
	}

	variance, err := mstats.SampleVariance(sorted)
	if err != nil {
		return nil, core.NewComputationError("variance", math.NaN())
	}
	stdDev := math.Sqrt(variance)

	boundFactor := criticalValue * (stdDev / math.Sqrt(float64(n)))
	lower := mean - boundFactor
	upper := mean + boundFactor

	for _, q := range []struct {
		name string
		v    float64
	}{
		{"mean", mean},
		{"variance", variance},
		{"stddev", stdDev},
		{"bound factor", boundFactor},
		{"lower bound", lower},
		{"upper bound", upper},
	} {
		if math.IsNaN(q.v) || math.IsInf(q.v, 0) {
			return nil, core.NewComputationError(q.name, q.v)
		}
	}

	// Strict comparisons: values equal to the mean land in neither bucket.
	above, below := 0, 0
	for _, v := range sorted {
		switch {
		case v > mean:
			above++
		case v < mean:
			below++
		}
	}

	verdict := VerdictRejected
	if lower <= 0 && upper >= 0 {
		verdict = VerdictAccepted
	}

	return &Report{
		Source:          ds.Source,
		ConfidenceLevel: confidenceLevel,
		CriticalValue:   criticalValue,
		Size:            n,
		Mean:            mean,
		Median:          median,
		Min:             min,
		Max:             max,
		Variance:        variance,
		StdDev:          stdDev,
		BoundFactor:     boundFactor,
		LowerBound:      lower,
		UpperBound:      upper,
		AboveMean:       above,
		BelowMean:       below,
		AbovePercent:    100 * float64(above) / float64(n),
		BelowPercent:    100 * float64(below) / float64(n),
		Verdict:         verdict,
	}, nil
}

// quirkMedian reproduces the reference median exactly. For odd n it averages
// the sorted elements at 0-based indices h and h+1 (h = n/2), which is
// off-by-one from the conventional middle element; for even n it takes the
// element at index h. Kept as-is so existing report consumers see unchanged
// numbers.
func quirkMedian(sorted []float64) float64 {
	n := len(sorted)
	h := n / 2
	if n%2 == 1 {
		return (sorted[h] + sorted[h+1]) / 2.0
	}
	return sorted[h]
}
