package ports

import (
	"context"
)

// SmallSampleCutoff is the sample size below which providers resolve a
// t-distribution value instead of a standard-normal z-value.
const SmallSampleCutoff = 30

// CriticalValueProvider resolves the interval multiplier for a sample of
// size n at the given confidence level (0 < c < 1). Implementations return
// a single positive value: a t-value when n < SmallSampleCutoff, a z-value
// otherwise. Any failure (including an ambiguous or unparseable result)
// fails the whole analysis.
type CriticalValueProvider interface {
	CriticalValue(ctx context.Context, n int, confidenceLevel float64) (float64, error)
}
