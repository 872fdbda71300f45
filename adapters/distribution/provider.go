package distribution

import (
	"context"
	"fmt"
	"math"

	"dsconf/domain/core"
	"dsconf/ports"

	"gonum.org/v1/gonum/stat/distuv"
)

// Provider resolves critical values from distribution quantiles directly:
// Student's t for small samples (n < ports.SmallSampleCutoff), the standard
// normal otherwise. It replaces the subprocess table lookup with a typed
// in-process call.
type Provider struct{}

// NewProvider creates a distribution-backed critical value provider
func NewProvider() *Provider {
	return &Provider{}
}

// CriticalValue returns the two-sided critical value for confidence level c.
func (p *Provider) CriticalValue(_ context.Context, n int, confidenceLevel float64) (float64, error) {
	if n < 2 {
		return 0, core.NewProviderError(fmt.Sprintf("sample size %d too small", n), nil)
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return 0, core.NewProviderError(
			fmt.Sprintf("confidence level %g out of range (0..1)", confidenceLevel), nil)
	}

	// Two-sided interval: put half the excluded probability in each tail.
	q := 1 - (1-confidenceLevel)/2

	var v float64
	if n < ports.SmallSampleCutoff {
		t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
		v = t.Quantile(q)
	} else {
		norm := distuv.Normal{Mu: 0, Sigma: 1}
		v = norm.Quantile(q)
	}

	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, core.NewProviderError(fmt.Sprintf("quantile produced %v", v), nil)
	}
	return v, nil
}

// Fixed is a provider that always returns a caller-supplied critical value,
// used when the z-value is given on the command line.
type Fixed float64

// CriticalValue returns the fixed value after sanity checks.
func (f Fixed) CriticalValue(_ context.Context, _ int, _ float64) (float64, error) {
	v := float64(f)
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, core.NewProviderError(fmt.Sprintf("fixed critical value %v is not positive", v), nil)
	}
	return v, nil
}
