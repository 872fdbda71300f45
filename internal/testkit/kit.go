package testkit

import (
	"fmt"
	"math/rand"
	"strings"
)

// CycleValues generates n values cycling through the given set, matching the
// reference fixture loop: element i (1-based) is vals[i mod len(vals)]. With
// vals = (19, 20, 21) and n = 200 this reproduces the worked example dataset.
func CycleValues(n int, vals ...float64) []float64 {
	out := make([]float64, n)
	for i := 1; i <= n; i++ {
		out[i-1] = vals[i%len(vals)]
	}
	return out
}

// Repeat generates n copies of the same value
func Repeat(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// UniformValues generates n values uniformly distributed in [lower, upper)
// from a seeded source, so fixtures are reproducible.
func UniformValues(n int, lower, upper float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = lower + rng.Float64()*(upper-lower)
	}
	return out
}

// Lines renders values one per line, as a plain text dataset source.
func Lines(values []float64, decimals int) string {
	var b strings.Builder
	f := fmt.Sprintf("%%10.%df\n", decimals)
	for _, v := range values {
		fmt.Fprintf(&b, f, v)
	}
	return b.String()
}

// DecoratedLines renders values with 1-based row numbers in column 1,
// putting the data in column 2, the way decorated generator output looks.
func DecoratedLines(values []float64, decimals int) string {
	var b strings.Builder
	f := fmt.Sprintf("%%5d  %%10.%df\n", decimals)
	for i, v := range values {
		fmt.Fprintf(&b, f, i+1, v)
	}
	return b.String()
}
