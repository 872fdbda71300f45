package render

import (
	"fmt"
	"io"
	"strconv"

	"dsconf/domain/stats"
)

// Render writes the human-readable report block: the aligned key/value
// summary followed by the interval prose. precision controls the decimal
// digits of the mean and bounds in the prose.
func Render(w io.Writer, r *stats.Report, precision int) error {
	cl := r.ConfidenceLevel * 100

	lines := []struct {
		key   string
		value string
	}{
		{"dataset", r.Source},
		{"confidence level", fmt.Sprintf("%.1f%%", cl)},
		{"z-value", formatFloat(r.CriticalValue)},
		{"size", strconv.Itoa(r.Size)},
		{"mean", formatFloat(r.Mean) + " (arithmetic)"},
		{"median", formatFloat(r.Median)},
		{"min", formatFloat(r.Min)},
		{"max", formatFloat(r.Max)},
		{"above mean", fmt.Sprintf("%d %.1f%%", r.AboveMean, r.AbovePercent)},
		{"below mean", fmt.Sprintf("%d %.1f%%", r.BelowMean, r.BelowPercent)},
		{"stddev", formatFloat(r.StdDev)},
		{"bound factor", formatFloat(r.BoundFactor)},
		{"lower bound", formatFloat(r.LowerBound)},
		{"upper bound", formatFloat(r.UpperBound)},
		{"bound diff", formatFloat(r.BoundDiff())},
		{"null hypothesis", string(r.Verdict)},
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-16s = %s\n", l.key, l.value); err != nil {
			return err
		}
	}

	fs := "%." + strconv.Itoa(precision) + "f"
	mean := fmt.Sprintf(fs, r.Mean)
	lower := fmt.Sprintf(fs, r.LowerBound)
	upper := fmt.Sprintf(fs, r.UpperBound)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "The interval about the mean %s for a confidence level of\n", mean)
	fmt.Fprintf(w, "%.1f%% is in the range [%s .. %s].\n", cl, lower, upper)
	fmt.Fprintln(w)

	if r.Verdict == stats.VerdictAccepted {
		fmt.Fprintln(w, "The interval includes 0 which means that the null hypothesis cannot")
		fmt.Fprintln(w, "be rejected. The interval is not meaningful.")
	} else {
		fmt.Fprintln(w, "The interval does not include 0 which means that the null")
		fmt.Fprintln(w, "hypothesis can be rejected. The interval is meaningful.")
	}
	_, err := fmt.Fprintln(w)
	return err
}

// formatFloat prints with full precision but without trailing zeros, the way
// the summary block has always looked.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
