package dataset

// Epsilon is the data-quality floor applied at load time. Parsed values
// strictly below it are skipped to avoid numerically unstable division
// downstream.
const Epsilon = 0.0001

// DefaultThreshold is the minimum number of valid data points required
// before an analysis may run.
const DefaultThreshold = 5

// MinSampleSize is the hard floor below which sample variance (n-1 divisor)
// is undefined. It applies regardless of the configured threshold.
const MinSampleSize = 2

// Dataset is an ordered sequence of finite values extracted from one input
// source. It is constructed once per source and consumed exactly once by the
// statistics engine; nothing mutates it after construction.
type Dataset struct {
	Source string    `json:"source"` // "stdin" or a file path
	Column int       `json:"column"` // 1-based column the values came from
	Values []float64 `json:"values"`
}

// Size returns the number of data points
func (d *Dataset) Size() int {
	return len(d.Values)
}

// LoadOptions controls column selection and filtering during load
type LoadOptions struct {
	Column    int     // 1-based column index
	Threshold int     // minimum valid data points, >= MinSampleSize
	MinValue  float64 // values strictly below this are skipped
}

// DefaultLoadOptions returns the reference defaults (column 1, threshold 5)
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Column:    1,
		Threshold: DefaultThreshold,
		MinValue:  Epsilon,
	}
}

// Logger receives per-line diagnostics from the loader. *internal.Logger
// satisfies it; pass nil to discard.
type Logger interface {
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Trace(string, ...interface{}) {}
