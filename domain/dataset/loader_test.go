package dataset

import (
	"strings"
	"testing"

	"dsconf/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_ColumnExtraction(t *testing.T) {
	input := strings.Join([]string{
		"run1 10.5 extra",
		"run2 11.0",
		"run3 9.5 more cols here",
		"run4 10.0",
		"run5 10.2",
	}, "\n")

	opts := DefaultLoadOptions()
	opts.Column = 2

	ds, err := Read(strings.NewReader(input), "bench.txt", opts, nil)
	require.NoError(t, err)
	assert.Equal(t, "bench.txt", ds.Source)
	assert.Equal(t, 2, ds.Column)
	assert.Equal(t, []float64{10.5, 11.0, 9.5, 10.0, 10.2}, ds.Values)
}

func TestRead_SkipsInvalidLines(t *testing.T) {
	input := strings.Join([]string{
		"# header comment",
		"",
		"10.5",
		"not-a-number",
		"11.0",
		"0.00005", // below epsilon
		"-3.2",    // below epsilon too
		"9.5",
		"10.0",
		"10.2",
	}, "\n")

	ds, err := Read(strings.NewReader(input), "stdin", DefaultLoadOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{10.5, 11.0, 9.5, 10.0, 10.2}, ds.Values)
}

func TestRead_ShortLinesSkippedNotFailed(t *testing.T) {
	// Column 3 requested, but some lines only have two tokens.
	input := strings.Join([]string{
		"a b 1.0",
		"a b",
		"a b 2.0",
		"a",
		"a b 3.0",
		"a b 4.0",
		"a b 5.0",
	}, "\n")

	opts := DefaultLoadOptions()
	opts.Column = 3

	ds, err := Read(strings.NewReader(input), "stdin", opts, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.0, 3.0, 4.0, 5.0}, ds.Values)
}

func TestRead_ThresholdBoundary(t *testing.T) {
	t.Run("one below threshold fails", func(t *testing.T) {
		input := "1.0\n2.0\n3.0\n4.0\n"
		_, err := Read(strings.NewReader(input), "stdin", DefaultLoadOptions(), nil)
		require.Error(t, err)
		assert.True(t, core.IsInsufficientDataError(err))
		assert.Contains(t, err.Error(), "need at least 5")
	})

	t.Run("exactly threshold succeeds", func(t *testing.T) {
		input := "1.0\n2.0\n3.0\n4.0\n5.0\n"
		ds, err := Read(strings.NewReader(input), "stdin", DefaultLoadOptions(), nil)
		require.NoError(t, err)
		assert.Equal(t, 5, ds.Size())
	})

	t.Run("filtered lines do not count toward threshold", func(t *testing.T) {
		input := "1.0\n2.0\n3.0\n4.0\njunk\n0.00001\n"
		_, err := Read(strings.NewReader(input), "stdin", DefaultLoadOptions(), nil)
		require.Error(t, err)
		assert.True(t, core.IsInsufficientDataError(err))
	})
}

func TestRead_HardFloorBeatsThreshold(t *testing.T) {
	// A single data point is an undefined-variance condition, not merely an
	// under-sampled one, regardless of the configured threshold.
	_, err := Read(strings.NewReader("42.0\n"), "stdin", DefaultLoadOptions(), nil)
	require.Error(t, err)
	assert.True(t, core.IsUndefinedVarianceError(err))

	_, err = Read(strings.NewReader(""), "stdin", DefaultLoadOptions(), nil)
	require.Error(t, err)
	assert.True(t, core.IsUndefinedVarianceError(err))
}

func TestFromRows(t *testing.T) {
	rows := [][]string{
		{"name", "value"},
		{"a", "1.5"},
		{"b", "2.5"},
		{"c"}, // ragged row, skipped
		{"d", "3.5"},
		{"e", "4.5"},
		{"f", "5.5"},
	}

	opts := DefaultLoadOptions()
	opts.Column = 2

	ds, err := FromRows("data.csv", rows, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 4.5, 5.5}, ds.Values)
}
