package dataset

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"dsconf/domain/core"
)

// Read extracts a dataset from a line-oriented text source. Each line is
// split on whitespace and the configured 1-based column is selected. Lines
// with too few tokens, unparseable tokens, or values below opts.MinValue are
// skipped; skipping is a documented filtering policy, not an error.
func Read(r io.Reader, source string, opts LoadOptions, log Logger) (*Dataset, error) {
	if log == nil {
		log = nopLogger{}
	}

	values := make([]float64, 0, 64)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	ln := 0
	for scanner.Scan() {
		ln++
		line := strings.TrimSpace(scanner.Text())
		log.Trace("data = %6d  %s", ln, line)

		if v, ok := extractValue(line, ln, source, opts, log); ok {
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return finish(source, values, opts)
}

// FromRows extracts a dataset from pre-tokenized rows, as produced by the
// spreadsheet reader. The same column selection and filtering rules apply.
func FromRows(source string, rows [][]string, opts LoadOptions, log Logger) (*Dataset, error) {
	if log == nil {
		log = nopLogger{}
	}

	values := make([]float64, 0, len(rows))
	for i, tokens := range rows {
		ln := i + 1
		if v, ok := selectToken(tokens, ln, source, opts, log); ok {
			values = append(values, v)
		}
	}

	return finish(source, values, opts)
}

func extractValue(line string, ln int, source string, opts LoadOptions, log Logger) (float64, bool) {
	return selectToken(strings.Fields(line), ln, source, opts, log)
}

func selectToken(tokens []string, ln int, source string, opts LoadOptions, log Logger) (float64, bool) {
	if len(tokens) == 0 || opts.Column > len(tokens) {
		log.Debug("skipping line %d in %s: too few tokens %d", ln, source, len(tokens))
		return 0, false
	}

	token := tokens[opts.Column-1]
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		log.Debug("skipping line %d in %s: not a number: %s", ln, source, token)
		return 0, false
	}
	if v < opts.MinValue {
		// avoid divide by 0 errors downstream
		log.Debug("skipping line %d in %s: number is too small %s", ln, source, token)
		return 0, false
	}
	return v, true
}

func finish(source string, values []float64, opts LoadOptions) (*Dataset, error) {
	// The hard floor wins over the configured threshold: below it the
	// sample variance is undefined, not merely under-sampled.
	if len(values) < MinSampleSize {
		return nil, core.NewUndefinedVarianceError(source, len(values))
	}
	if len(values) < opts.Threshold {
		return nil, core.NewInsufficientDataError(source, opts.Column, len(values), opts.Threshold)
	}

	return &Dataset{
		Source: source,
		Column: opts.Column,
		Values: values,
	}, nil
}
