package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Dataset errors
	ErrInsufficientData  = errors.New("insufficient data for analysis")
	ErrUndefinedVariance = errors.New("sample variance undefined")

	// Provider errors
	ErrProvider = errors.New("critical value lookup failed")

	// Engine errors
	ErrComputation = errors.New("non-finite computation result")
)

// Error constructors with context

// NewInsufficientDataError reports a dataset that fell below the configured
// minimum after filtering, naming the offending source.
func NewInsufficientDataError(source string, column, found, need int) error {
	return fmt.Errorf("%w: too few data points at column %d in %s, found %d, need at least %d",
		ErrInsufficientData, column, source, found, need)
}

// NewUndefinedVarianceError reports a sample too small for the n-1 divisor.
func NewUndefinedVarianceError(source string, n int) error {
	return fmt.Errorf("%w: need at least 2 data points in %s, found %d",
		ErrUndefinedVariance, source, n)
}

// NewProviderError wraps a critical-value provider failure.
func NewProviderError(detail string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrProvider, detail, err)
	}
	return fmt.Errorf("%w: %s", ErrProvider, detail)
}

// NewComputationError reports a non-finite intermediate value.
func NewComputationError(quantity string, value float64) error {
	return fmt.Errorf("%w: %s is %v", ErrComputation, quantity, value)
}

// Error checking helpers
func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsUndefinedVarianceError(err error) bool {
	return errors.Is(err, ErrUndefinedVariance)
}

func IsProviderError(err error) bool {
	return errors.Is(err, ErrProvider)
}

func IsComputationError(err error) bool {
	return errors.Is(err, ErrComputation)
}
