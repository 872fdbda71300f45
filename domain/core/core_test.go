package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id1 := NewID()
	id2 := NewID()

	assert.False(t, id1.IsEmpty())
	assert.NotEqual(t, id1, id2)
}

func TestParseAnalysisID(t *testing.T) {
	id, err := ParseAnalysisID("run-123")
	require.NoError(t, err)
	assert.Equal(t, AnalysisID("run-123"), id)

	_, err = ParseAnalysisID("   ")
	require.Error(t, err)
}

func TestErrorWrapping(t *testing.T) {
	err := NewInsufficientDataError("ds1.txt", 2, 3, 5)
	assert.True(t, IsInsufficientDataError(err))
	assert.Contains(t, err.Error(), "ds1.txt")
	assert.Contains(t, err.Error(), "column 2")
	assert.Contains(t, err.Error(), "found 3")

	err = NewUndefinedVarianceError("stdin", 1)
	assert.True(t, IsUndefinedVarianceError(err))
	assert.False(t, IsInsufficientDataError(err))

	err = NewProviderError("lookup exploded", errors.New("exit status 3"))
	assert.True(t, IsProviderError(err))
	assert.Contains(t, err.Error(), "exit status 3")

	err = NewComputationError("stddev", math.Sqrt(-1))
	assert.True(t, IsComputationError(err))
}
