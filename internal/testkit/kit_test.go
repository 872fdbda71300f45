package testkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleValues_ReferencePattern(t *testing.T) {
	values := CycleValues(200, 19, 20, 21)
	assert.Len(t, values, 200)

	counts := map[float64]int{}
	for _, v := range values {
		counts[v]++
	}
	assert.Equal(t, 66, counts[19])
	assert.Equal(t, 67, counts[20])
	assert.Equal(t, 67, counts[21])

	// First elements follow the i mod 3 mapping: 1->20, 2->21, 3->19.
	assert.Equal(t, []float64{20, 21, 19}, values[:3])
}

func TestUniformValues(t *testing.T) {
	a := UniformValues(100, 115, 125, 42)
	b := UniformValues(100, 115, 125, 42)
	assert.Equal(t, a, b)

	for _, v := range a {
		assert.GreaterOrEqual(t, v, 115.0)
		assert.Less(t, v, 125.0)
	}

	c := UniformValues(100, 115, 125, 43)
	assert.NotEqual(t, a, c)
}

func TestLines(t *testing.T) {
	out := Lines([]float64{1.5, 2.25}, 2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "1.50", strings.TrimSpace(lines[0]))
	assert.Equal(t, "2.25", strings.TrimSpace(lines[1]))
}

func TestDecoratedLines(t *testing.T) {
	out := DecoratedLines([]float64{10.1, 10.2}, 1)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)

	fields := strings.Fields(lines[0])
	assert.Equal(t, []string{"1", "10.1"}, fields)
	fields = strings.Fields(lines[1])
	assert.Equal(t, []string{"2", "10.2"}, fields)
}
