package solver

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedSolution(day int) Solution {
	return New(day,
		func(input string) (int, error) { return strconv.Atoi(input) },
		func(n int) string { return strconv.Itoa(n + 1) },
		func(n int) string { return strconv.Itoa(n + 2) },
	)
}

func TestNew_PreservesTypes(t *testing.T) {
	sol := numberedSolution(3)
	assert.Equal(t, 3, sol.Day)

	parsed, err := sol.Parse("40")
	require.NoError(t, err)
	assert.Equal(t, "41", sol.Part1(parsed))
	assert.Equal(t, "42", sol.Part2(parsed))
}

func TestNew_ParseErrorPropagates(t *testing.T) {
	sol := numberedSolution(3)
	_, err := sol.Parse("not a number")
	assert.Error(t, err)
}

func TestByDay(t *testing.T) {
	registry := []Solution{numberedSolution(1), numberedSolution(5)}

	sol, err := ByDay(registry, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, sol.Day)

	_, err = ByDay(registry, 2)
	assert.Error(t, err)
}

func TestDays(t *testing.T) {
	registry := []Solution{numberedSolution(2), numberedSolution(1)}
	assert.Equal(t, []int{2, 1}, Days(registry))
	assert.Empty(t, Days(nil))
}
