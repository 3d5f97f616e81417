package day21

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `029A
980A
179A
456A
379A`

func TestPart1(t *testing.T) {
	codes, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "126384", part1(codes))
}

func TestPart2(t *testing.T) {
	codes, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "154115708116294", part2(codes))
}

func TestCodeCost(t *testing.T) {
	memo := make(map[memoKey]int64)
	// Shortest sequence for 029A through two robot arrow pads is 68
	// presses, e.g. <vA<AA>>^AvAA<^A>A<v<A>>^AvA^A<vA>^A<v<A>^A>AAvA^A
	// <v<A>A>^AAAvA<^A>A.
	assert.Equal(t, int64(68), codeCost("029A", 2, memo))
	assert.Equal(t, int64(60), codeCost("980A", 2, memo))
	assert.Equal(t, int64(64), codeCost("379A", 2, memo))
}

func TestSingleRobot(t *testing.T) {
	memo := make(map[memoKey]int64)
	// With a single robot the human types the first arrow expansion
	// directly: v<<A>>^A<A>AvA<^AA>A<vAAA>^A is 28 presses.
	assert.Equal(t, int64(28), codeCost("029A", 1, memo))
}

func TestPathsAvoidGap(t *testing.T) {
	// From A to 7 the arm must not sweep through the bottom-left gap,
	// so only the vertical-first route survives.
	assert.Equal(t, []string{"^^^<<A"}, numericPad.paths('A', '7'))
	// From < to A the horizontal-first route is the only safe one.
	assert.Equal(t, []string{">>^A"}, arrowPad.paths('<', 'A'))
}

func TestNumericPart(t *testing.T) {
	assert.Equal(t, int64(29), numericPart("029A"))
	assert.Equal(t, int64(980), numericPart("980A"))
}

func TestParseRejectsBadKey(t *testing.T) {
	_, err := parse("02X9A")
	assert.Error(t, err)
}
