package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20`

func TestPart1(t *testing.T) {
	data, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "3749", part1(data))
}

func TestPart2(t *testing.T) {
	data, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "11387", part2(data))
}

func TestConcat(t *testing.T) {
	assert.Equal(t, int64(1234), concat(12, 34))
	assert.Equal(t, int64(1056), concat(10, 56))
	assert.Equal(t, int64(99100), concat(99, 100))
}
