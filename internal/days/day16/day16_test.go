package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

const bigger = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`

func TestPart1(t *testing.T) {
	data, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "7036", part1(data))
}

func TestPart1Bigger(t *testing.T) {
	data, err := parse(bigger)
	require.NoError(t, err)
	assert.Equal(t, "11048", part1(data))
}

func TestPart2(t *testing.T) {
	data, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "45", part2(data))
}

func TestPart2Bigger(t *testing.T) {
	data, err := parse(bigger)
	require.NoError(t, err)
	assert.Equal(t, "64", part2(data))
}

func TestParseRequiresEndpoints(t *testing.T) {
	_, err := parse("###\n#S#\n###")
	assert.Error(t, err)
}
