package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "2333133121414131402"

func TestPart1(t *testing.T) {
	data, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "1928", part1(data))
}

func TestPart2(t *testing.T) {
	data, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "2858", part2(data))
}

func TestPart2ShiftsDisplacedFiles(t *testing.T) {
	// One big gap after file 0; every later file relocates into it in
	// reverse id order, each insertion shifting the files already
	// moved there one slot to the right.
	data, err := parse("151111111")
	require.NoError(t, err)

	// Final layout: 0 at 0, 4 at 1, 3 at 2, 2 at 3, 1 at 4.
	assert.Equal(t, "20", part2(data))
}

func TestSpanChecksum(t *testing.T) {
	// id 9 at positions 2 and 3.
	assert.Equal(t, int64(45), span{id: 9, start: 2, size: 2}.checksum())
}

func TestParseRejectsNonDigit(t *testing.T) {
	_, err := parse("12x4")
	assert.Error(t, err)
}
