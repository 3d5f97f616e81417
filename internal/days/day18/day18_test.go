package day18

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0`

func TestShortestPath(t *testing.T) {
	data, err := parse(sample)
	require.NoError(t, err)
	// The sample memory space is 7x7 with the first 12 bytes fallen.
	assert.Equal(t, 22, shortestPath(data[:12], 7))
}

func TestFirstBlocker(t *testing.T) {
	data, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "6,1", firstBlocker(data, 7))
}

func TestFirstBlockerNeverBlocked(t *testing.T) {
	assert.Equal(t, "never blocked", firstBlocker([]coord{{3, 3}}, 7))
}

func TestUnreachable(t *testing.T) {
	// Wall off the exit corner.
	assert.Equal(t, -1, shortestPath([]coord{{6, 5}, {5, 6}}, 7))
}
