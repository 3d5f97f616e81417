package day14

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3`

func TestSafetyScore(t *testing.T) {
	robots, err := parse(sample)
	require.NoError(t, err)
	// The sample uses an 11x7 board instead of the real one.
	assert.Equal(t, 12, safetyScore(robots, 100, 11, 7))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 3, wrap(14, 11))
	assert.Equal(t, 9, wrap(-2, 11))
	assert.Equal(t, 0, wrap(0, 11))
}

func TestAfterWrapsNegativeVelocity(t *testing.T) {
	r := robot{x: 2, y: 4, vx: 2, vy: -3}
	x, y := r.after(5, 11, 7)
	assert.Equal(t, 1, x)
	assert.Equal(t, 3, y)
}
