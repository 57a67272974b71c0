package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Sub(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 4, Y: 5}

	assert.Equal(t, Point{X: -3, Y: -3}, a.Sub(b))
}

func TestPoint_Distance(t *testing.T) {
	assert.Equal(t, 5.0, Point{}.Distance(Point{X: 3, Y: 4}))

	dist := Point{X: 1, Y: 2}.Distance(Point{X: 4, Y: 5})
	assert.InEpsilon(t, 4.24264, dist, .01)

	assert.Equal(t, 0.0, Point{X: 7, Y: 7}.Distance(Point{X: 7, Y: 7}))
}

func TestPoint_Equal(t *testing.T) {
	assert.True(t, Point{X: 1, Y: 2}.Equal(Point{X: 1, Y: 2}))
	assert.False(t, Point{X: 1, Y: 2}.Equal(Point{X: 2, Y: 1}))
}
