package coord

import (
	"math"
)

// Point is an absolute XY position in mm.
type Point struct{ X, Y float64 }

func (p Point) Equal(b Point) bool {
	return p.X == b.X && p.Y == b.Y
}

// Sub will subtract the target values from p.
func (p Point) Sub(target Point) Point {
	p.X -= target.X
	p.Y -= target.Y
	return p
}

// Distance will return the straight-line distance from p to the target.
func (p Point) Distance(target Point) float64 {
	d := target.Sub(p)
	return math.Hypot(d.X, d.Y)
}
