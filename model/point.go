package model

import "math"

// Point is a position on the canvas in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the point translated by dx, dy.
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Near checks if 2 points are within threshold of each other on both axes.
// This is a square hit box, not a euclidean distance.
func (p Point) Near(other Point, threshold float64) bool {
	return math.Abs(p.X-other.X) < threshold && math.Abs(p.Y-other.Y) < threshold
}

// Rect is an axis aligned rectangle used for layout and hit testing.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Contains reports whether x, y falls inside the rect, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}
