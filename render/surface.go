// Package render draws the setup screen and the game onto a 2D surface. The
// surface only needs a handful of canvas primitives so that it can be backed
// by a browser canvas or a terminal.
package render

// Surface is a 2D drawing target.
type Surface interface {
	SetFillColor(color string)
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	FillText(text string, x, y float64)
	FillCircle(x, y, r float64)
	// Flush ends the current frame.
	Flush() error
}

// Colors used by the views.
const (
	ColorSlot       = "blue"
	ColorSelected   = "green"
	ColorText       = "white"
	ColorStart      = "gray"
	ColorHead       = "white"
	ColorBackground = "black"
)

// Sizes of the dots making up a trail.
const (
	TrailRadius = 2.0
	HeadRadius  = 3.5
)
