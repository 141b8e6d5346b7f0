package commands

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/battlesnakeio/lightcycles/render"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const defaultColor = termbox.ColorDefault

var namedColors = map[string]termbox.Attribute{
	"black": termbox.ColorBlack,
	"red":   termbox.ColorRed,
	"green": termbox.ColorGreen,
	"blue":  termbox.ColorBlue,
	"white": termbox.ColorWhite,
	// first bright color of the 256 color palette
	"gray": termbox.Attribute(9),
}

// termColor maps a canvas color to a 256 color terminal attribute. Hex colors
// go to the nearest entry of the 6x6x6 color cube.
func termColor(color string) termbox.Attribute {
	if a, ok := namedColors[strings.ToLower(color)]; ok {
		return a
	}
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return defaultColor
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return defaultColor
	}
	level := func(c uint64) int {
		return int(math.Round(float64(c) / 255 * 5))
	}
	r, g, b := level(rgb>>16&0xff), level(rgb>>8&0xff), level(rgb&0xff)
	return termbox.Attribute(16 + 36*r + 6*g + b + 1)
}

// termSurface draws canvas ops onto the terminal. The canvas is scaled to the
// terminal size, the last row is kept for the status line.
type termSurface struct {
	mu            sync.Mutex
	width, height float64
	cols, rows    int
	fill          termbox.Attribute
	status        string
}

func newTermSurface(width, height float64, cols, rows int) *termSurface {
	return &termSurface{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		fill:   defaultColor,
	}
}

func (t *termSurface) resize(cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cols, t.rows = cols, rows
}

func (t *termSurface) setStatus(status string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = status
}

// cell returns the terminal cell under a canvas point.
func (t *termSurface) cell(x, y float64) (int, int) {
	return int(x * float64(t.cols) / t.width), int(y * float64(t.rows-1) / t.height)
}

// point returns the canvas point in the middle of a terminal cell.
func (t *termSurface) point(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * t.width / float64(t.cols),
		(float64(row) + 0.5) * t.height / float64(t.rows-1)
}

func (t *termSurface) SetFillColor(color string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fill = termColor(color)
}

func (t *termSurface) ClearRect(x, y, w, h float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rect(x, y, w, h, termbox.Cell{Ch: ' ', Fg: defaultColor, Bg: defaultColor})
}

func (t *termSurface) FillRect(x, y, w, h float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rect(x, y, w, h, termbox.Cell{Ch: ' ', Fg: t.fill, Bg: t.fill})
}

func (t *termSurface) rect(x, y, w, h float64, cell termbox.Cell) {
	x0, y0 := t.cell(x, y)
	x1, y1 := t.cell(x+w, y+h)
	fill(x0, y0, x1-x0, y1-y0, cell)
}

func (t *termSurface) FillText(text string, x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// canvas text sits on its baseline, lift it onto the row above
	col, row := t.cell(x, y)
	if row > 0 {
		row--
	}
	tbprint(col, row, t.fill, defaultColor, text)
}

func (t *termSurface) FillCircle(x, y, r float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	col, row := t.cell(x, y)
	termbox.SetCell(col, row, ' ', t.fill, t.fill)
}

func (t *termSurface) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	fill(0, t.rows-1, t.cols, 1, termbox.Cell{Ch: ' '})
	tbprint(0, t.rows-1, termbox.ColorWhite, defaultColor, t.status)
	return termbox.Flush()
}

var _ render.Surface = (*termSurface)(nil)

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
