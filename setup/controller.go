// Package setup is the pre-game screen where players pick their slot and
// bind a left and a right key to it.
package setup

import (
	"github.com/battlesnakeio/lightcycles/model"
	"github.com/battlesnakeio/lightcycles/render"
	log "github.com/sirupsen/logrus"
)

// Layout of the slot rectangles.
const (
	SlotX       = 50.0
	SlotY       = 50.0
	SlotWidth   = 100.0
	SlotHeight  = 50.0
	SlotPadding = 20.0
)

const noSelection = -1

// Fits reports whether the slots and the start button for the given number of
// players fit on a width x height canvas.
func Fits(players int, width, height float64) bool {
	bottom := SlotY + float64(players+1)*(SlotHeight+SlotPadding) - SlotPadding
	return SlotX+SlotWidth <= width && bottom <= height
}

// Controller owns the player slots and the current selection. It is not safe
// for concurrent use, the owning session serializes access.
type Controller struct {
	width, height float64
	slots         []model.Slot
	rects         []model.Rect
	start         model.Rect
	selected      int
}

// New creates a controller with the given number of empty slots for a canvas
// of width x height.
func New(players int, width, height float64) *Controller {
	c := &Controller{
		width:    width,
		height:   height,
		selected: noSelection,
	}
	for i := 0; i < players; i++ {
		c.slots = append(c.slots, model.Slot{ID: i})
		c.rects = append(c.rects, model.Rect{
			X: SlotX,
			Y: SlotY + float64(i)*(SlotHeight+SlotPadding),
			W: SlotWidth,
			H: SlotHeight,
		})
	}
	c.start = model.Rect{
		X: SlotX,
		Y: SlotY + float64(players)*(SlotHeight+SlotPadding),
		W: SlotWidth,
		H: SlotHeight,
	}
	return c
}

// SelectSlot makes id the slot receiving the next key presses. Any previous
// selection is dropped. Unknown ids are ignored.
func (c *Controller) SelectSlot(id int) bool {
	if id < 0 || id >= len(c.slots) {
		return false
	}
	c.selected = id
	return true
}

// Selected returns the active slot and whether there is one.
func (c *Controller) Selected() (int, bool) {
	return c.selected, c.selected != noSelection
}

// AssignKey binds key to the active slot, left first then right. Once the
// right key is set the selection is cleared. Nothing stops the same key from
// being used twice. Returns true when a binding changed.
func (c *Controller) AssignKey(key string) bool {
	if c.selected == noSelection || key == "" {
		return false
	}

	slot := &c.slots[c.selected]
	switch {
	case slot.Left == "":
		slot.Left = key
	case slot.Right == "":
		slot.Right = key
		c.selected = noSelection
	default:
		return false
	}

	log.WithFields(log.Fields{
		"Slot":  slot.ID,
		"Left":  slot.Left,
		"Right": slot.Right,
	}).Debug("key assigned")
	return true
}

// Click selects the slot under x, y. It reports whether the start button was
// clicked instead. Clicks elsewhere do nothing.
func (c *Controller) Click(x, y float64) (start bool) {
	for i, r := range c.rects {
		if r.Contains(x, y) {
			c.SelectSlot(i)
			return false
		}
	}
	return c.start.Contains(x, y)
}

// Slots returns a copy of the slots.
func (c *Controller) Slots() []model.Slot {
	return append([]model.Slot{}, c.slots...)
}

// Reset clears every binding and the selection.
func (c *Controller) Reset() {
	for i := range c.slots {
		c.slots[i] = model.Slot{ID: i}
	}
	c.selected = noSelection
}

// View returns the data needed to draw the setup screen.
func (c *Controller) View() render.SelectionView {
	return render.SelectionView{
		Width:    c.width,
		Height:   c.height,
		Slots:    c.Slots(),
		Rects:    append([]model.Rect{}, c.rects...),
		Selected: c.selected,
		Start:    c.start,
	}
}

// Render draws the setup screen.
func (c *Controller) Render(s render.Surface) error {
	return render.Selection(s, c.View())
}
