package render

import (
	"fmt"

	"github.com/battlesnakeio/lightcycles/model"
)

// SelectionView is everything needed to draw the setup screen.
type SelectionView struct {
	Width, Height float64
	Slots         []model.Slot
	Rects         []model.Rect
	// Selected is the active slot, -1 when nothing is selected.
	Selected int
	Start    model.Rect
}

// Selection draws the player slots, their keys and the start button.
func Selection(s Surface, v SelectionView) error {
	s.ClearRect(0, 0, v.Width, v.Height)

	for i, slot := range v.Slots {
		if i >= len(v.Rects) {
			break
		}
		r := v.Rects[i]
		if v.Selected == slot.ID {
			s.SetFillColor(ColorSelected)
		} else {
			s.SetFillColor(ColorSlot)
		}
		s.FillRect(r.X, r.Y, r.W, r.H)

		s.SetFillColor(ColorText)
		s.FillText(fmt.Sprintf("Player %d", slot.ID+1), r.X+10, r.Y+r.H/2+5)

		keysX := r.X + r.W + 20
		switch {
		case slot.Complete():
			s.FillText(fmt.Sprintf("Left: %s", slot.Left), keysX, r.Y+20)
			s.FillText(fmt.Sprintf("Right: %s", slot.Right), keysX, r.Y+40)
		case v.Selected == slot.ID && slot.Left == "":
			s.FillText("Select Left Key", keysX, r.Y+20)
		case v.Selected == slot.ID:
			s.FillText(fmt.Sprintf("Left: %s", slot.Left), keysX, r.Y+20)
			s.FillText("Select Right Key", keysX, r.Y+40)
		}
	}

	if v.Start.W > 0 {
		s.SetFillColor(ColorStart)
		s.FillRect(v.Start.X, v.Start.Y, v.Start.W, v.Start.H)
		s.SetFillColor(ColorText)
		s.FillText("Start", v.Start.X+10, v.Start.Y+v.Start.H/2+5)
	}

	return s.Flush()
}

// Game clears the canvas and draws every trail. Trail points are small dots
// in the agent color, the head is drawn larger on top.
func Game(s Surface, width, height float64, agents []*model.Agent) error {
	s.ClearRect(0, 0, width, height)

	for _, a := range agents {
		if len(a.Trail) == 0 {
			continue
		}
		s.SetFillColor(a.Color)
		for _, p := range a.Trail[1:] {
			s.FillCircle(p.X, p.Y, TrailRadius)
		}
		head := a.Head()
		s.SetFillColor(ColorHead)
		s.FillCircle(head.X, head.Y, HeadRadius)
	}

	return s.Flush()
}
