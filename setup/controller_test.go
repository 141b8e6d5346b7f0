package setup

import (
	"testing"

	"github.com/battlesnakeio/lightcycles/model"
	"github.com/battlesnakeio/lightcycles/render"
	"github.com/stretchr/testify/require"
)

func TestAssignKeysToSelectedSlot(t *testing.T) {
	c := New(6, 800, 600)

	require.True(t, c.SelectSlot(2))
	require.True(t, c.AssignKey("a"))
	require.True(t, c.AssignKey("s"))

	slots := c.Slots()
	require.Equal(t, model.Slot{ID: 2, Left: "a", Right: "s"}, slots[2])

	_, ok := c.Selected()
	require.False(t, ok, "selection is cleared once both keys are set")

	// no target until another slot is selected
	require.False(t, c.AssignKey("d"))
	require.Equal(t, slots, c.Slots())
}

func TestSelectSlotOverwritesSelection(t *testing.T) {
	c := New(6, 800, 600)

	c.SelectSlot(1)
	c.AssignKey("q")
	c.SelectSlot(4)
	c.AssignKey("w")

	id, ok := c.Selected()
	require.True(t, ok)
	require.Equal(t, 4, id)

	slots := c.Slots()
	require.Equal(t, model.Slot{ID: 1, Left: "q"}, slots[1])
	require.Equal(t, model.Slot{ID: 4, Left: "w"}, slots[4])
}

func TestSelectSlotOutOfRange(t *testing.T) {
	c := New(2, 800, 600)
	require.False(t, c.SelectSlot(-1))
	require.False(t, c.SelectSlot(2))
	_, ok := c.Selected()
	require.False(t, ok)
}

func TestAssignKeyAllowsDuplicates(t *testing.T) {
	c := New(2, 800, 600)
	c.SelectSlot(0)
	c.AssignKey("x")
	c.AssignKey("x")
	c.SelectSlot(1)
	c.AssignKey("x")

	slots := c.Slots()
	require.Equal(t, model.Slot{ID: 0, Left: "x", Right: "x"}, slots[0])
	require.Equal(t, "x", slots[1].Left)
}

func TestAssignKeyCompleteSlot(t *testing.T) {
	c := New(1, 800, 600)
	c.SelectSlot(0)
	c.AssignKey("a")
	c.AssignKey("s")

	c.SelectSlot(0)
	require.False(t, c.AssignKey("d"), "complete slots keep their keys")
	require.Equal(t, model.Slot{ID: 0, Left: "a", Right: "s"}, c.Slots()[0])

	require.False(t, c.AssignKey(""))
}

func TestClick(t *testing.T) {
	c := New(6, 800, 600)

	tests := []struct {
		X, Y     float64
		Selected int
		Start    bool
	}{
		{X: 60, Y: 60, Selected: 0},
		{X: 150, Y: 100, Selected: 0},
		{X: 100, Y: 120, Selected: 1},
		{X: 100, Y: 400, Selected: 5},
		{X: 100, Y: 110, Selected: 5}, // padding between slots
		{X: 400, Y: 60, Selected: 5},
		{X: 100, Y: 490, Selected: 5, Start: true},
	}

	for _, test := range tests {
		start := c.Click(test.X, test.Y)
		require.Equal(t, test.Start, start, "click %v,%v", test.X, test.Y)
		id, _ := c.Selected()
		require.Equal(t, test.Selected, id, "click %v,%v", test.X, test.Y)
	}
}

func TestReset(t *testing.T) {
	c := New(2, 800, 600)
	c.SelectSlot(1)
	c.AssignKey("a")
	c.Reset()

	require.Equal(t, []model.Slot{{ID: 0}, {ID: 1}}, c.Slots())
	_, ok := c.Selected()
	require.False(t, ok)
}

func TestFits(t *testing.T) {
	tests := []struct {
		Players       int
		Width, Height float64
		Fits          bool
	}{
		{Players: 6, Width: 800, Height: 600, Fits: true},
		{Players: 7, Width: 800, Height: 600, Fits: true},
		{Players: 8, Width: 800, Height: 600, Fits: false},
		{Players: 1, Width: 150, Height: 170, Fits: true},
		{Players: 1, Width: 149, Height: 170, Fits: false},
	}

	for _, test := range tests {
		require.Equal(t, test.Fits, Fits(test.Players, test.Width, test.Height), "%+v", test)

		// the start button of a fitting layout is inside the canvas
		if test.Fits {
			start := New(test.Players, test.Width, test.Height).View().Start
			require.True(t, start.Y+start.H <= test.Height)
			require.True(t, start.X+start.W <= test.Width)
		}
	}
}

func TestRender(t *testing.T) {
	var frames [][]render.Op
	r := render.NewRecorder(func(ops []render.Op) error {
		frames = append(frames, ops)
		return nil
	})

	c := New(2, 800, 600)
	c.SelectSlot(0)
	require.NoError(t, c.Render(r))
	require.Len(t, frames, 1)
	require.Contains(t, frames[0], render.Op{Op: render.OpFillText, Text: "Select Left Key", X: 170, Y: 70})
	require.Contains(t, frames[0], render.Op{Op: render.OpFillText, Text: "Start", X: 60, Y: 220})
}
