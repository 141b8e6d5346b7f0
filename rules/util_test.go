package rules

import (
	"math"

	"github.com/battlesnakeio/lightcycles/model"
)

// heldKeys is a fixed set of held keys for driving ticks in tests.
type heldKeys map[string]bool

func (h heldKeys) Held(key string) bool { return h[key] }

func testGame() *model.Game {
	return &model.Game{
		ID:           "test",
		Width:        800,
		Height:       600,
		Margin:       100,
		Speed:        3,
		TurnRate:     0.05,
		HitThreshold: 2,
		GrowthTicks:  1,
	}
}

func straightAgent(id string, slot int, x, y, heading float64) *model.Agent {
	return &model.Agent{
		ID:       id,
		Slot:     slot,
		Trail:    []model.Point{{X: x, Y: y}},
		Heading:  heading,
		Speed:    3,
		TurnRate: 0.05,
		Keys:     model.KeyBinding{Left: "ArrowLeft", Right: "ArrowRight"},
		Growing:  1,
	}
}

const east = 0.0

var south = math.Pi / 2
