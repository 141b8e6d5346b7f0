package rules

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/battlesnakeio/lightcycles/model"
	log "github.com/sirupsen/logrus"
)

// StartGame builds the first frame of a game. Only slots with both keys
// assigned take part, the others are skipped without complaint, so a game can
// start with a single agent or none at all.
func StartGame(game *model.Game, slots []model.Slot, rng *rand.Rand) *model.GameFrame {
	frame := &model.GameFrame{
		Turn:   0,
		Agents: []*model.Agent{},
	}

	for _, slot := range slots {
		if !slot.Complete() {
			continue
		}
		start := spawnPoint(game, rng)
		agent := &model.Agent{
			ID:       fmt.Sprintf("player-%d", slot.ID+1),
			Slot:     slot.ID,
			Color:    colorFor(slot.ID),
			Trail:    []model.Point{start},
			Heading:  rng.Float64() * 2 * math.Pi,
			Speed:    game.Speed,
			TurnRate: game.TurnRate,
			Keys:     slot.Binding(),
			Growing:  game.GrowthTicks,
		}
		log.WithFields(log.Fields{
			"GameID":  game.ID,
			"AgentID": agent.ID,
			"Left":    agent.Keys.Left,
			"Right":   agent.Keys.Right,
			"X":       start.X,
			"Y":       start.Y,
		}).Debug("agent spawned")
		frame.Agents = append(frame.Agents, agent)
	}

	game.Status = string(GameStatusRunning)
	return frame
}

// spawnPoint picks a uniformly random point inside the canvas inset by the
// game margin. The same point is used for the agent position and its trail.
func spawnPoint(game *model.Game, rng *rand.Rand) model.Point {
	return model.Point{
		X: spawnAxis(game.Width, game.Margin, rng),
		Y: spawnAxis(game.Height, game.Margin, rng),
	}
}

func spawnAxis(extent, margin float64, rng *rand.Rand) float64 {
	span := extent - 2*margin
	if span <= 0 {
		return extent / 2
	}
	return margin + rng.Float64()*span
}
