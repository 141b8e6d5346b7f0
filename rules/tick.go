package rules

import (
	"fmt"

	"github.com/battlesnakeio/lightcycles/model"
	log "github.com/sirupsen/logrus"
)

// GameTick runs the game one tick and updates the state. Agents are processed
// in frame order and the first collision or wall hit ends the game, the agents
// after it are left untouched for that tick.
func GameTick(game *model.Game, lastFrame *model.GameFrame, held HeldKeys) (*model.GameFrame, error) {
	if lastFrame == nil {
		return nil, fmt.Errorf("rules: invalid state, previous frame is nil")
	}
	if lastFrame.Over() {
		return lastFrame, nil
	}
	if held == nil {
		held = NoKeys
	}
	nextFrame := &model.GameFrame{
		Turn:   lastFrame.Turn + 1,
		Agents: lastFrame.Agents,
	}

	for _, agent := range nextFrame.Agents {
		// 1. steer and move
		head := moveAgent(agent, held)

		// 2. trail collision
		if cause, hit := checkForCollision(agent, nextFrame.Agents, game.HitThreshold); hit {
			endGame(game, nextFrame, agent, cause)
			return nextFrame, nil
		}

		// 3. wall collision
		if deathByOutOfBounds(head, game.Width, game.Height) {
			endGame(game, nextFrame, agent, DeathCauseWallCollision)
			return nextFrame, nil
		}

		// 4. keep the trail length constant once growth is over
		agent.Shrink()
	}

	log.WithFields(log.Fields{
		"GameID": game.ID,
		"Turn":   nextFrame.Turn,
		"Agents": len(nextFrame.Agents),
	}).Debug("game tick")
	return nextFrame, nil
}

func endGame(game *model.Game, frame *model.GameFrame, agent *model.Agent, cause string) {
	frame.End = &model.End{
		Turn:    frame.Turn,
		AgentID: agent.ID,
		Cause:   cause,
	}
	game.Status = string(GameStatusComplete)

	head := agent.Head()
	log.WithFields(log.Fields{
		"GameID":  game.ID,
		"Turn":    frame.Turn,
		"AgentID": agent.ID,
		"Cause":   cause,
		"X":       head.X,
		"Y":       head.Y,
	}).Info("game over")
}
