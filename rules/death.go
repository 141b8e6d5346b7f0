package rules

import "github.com/battlesnakeio/lightcycles/model"

// Collides checks the head of the agent against the rest of its own trail and
// against every point of every other agent, heads included. GameTick uses
// checkForCollision, which also reports whether the hit was on the agent's
// own trail or another one.
func Collides(agent *model.Agent, agents []*model.Agent, threshold float64) bool {
	_, hit := checkForCollision(agent, agents, threshold)
	return hit
}

// checkForCollision returns the cause of the first collision found. The search
// stops at the first hit.
func checkForCollision(agent *model.Agent, agents []*model.Agent, threshold float64) (string, bool) {
	head := agent.Head()
	if head == nil {
		return "", false
	}

	for _, p := range agent.Trail[1:] {
		if head.Near(p, threshold) {
			return DeathCauseSelfCollision, true
		}
	}

	for _, other := range agents {
		if other == agent || other.ID == agent.ID {
			continue
		}
		for _, p := range other.Trail {
			if head.Near(p, threshold) {
				return DeathCauseAgentCollision, true
			}
		}
	}
	return "", false
}

// deathByOutOfBounds treats the canvas edges themselves as outside.
func deathByOutOfBounds(head model.Point, width, height float64) bool {
	return head.X <= 0 || head.X >= width || head.Y <= 0 || head.Y >= height
}
