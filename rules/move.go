package rules

import "github.com/battlesnakeio/lightcycles/model"

// HeldKeys reports whether a key is currently held down.
type HeldKeys interface {
	Held(key string) bool
}

// NoKeys is a HeldKeys with nothing held.
var NoKeys HeldKeys = noKeys{}

type noKeys struct{}

func (noKeys) Held(string) bool { return false }

// moveAgent steers the agent with its bound keys then advances it one step.
// It returns the new head.
func moveAgent(agent *model.Agent, held HeldKeys) model.Point {
	agent.Turn(held.Held(agent.Keys.Left), held.Held(agent.Keys.Right))
	return agent.Advance()
}
