package model

import "math"

// Agent is a player moving on the canvas during a game.
type Agent struct {
	ID       string     `json:"id"`
	Slot     int        `json:"slot"`
	Color    string     `json:"color"`
	Trail    []Point    `json:"trail"`
	Heading  float64    `json:"heading"`
	Speed    float64    `json:"speed"`
	TurnRate float64    `json:"turnRate"`
	Keys     KeyBinding `json:"keys"`
	// Growing is the number of ticks left during which the trail is not
	// truncated.
	Growing int `json:"growing"`
}

// Head returns the first point in the trail, which is the agent position.
func (a *Agent) Head() *Point {
	if len(a.Trail) == 0 {
		return nil
	}
	return &a.Trail[0]
}

// Turn adjusts the heading by one turn step to the left and/or right. Holding
// both cancels out.
func (a *Agent) Turn(left, right bool) {
	if left {
		a.Heading -= a.TurnRate
	}
	if right {
		a.Heading += a.TurnRate
	}
}

// Advance moves the agent one step along its heading and prepends the new
// head to the trail. It does not remove the tail, that is done once
// collisions have been checked.
func (a *Agent) Advance() Point {
	h := a.Head()
	if h == nil {
		return Point{}
	}
	next := h.Add(a.Speed*math.Cos(a.Heading), a.Speed*math.Sin(a.Heading))
	a.Trail = append([]Point{next}, a.Trail...)
	return next
}

// Shrink drops the oldest trail point unless the agent is still growing, in
// which case one growth tick is consumed instead.
func (a *Agent) Shrink() {
	if a.Growing > 0 {
		a.Growing--
		return
	}
	if len(a.Trail) <= 1 {
		return
	}
	a.Trail = a.Trail[:len(a.Trail)-1]
}
