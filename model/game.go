package model

import "time"

// Game holds the settings of a single game. They are captured when the game
// starts and do not change while it runs.
type Game struct {
	ID           string        `json:"id"`
	Width        float64       `json:"width"`
	Height       float64       `json:"height"`
	Margin       float64       `json:"margin"`
	Speed        float64       `json:"speed"`
	TurnRate     float64       `json:"turnRate"`
	HitThreshold float64       `json:"hitThreshold"`
	GrowthTicks  int           `json:"growthTicks"`
	TickInterval time.Duration `json:"tickInterval"`
	Status       string        `json:"status"`
}

// End records how and when a game finished.
type End struct {
	Turn    int64  `json:"turn"`
	AgentID string `json:"agentId"`
	Cause   string `json:"cause"`
}
