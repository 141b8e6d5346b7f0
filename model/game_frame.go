package model

// GameFrame is the state of a game at a given turn.
type GameFrame struct {
	Turn   int64    `json:"turn"`
	Agents []*Agent `json:"agents"`
	End    *End     `json:"end,omitempty"`
}

// Over returns true once the game has reached its terminal state.
func (gf *GameFrame) Over() bool {
	return gf.End != nil
}

// Agent looks up an agent by id.
func (gf *GameFrame) Agent(id string) *Agent {
	for _, a := range gf.Agents {
		if a.ID == id {
			return a
		}
	}
	return nil
}
