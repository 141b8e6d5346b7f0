package model

// Slot is a player identity on the setup screen waiting for its control keys.
// An empty key means unassigned.
type Slot struct {
	ID    int    `json:"id"`
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
}

// Complete returns true once both keys have been assigned.
func (s Slot) Complete() bool {
	return s.Left != "" && s.Right != ""
}

// Binding returns the slot keys as a binding for an agent.
func (s Slot) Binding() KeyBinding {
	return KeyBinding{Left: s.Left, Right: s.Right}
}

// KeyBinding is the pair of keys steering an agent.
type KeyBinding struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}
