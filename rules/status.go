package rules

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	// GameStatusStopped represents a game that has been created but not started
	GameStatusStopped GameStatus = "stopped"
	// GameStatusRunning represents a running game
	GameStatusRunning GameStatus = "running"
	// GameStatusComplete represents a game that is done
	GameStatusComplete GameStatus = "complete"
)
