package rules

const (
	// DeathCauseAgentCollision is the end reason when an agent runs into another agent's trail
	DeathCauseAgentCollision = "agent-collision"
	// DeathCauseSelfCollision is the end reason when an agent runs into its own trail
	DeathCauseSelfCollision = "self-collision"
	// DeathCauseWallCollision is when an agent runs off the canvas
	DeathCauseWallCollision = "wall-collision"
)
