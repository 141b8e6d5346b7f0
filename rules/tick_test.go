package rules

import (
	"math"
	"testing"

	"github.com/battlesnakeio/lightcycles/model"
	"github.com/stretchr/testify/require"
)

func TestGameTickUpdatesTurnCounter(t *testing.T) {
	gt, err := GameTick(testGame(), &model.GameFrame{Turn: 5}, nil)
	require.NoError(t, err)
	require.Equal(t, int64(6), gt.Turn)
}

func TestGameTickNilFrame(t *testing.T) {
	_, err := GameTick(testGame(), nil, nil)
	require.EqualError(t, err, "rules: invalid state, previous frame is nil")
}

func TestGameTickStraightLine(t *testing.T) {
	agent := straightAgent("player-1", 0, 400, 300, east)
	frame := &model.GameFrame{Agents: []*model.Agent{agent}}
	game := testGame()

	var err error
	for i := 1; i <= 5; i++ {
		frame, err = GameTick(game, frame, heldKeys{})
		require.NoError(t, err)
		require.False(t, frame.Over())
		require.InDelta(t, 400+3*float64(i), agent.Head().X, 1e-9)
		require.InDelta(t, 300, agent.Head().Y, 1e-9)
		require.Equal(t, east, agent.Heading)
	}
}

func TestGameTickTrailGrowsOnceThenHolds(t *testing.T) {
	agent := straightAgent("player-1", 0, 100, 300, east)
	frame := &model.GameFrame{Agents: []*model.Agent{agent}}
	game := testGame()

	expected := []int{2, 2, 2, 2}
	for i, l := range expected {
		var err error
		frame, err = GameTick(game, frame, nil)
		require.NoError(t, err)
		require.Len(t, agent.Trail, l, "tick %d", i+1)
	}
	require.Equal(t, 0, agent.Growing)
}

func TestGameTickTrailLengthRampsToSteadyState(t *testing.T) {
	game := testGame()
	game.GrowthTicks = 5
	agent := straightAgent("player-1", 0, 100, 300, east)
	agent.Growing = game.GrowthTicks
	frame := &model.GameFrame{Agents: []*model.Agent{agent}}

	steady := 1 + game.GrowthTicks
	for tick := 1; tick <= 12; tick++ {
		var err error
		frame, err = GameTick(game, frame, nil)
		require.NoError(t, err)

		expected := 1 + tick
		if expected > steady {
			expected = steady
		}
		require.Len(t, agent.Trail, expected, "tick %d", tick)
	}
}

func TestGameTickSteering(t *testing.T) {
	tests := []struct {
		Name    string
		Held    heldKeys
		Heading float64
	}{
		{Name: "none", Held: heldKeys{}, Heading: 1},
		{Name: "left", Held: heldKeys{"ArrowLeft": true}, Heading: 0.95},
		{Name: "right", Held: heldKeys{"ArrowRight": true}, Heading: 1.05},
		{Name: "both", Held: heldKeys{"ArrowLeft": true, "ArrowRight": true}, Heading: 1},
		{Name: "unbound", Held: heldKeys{"a": true}, Heading: 1},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			agent := straightAgent("player-1", 0, 400, 300, 1)
			_, err := GameTick(testGame(), &model.GameFrame{Agents: []*model.Agent{agent}}, test.Held)
			require.NoError(t, err)
			require.InDelta(t, test.Heading, agent.Heading, 1e-9)
			require.InDelta(t, 400+3*math.Cos(test.Heading), agent.Head().X, 1e-9)
			require.InDelta(t, 300+3*math.Sin(test.Heading), agent.Head().Y, 1e-9)
		})
	}
}

func TestGameTickWallCollision(t *testing.T) {
	tests := []struct {
		Name string
		X    float64
		Over bool
	}{
		{Name: "lands on edge", X: 3, Over: true},
		{Name: "just inside", X: 3.5, Over: false},
		{Name: "just outside", X: 2.5, Over: true},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			game := testGame()
			agent := straightAgent("player-1", 0, test.X, 300, math.Pi)
			frame, err := GameTick(game, &model.GameFrame{Agents: []*model.Agent{agent}}, nil)
			require.NoError(t, err)
			require.Equal(t, test.Over, frame.Over())
			if test.Over {
				require.Equal(t, DeathCauseWallCollision, frame.End.Cause)
				require.Equal(t, "player-1", frame.End.AgentID)
				require.Equal(t, int64(1), frame.End.Turn)
				require.Equal(t, string(GameStatusComplete), game.Status)
			}
		})
	}
}

func TestGameTickCollisionAtTickN(t *testing.T) {
	// a heads east along y=300, b heads south along x=130 and crosses a's
	// fresh trail on tick 10
	a := straightAgent("player-1", 0, 100, 300, east)
	b := straightAgent("player-2", 1, 130, 270, south)
	frame := &model.GameFrame{Agents: []*model.Agent{a, b}}
	game := testGame()

	for tick := 1; tick < 10; tick++ {
		var err error
		frame, err = GameTick(game, frame, nil)
		require.NoError(t, err)
		require.False(t, frame.Over(), "game ended early on tick %d", tick)
	}

	frame, err := GameTick(game, frame, nil)
	require.NoError(t, err)
	require.True(t, frame.Over())
	require.Equal(t, int64(10), frame.End.Turn)
	require.Equal(t, "player-2", frame.End.AgentID)
	require.Equal(t, DeathCauseAgentCollision, frame.End.Cause)
	require.True(t, CheckForGameOver(frame))
}

func TestGameTickHeadOnDependsOnOrder(t *testing.T) {
	run := func(order func(a, b *model.Agent) []*model.Agent) *model.End {
		a := straightAgent("player-1", 0, 100, 300, east)
		b := straightAgent("player-2", 1, 112, 300, math.Pi)
		frame := &model.GameFrame{Agents: order(a, b)}
		game := testGame()
		for !frame.Over() {
			var err error
			frame, err = GameTick(game, frame, nil)
			require.NoError(t, err)
			require.True(t, frame.Turn <= 2, "expected the game to end by tick 2")
		}
		return frame.End
	}

	end := run(func(a, b *model.Agent) []*model.Agent { return []*model.Agent{a, b} })
	require.Equal(t, int64(2), end.Turn)
	require.Equal(t, "player-2", end.AgentID)

	end = run(func(a, b *model.Agent) []*model.Agent { return []*model.Agent{b, a} })
	require.Equal(t, int64(2), end.Turn)
	require.Equal(t, "player-1", end.AgentID)
}

func TestGameTickStopsAtFirstEnd(t *testing.T) {
	a := straightAgent("player-1", 0, 5, 300, math.Pi)
	b := straightAgent("player-2", 1, 400, 300, east)
	frame := &model.GameFrame{Agents: []*model.Agent{a, b}}
	game := testGame()

	frame, err := GameTick(game, frame, nil)
	require.NoError(t, err)
	require.False(t, frame.Over())
	require.Len(t, b.Trail, 2)

	frame, err = GameTick(game, frame, nil)
	require.NoError(t, err)
	require.True(t, frame.Over())
	require.Equal(t, "player-1", frame.End.AgentID)
	require.Len(t, b.Trail, 2, "agents after the collision are not moved")
	require.InDelta(t, 403, b.Head().X, 1e-9)

	again, err := GameTick(game, frame, nil)
	require.NoError(t, err)
	require.Equal(t, frame, again, "finished games do not advance")
}
