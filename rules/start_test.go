package rules

import (
	"math"
	"math/rand"
	"testing"

	"github.com/battlesnakeio/lightcycles/model"
	"github.com/stretchr/testify/require"
)

func TestStartGameFiltersIncompleteSlots(t *testing.T) {
	game := testGame()
	game.GrowthTicks = 3
	slots := []model.Slot{
		{ID: 0, Left: "ArrowLeft", Right: "ArrowRight"},
		{ID: 1, Left: "q"},
		{ID: 2},
		{ID: 3, Left: "a", Right: "s"},
	}

	frame := StartGame(game, slots, rand.New(rand.NewSource(7)))
	require.Equal(t, int64(0), frame.Turn)
	require.Len(t, frame.Agents, 2)
	require.Equal(t, string(GameStatusRunning), game.Status)

	require.Equal(t, "player-1", frame.Agents[0].ID)
	require.Equal(t, model.KeyBinding{Left: "ArrowLeft", Right: "ArrowRight"}, frame.Agents[0].Keys)
	require.Equal(t, "player-4", frame.Agents[1].ID)
	require.Equal(t, 3, frame.Agents[1].Slot)
	require.Equal(t, model.KeyBinding{Left: "a", Right: "s"}, frame.Agents[1].Keys)

	for _, a := range frame.Agents {
		require.Len(t, a.Trail, 1)
		head := a.Head()
		require.True(t, head.X >= 100 && head.X < 700, "x %f outside the spawn area", head.X)
		require.True(t, head.Y >= 100 && head.Y < 500, "y %f outside the spawn area", head.Y)
		require.True(t, a.Heading >= 0 && a.Heading < 2*math.Pi)
		require.Equal(t, game.Speed, a.Speed)
		require.Equal(t, game.TurnRate, a.TurnRate)
		require.Equal(t, 3, a.Growing)
		require.NotEmpty(t, a.Color)
	}
}

func TestStartGameNoPlayers(t *testing.T) {
	frame := StartGame(testGame(), []model.Slot{{ID: 0, Right: "x"}}, rand.New(rand.NewSource(1)))
	require.NotNil(t, frame)
	require.Empty(t, frame.Agents)
}

func TestStartGameIsReproducible(t *testing.T) {
	slots := []model.Slot{{ID: 0, Left: "a", Right: "s"}, {ID: 1, Left: "k", Right: "l"}}

	first := StartGame(testGame(), slots, rand.New(rand.NewSource(42)))
	second := StartGame(testGame(), slots, rand.New(rand.NewSource(42)))
	require.Equal(t, first, second)
}

func TestSpawnAxisWithoutRoom(t *testing.T) {
	require.Equal(t, 50.0, spawnAxis(100, 60, rand.New(rand.NewSource(1))))
}
