package rules

import "github.com/battlesnakeio/lightcycles/model"

// CheckForGameOver checks if the game has ended. Any single collision ends the
// game for everyone, there is no last survivor.
func CheckForGameOver(frame *model.GameFrame) bool {
	return frame != nil && frame.Over()
}
