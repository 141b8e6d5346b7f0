package rules

import "sync"

var defaultColors = []string{
	"#cd1e91",
	"#1ecdc7",
	"#cdcb1e",
	"#1ecd3f",
	"#741ecd",
	"#cd681e",
	"#1e4fcd",
	"#8f4949",
	"#49628f",
	"#628f49",
}

var palette = defaultColors

var colorMutex = &sync.Mutex{}

// colorFor returns a stable color for a slot so a player keeps its color
// from one game to the next.
func colorFor(slot int) string {
	colorMutex.Lock()
	defer colorMutex.Unlock()

	if slot < 0 {
		slot = -slot
	}
	return palette[slot%len(palette)]
}
