package main

import (
	"github.com/battlesnakeio/lightcycles/cmd/lightcycles/commands"
)

func main() {
	commands.Execute()
}
