// Command aoc2025 runs the 2025 puzzle solutions.
package main

import (
	"embed"

	"github.com/puzzlebox/aoc"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
