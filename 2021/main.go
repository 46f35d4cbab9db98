// Command aoc2021 runs the 2021 puzzle solutions.
package main

import (
	"embed"

	"github.com/puzzlebox/aoc"
)

func main() {
	aoc.Run(2021, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
