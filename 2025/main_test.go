package main

import (
	"testing"

	"github.com/puzzlebox/aoc/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, 2025, source, &solver{})
}
