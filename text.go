package aoc

import (
	"bufio"
	"strings"
)

// ForLines calls onLine for each line of s, stopping at the first error.
// The y value is the line number, starting with 0.
func ForLines(s string, onLine func(y int, line string) error) error {
	sc := bufio.NewScanner(strings.NewReader(s))
	y := -1
	for sc.Scan() {
		y++
		if err := onLine(y, strings.TrimRight(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Paragraphs splits s into blocks separated by blank lines. Blocks are
// returned without their trailing newline; empty blocks are dropped.
func Paragraphs(s string) []string {
	var (
		out []string
		cur []string
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	ForLines(s, func(_ int, line string) error {
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			cur = append(cur, line)
		}
		return nil
	})
	flush()
	return out
}
