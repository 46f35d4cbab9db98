package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/puzzlebox/aoc"
)

var ErrMalformedSegment = errors.New("malformed segment")

// ParseSegments parses one "x1,y1 -> x2,y2" segment per line. Blank lines
// are skipped; anything else that doesn't parse is an error.
func ParseSegments(input string) ([]aoc.Segment, error) {
	var segs []aoc.Segment
	err := aoc.ForLines(input, func(y int, line string) error {
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		from, to, ok := strings.Cut(line, " -> ")
		if !ok {
			return fmt.Errorf("line %d: %w: %q", y+1, ErrMalformedSegment, line)
		}
		a, err := parsePt(from)
		if err != nil {
			return fmt.Errorf("line %d: %w", y+1, err)
		}
		b, err := parsePt(to)
		if err != nil {
			return fmt.Errorf("line %d: %w", y+1, err)
		}
		segs = append(segs, aoc.Segment{A: a, B: b})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return segs, nil
}

func parsePt(s string) (aoc.Pt, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return aoc.Pt{}, fmt.Errorf("%w: point %q", ErrMalformedSegment, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return aoc.Pt{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return aoc.Pt{}, err
	}
	if x < 0 || y < 0 {
		return aoc.Pt{}, fmt.Errorf("%w: negative coordinate in %q", ErrMalformedSegment, s)
	}
	return aoc.Pt{X: x, Y: y}, nil
}

// Orthogonal returns the horizontal and vertical segments of segs.
func Orthogonal(segs []aoc.Segment) []aoc.Segment {
	var out []aoc.Segment
	for _, s := range segs {
		if s.Orthogonal() {
			out = append(out, s)
		}
	}
	return out
}

// Coverage returns how many segments pass through each point.
func Coverage(segs []aoc.Segment) *aoc.Counter[aoc.Pt] {
	var c aoc.Counter[aoc.Pt]
	for _, s := range segs {
		c.AddAll(s.Points()...)
	}
	return &c
}

// CountOverlaps returns the number of points covered by two or more
// segments.
func CountOverlaps(segs []aoc.Segment) int {
	return Coverage(segs).AtLeast(2)
}

/*
want=5

0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
*/
func (s solver) D5p1() any {
	segs := aoc.MustGet(ParseSegments(s.Text()))
	ortho := Orthogonal(segs)
	s.Debug("using ", len(ortho), " of ", len(segs), " segments")
	return CountOverlaps(ortho)
}

// want=12
func (s solver) D5p2() any {
	return CountOverlaps(aoc.MustGet(ParseSegments(s.Text())))
}
