package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/puzzlebox/aoc"
)

const (
	dialSize  = 100
	dialStart = 50
)

var ErrUnknownDirection = errors.New("unknown direction")

// Command is one turn of the dial: Left towards lower numbers, Right
// towards higher ones.
type Command struct {
	Dir aoc.Direction
	N   int
}

func (c Command) String() string {
	if c.Dir == aoc.Left {
		return "L" + strconv.Itoa(c.N)
	}
	return "R" + strconv.Itoa(c.N)
}

// ParseCommands parses one L<n> or R<n> per line, skipping blank lines.
func ParseCommands(input string) ([]Command, error) {
	var cmds []Command
	err := aoc.ForLines(input, func(y int, line string) error {
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		d, ok := aoc.ParseDirection(line[0])
		if !ok || (d != aoc.Left && d != aoc.Right) {
			return fmt.Errorf("line %d: %w %q", y+1, ErrUnknownDirection, line[:1])
		}
		// Turns are capped at 32 bits so the dial arithmetic can't overflow.
		n, err := strconv.ParseInt(line[1:], 10, 32)
		if err != nil {
			return fmt.Errorf("line %d: %w", y+1, err)
		}
		if n < 0 {
			return fmt.Errorf("line %d: negative turn %d", y+1, n)
		}
		cmds = append(cmds, Command{Dir: d, N: int(n)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cmds, nil
}

// Dial is a dial numbered 0 to 99 that wraps around.
type Dial struct {
	Pos int
}

func NewDial() *Dial {
	return &Dial{Pos: dialStart}
}

// Rotate turns the dial and returns how many times it pointed at 0 during
// the turn, counting the final position.
func (d *Dial) Rotate(c Command) (passes int) {
	switch c.Dir {
	case aoc.Left:
		// Leaving 0 needs a full lap to get back to it.
		dist := d.Pos
		if dist == 0 {
			dist = dialSize
		}
		if c.N >= dist {
			passes = 1 + (c.N-dist)/dialSize
		}
		d.Pos = aoc.Mod(d.Pos-c.N, dialSize)
	case aoc.Right:
		passes = (d.Pos + c.N) / dialSize
		d.Pos = aoc.Mod(d.Pos+c.N, dialSize)
	default:
		panic(fmt.Sprintf("dial cannot turn %v", c.Dir))
	}
	return passes
}

// Simulate turns a fresh dial through cmds. landed counts the turns that
// ended on 0; passed counts every time the dial pointed at 0.
func Simulate(cmds []Command) (landed, passed int) {
	d := NewDial()
	for _, c := range cmds {
		passed += d.Rotate(c)
		if d.Pos == 0 {
			landed++
		}
	}
	return landed, passed
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	landed, _ := Simulate(aoc.MustGet(ParseCommands(s.Text())))
	return landed
}

// want=6
func (s solver) D1p2() any {
	cmds := aoc.MustGet(ParseCommands(s.Text()))
	_, passed := Simulate(cmds)
	s.Debugf("%d turns, %d zero passes", len(cmds), passed)
	return passed
}
