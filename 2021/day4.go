package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/puzzlebox/aoc"
)

const boardSize = 5

var ErrBoardShape = errors.New("board is not 5x5")

// Cell is one square of a bingo board.
type Cell struct {
	N      int
	Marked bool
}

// Board is a 5x5 bingo board. Marks are never removed.
type Board struct {
	g aoc.Grid[Cell]
}

func NewBoard(rows [][]int) (*Board, error) {
	if len(rows) != boardSize {
		return nil, fmt.Errorf("%w: %d rows", ErrBoardShape, len(rows))
	}
	g := aoc.MakeGrid[Cell](boardSize, boardSize)
	for y, row := range rows {
		if len(row) != boardSize {
			return nil, fmt.Errorf("%w: row %d has %d numbers", ErrBoardShape, y, len(row))
		}
		for x, n := range row {
			g.Set(aoc.Pt{X: x, Y: y}, Cell{N: n})
		}
	}
	return &Board{g: g}, nil
}

// Mark marks every cell holding n.
func (b *Board) Mark(n int) {
	b.g.ForEach(func(_ aoc.Pt, c *Cell) {
		if c.N == n {
			c.Marked = true
		}
	})
}

// Won reports whether a whole row or column is marked. Diagonals don't
// count.
func (b *Board) Won() bool {
	return anyRowMarked(b.g) || anyRowMarked(b.g.Transpose())
}

func anyRowMarked(g aoc.Grid[Cell]) bool {
	for _, row := range g {
		if !slices.ContainsFunc(row, func(c Cell) bool { return !c.Marked }) {
			return true
		}
	}
	return false
}

// Score is the sum of the unmarked numbers times the last number called.
func (b *Board) Score(last int) int {
	var unmarked []int
	b.g.ForEach(func(_ aoc.Pt, c *Cell) {
		if !c.Marked {
			unmarked = append(unmarked, c.N)
		}
	})
	return aoc.Sum(unmarked...) * last
}

func (b *Board) Clone() *Board {
	return &Board{g: b.g.Clone()}
}

func cloneBoards(boards []*Board) []*Board {
	out := make([]*Board, len(boards))
	for i, b := range boards {
		out[i] = b.Clone()
	}
	return out
}

// ParseBingo parses the call list and the boards. Tokens that aren't
// numbers are dropped; a board that isn't 5x5 after that is an error.
func ParseBingo(input string) (calls []int, boards []*Board, err error) {
	paras := aoc.Paragraphs(input)
	if len(paras) == 0 {
		return nil, nil, errors.New("empty bingo input")
	}
	calls = aoc.FilterInts(strings.Split(paras[0], ",")...)
	for i, para := range paras[1:] {
		var rows [][]int
		for _, line := range strings.Split(para, "\n") {
			rows = append(rows, aoc.FilterInts(strings.Fields(line)...))
		}
		b, err := NewBoard(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("board %d: %w", i, err)
		}
		boards = append(boards, b)
	}
	return calls, boards, nil
}

// Win records a board completing.
type Win struct {
	Board int // index in parse order
	Call  int // number that completed it
	Score int
}

// FirstWinner plays calls on copies of boards and returns the first board
// to complete. Within one call, boards are checked in order.
func FirstWinner(calls []int, boards []*Board) (Win, bool) {
	boards = cloneBoards(boards)
	for _, n := range calls {
		for i, b := range boards {
			b.Mark(n)
			if b.Won() {
				return Win{Board: i, Call: n, Score: b.Score(n)}, true
			}
		}
	}
	return Win{}, false
}

// LastWinner plays calls on copies of boards, setting completed boards
// aside, and returns the board that completes last. If the calls run out
// first it returns the last completion seen and false.
func LastWinner(calls []int, boards []*Board) (Win, bool) {
	boards = cloneBoards(boards)
	var last Win
	won := make(map[int]bool)
	for _, n := range calls {
		for i, b := range boards {
			if won[i] {
				continue
			}
			b.Mark(n)
			if !b.Won() {
				continue
			}
			won[i] = true
			last = Win{Board: i, Call: n, Score: b.Score(n)}
			if len(won) == len(boards) {
				return last, true
			}
		}
	}
	return last, false
}

func (s solver) bingo() ([]int, []*Board) {
	calls, boards, err := ParseBingo(s.Text())
	aoc.MustDo(err)
	s.Debug("loaded ", len(calls), " numbers and ", len(boards), " boards")
	return calls, boards
}

/*
want=4512

7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
*/
func (s solver) D4p1() any {
	w, ok := FirstWinner(s.bingo())
	if !ok {
		return "no winning board"
	}
	s.Debugf("board %d wins on %d", w.Board, w.Call)
	return w.Score
}

// want=1924
func (s solver) D4p2() any {
	w, ok := LastWinner(s.bingo())
	if !ok {
		return fmt.Sprintf("not every board wins; last recorded score %d", w.Score)
	}
	s.Debugf("board %d wins last on %d", w.Board, w.Call)
	return w.Score
}
