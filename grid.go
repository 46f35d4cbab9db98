package aoc

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// GridOf builds a grid from rows, which must all have the same length.
func GridOf[T any](rows [][]T) (Grid[T], error) {
	g := make(Grid[T], len(rows))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d cells; want %d", y, len(row), len(rows[0]))
		}
		g[y] = append([]T(nil), row...)
	}
	return g, nil
}

func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a hash of the grid's contents. Grids with equal cells have
// equal hashes.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell in row-major order. f may modify the cell.
func (g Grid[T]) ForEach(f func(p Pt, v *T)) {
	for y, row := range g {
		for x := range row {
			f(Pt{x, y}, &row[x])
		}
	}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ParseDirection returns the direction named by its initial: U, R, D or L.
func ParseDirection(b byte) (Direction, bool) {
	switch b {
	case 'U':
		return Up, true
	case 'R':
		return Right, true
	case 'D':
		return Down, true
	case 'L':
		return Left, true
	}
	return 0, false
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

func (s Segment) String() string {
	return fmt.Sprintf("%d,%d -> %d,%d", s.A.X, s.A.Y, s.B.X, s.B.Y)
}

// Orthogonal reports whether s is horizontal or vertical.
func (s Segment) Orthogonal() bool {
	return s.A.X == s.B.X || s.A.Y == s.B.Y
}

// Points returns every lattice point on s from A to B inclusive. s must be
// horizontal, vertical or at 45°; other segments are not walked correctly.
func (s Segment) Points() []Pt {
	steps := max(AbsDiff(s.A.X, s.B.X), AbsDiff(s.A.Y, s.B.Y))
	pts := make([]Pt, 0, steps+1)
	p := s.A
	for i := 0; i <= steps; i++ {
		pts = append(pts, p)
		p = p.Toward(s.B)
	}
	return pts
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}
