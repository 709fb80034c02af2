package game

import (
	"fmt"
	"math"

	"github.com/dolthub/swiss"
)

const (
	// BoardSize is the side of the classic grid. No ship may be longer.
	BoardSize = 10
)

// Coordinate is a (row, column) cell on the board.
type Coordinate struct {
	Row    int
	Column int
}

// Coord is a shorthand for Coordinate{Row: row, Column: column}.
func Coord(row, column int) Coordinate {
	return Coordinate{Row: row, Column: column}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Column)
}

// Neighbors returns the cells around c, diagonals included. Cells past
// the int range are left out, so c has fewer than eight neighbors only at
// math.MinInt or math.MaxInt.
func (c Coordinate) Neighbors() []Coordinate {
	neighbors := make([]Coordinate, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		if !canStep(c.Row, dr) {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if (dr == 0 && dc == 0) || !canStep(c.Column, dc) {
				continue
			}
			neighbors = append(neighbors, Coord(c.Row+dr, c.Column+dc))
		}
	}
	return neighbors
}

func canStep(v, d int) bool {
	return !(d < 0 && v == math.MinInt) && !(d > 0 && v == math.MaxInt)
}

// CoordinateSet is a hashed set of coordinates. The zero value is an
// empty set ready to use.
type CoordinateSet struct {
	m *swiss.Map[Coordinate, struct{}]
}

// NewCoordinateSet creates an empty set sized for about sizeHint entries.
func NewCoordinateSet(sizeHint uint32) *CoordinateSet {
	return &CoordinateSet{
		m: swiss.NewMap[Coordinate, struct{}](sizeHint),
	}
}

// Add puts c into the set.
func (s *CoordinateSet) Add(c Coordinate) {
	if s.m == nil {
		s.m = swiss.NewMap[Coordinate, struct{}](8)
	}
	s.m.Put(c, struct{}{})
}

// Has reports whether c is in the set.
func (s *CoordinateSet) Has(c Coordinate) bool {
	return s.m != nil && s.m.Has(c)
}

// Len returns the number of coordinates in the set.
func (s *CoordinateSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Count()
}

// Each calls fn for every coordinate in the set, in no particular order,
// until fn returns false.
func (s *CoordinateSet) Each(fn func(c Coordinate) bool) {
	if s.m == nil {
		return
	}
	s.m.Iter(func(c Coordinate, _ struct{}) (stop bool) {
		return !fn(c)
	})
}
