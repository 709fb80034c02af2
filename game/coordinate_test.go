package game_test

import (
	"math"
	"testing"

	"github.com/danilsiv/battleship/game"
)

func TestCoordinate_Neighbors(t *testing.T) {
	c := game.Coord(3, 3)
	seen := game.NewCoordinateSet(8)
	for _, n := range c.Neighbors() {
		dr, dc := n.Row-c.Row, n.Column-c.Column
		if dr < -1 || dr > 1 || dc < -1 || dc > 1 || (dr == 0 && dc == 0) {
			t.Errorf("unexpected neighbor of %s: %s", c, n)
		}
		seen.Add(n)
	}
	if want, have := 8, seen.Len(); want != have {
		t.Errorf("unexpected number of distinct neighbors: want=%d, have=%d", want, have)
	}
}

func TestCoordinateSet(t *testing.T) {
	set := game.NewCoordinateSet(4)
	set.Add(game.Coord(1, 2))
	set.Add(game.Coord(1, 2))
	set.Add(game.Coord(-1, 0))

	if want, have := 2, set.Len(); want != have {
		t.Errorf("unexpected length: want=%d, have=%d", want, have)
	}
	if !set.Has(game.Coord(-1, 0)) {
		t.Error("expected (-1, 0) in set")
	}
	if set.Has(game.Coord(2, 1)) {
		t.Error("unexpected (2, 1) in set")
	}

	count := 0
	set.Each(func(game.Coordinate) bool {
		count++
		return false
	})
	if want, have := 1, count; want != have {
		t.Errorf("Each should stop early: want=%d, have=%d", want, have)
	}
}

func TestCoordinate_NeighborsAtIntEdge(t *testing.T) {
	c := game.Coord(math.MaxInt, math.MinInt)
	neighbors := c.Neighbors()
	if want, have := 3, len(neighbors); want != have {
		t.Fatalf("unexpected number of neighbors: want=%d, have=%d", want, have)
	}
	for _, n := range neighbors {
		if n.Row > c.Row || n.Column < c.Column {
			t.Errorf("neighbor %s of %s wrapped around", n, c)
		}
	}
}

func TestCoordinateSet_ZeroValue(t *testing.T) {
	var set game.CoordinateSet
	if set.Has(game.Coord(0, 0)) {
		t.Error("empty set should not have (0, 0)")
	}
	if want, have := 0, set.Len(); want != have {
		t.Errorf("unexpected length: want=%d, have=%d", want, have)
	}
	set.Each(func(c game.Coordinate) bool {
		t.Errorf("unexpected coordinate in empty set: %s", c)
		return true
	})

	set.Add(game.Coord(0, 0))
	if !set.Has(game.Coord(0, 0)) {
		t.Error("expected (0, 0) in set")
	}
	if want, have := 1, set.Len(); want != have {
		t.Errorf("unexpected length: want=%d, have=%d", want, have)
	}
}
