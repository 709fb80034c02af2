package game

import (
	"fmt"
	"math"
)

type ShipDirection int

const (
	ShipDirectionToRight ShipDirection = iota
	ShipDirectionToDown
)

func (d ShipDirection) String() string {
	switch d {
	case ShipDirectionToRight:
		return "Right"
	case ShipDirectionToDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// ShipSpec is the pair of endpoints a ship is built from.
type ShipSpec struct {
	Start Coordinate
	End   Coordinate
}

// NewShipSpec creates a ShipSpec of the given size starting at origin.
// To the right grows the column, down grows the row.
func NewShipSpec(origin Coordinate, size int, dir ShipDirection) (spec ShipSpec, err error) {
	if size < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidShipSize, size)
		return
	}
	if size > BoardSize {
		err = fmt.Errorf("%w: %d decks is longer than %d", ErrShipTooLarge, size, BoardSize)
		return
	}

	end := origin
	switch dir {
	case ShipDirectionToRight:
		if origin.Column > math.MaxInt-(size-1) {
			err = fmt.Errorf("%w: ship at %s runs past the last column", ErrInvalidShipSize, origin)
			return
		}
		end.Column += size - 1
	case ShipDirectionToDown:
		if origin.Row > math.MaxInt-(size-1) {
			err = fmt.Errorf("%w: ship at %s runs past the last row", ErrInvalidShipSize, origin)
			return
		}
		end.Row += size - 1
	default:
		err = fmt.Errorf("invalid ship direction: %v", dir)
		return
	}

	spec = ShipSpec{Start: origin, End: end}
	return
}

func (s ShipSpec) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Deck is a single cell occupied by a ship.
type Deck struct {
	coord Coordinate
	alive bool
}

// Coordinate returns the cell of the deck.
func (d *Deck) Coordinate() Coordinate {
	return d.coord
}

// Alive reports whether the deck has not been hit yet.
func (d *Deck) Alive() bool {
	return d.alive
}

// Ship is a straight run of decks between two endpoints.
type Ship struct {
	start Coordinate
	end   Coordinate
	decks []*Deck
	sunk  bool
}

// NewShip creates a ship covering every cell from start to end inclusive.
// The endpoints must share a row or a column and lie at most BoardSize
// cells apart. Decks are ordered along the varying axis in ascending order,
// whichever way round the endpoints are.
func NewShip(start, end Coordinate) (ship *Ship, err error) {
	size, err := ShipSpec{Start: start, End: end}.Size()
	if err != nil {
		return
	}

	decks := make([]*Deck, 0, size)
	if start.Row == end.Row {
		from := min(start.Column, end.Column)
		for i := 0; i < size; i++ {
			decks = append(decks, &Deck{coord: Coord(start.Row, from+i), alive: true})
		}
	} else {
		from := min(start.Row, end.Row)
		for i := 0; i < size; i++ {
			decks = append(decks, &Deck{coord: Coord(from+i, start.Column), alive: true})
		}
	}

	ship = &Ship{
		start: start,
		end:   end,
		decks: decks,
	}
	return
}

// Size returns the number of decks a ship built from s would have.
func (s ShipSpec) Size() (int, error) {
	var d uint
	switch {
	case s.Start.Row == s.End.Row:
		d = distance(s.Start.Column, s.End.Column)
	case s.Start.Column == s.End.Column:
		d = distance(s.Start.Row, s.End.Row)
	default:
		return 0, fmt.Errorf("%w: start=%s, end=%s", ErrUnalignedShip, s.Start, s.End)
	}
	if d >= BoardSize {
		return 0, fmt.Errorf("%w: ship %s is longer than %d decks", ErrShipTooLarge, s, BoardSize)
	}
	return int(d) + 1, nil
}

// distance returns |a-b|. It is computed in uint so the full int range
// fits.
func distance(a, b int) uint {
	if a > b {
		a, b = b, a
	}
	return uint(b) - uint(a)
}

// Start returns the first endpoint the ship was built from.
func (s *Ship) Start() Coordinate {
	return s.start
}

// End returns the second endpoint the ship was built from.
func (s *Ship) End() Coordinate {
	return s.end
}

// Size returns the number of decks.
func (s *Ship) Size() int {
	return len(s.decks)
}

// Decks returns the decks of the ship in order.
func (s *Ship) Decks() []*Deck {
	decks := make([]*Deck, len(s.decks))
	copy(decks, s.decks)
	return decks
}

// Orientation returns the direction the ship extends in. Single deck ships
// are reported as ShipDirectionToRight.
func (s *Ship) Orientation() ShipDirection {
	if s.start.Row == s.end.Row {
		return ShipDirectionToRight
	}
	return ShipDirectionToDown
}

// Coordinates returns the set of cells the ship occupies.
func (s *Ship) Coordinates() *CoordinateSet {
	set := NewCoordinateSet(uint32(len(s.decks)))
	for _, d := range s.decks {
		set.Add(d.coord)
	}
	return set
}

// Sunk reports whether every deck of the ship has been hit.
func (s *Ship) Sunk() bool {
	return s.sunk
}

// Locate returns the deck at the given cell, if the ship has one there.
func (s *Ship) Locate(row, column int) (*Deck, bool) {
	for _, d := range s.decks {
		if d.coord.Row == row && d.coord.Column == column {
			return d, true
		}
	}
	return nil, false
}

// Fire hits the deck at the given cell and reports whether the ship is
// sunk afterwards. Firing at an already dead deck gives the same outcome
// again.
//
// The ship must have a deck at the cell. Fire panics otherwise.
func (s *Ship) Fire(row, column int) Outcome {
	deck, ok := s.Locate(row, column)
	if !ok {
		panic(fmt.Errorf("ship %s has no deck at %s", s, Coord(row, column)))
	}
	deck.alive = false

	for _, d := range s.decks {
		if d.alive {
			return OutcomeHit
		}
	}
	s.sunk = true
	return OutcomeSunk
}

func (s *Ship) String() string {
	return fmt.Sprintf("%s-%s", s.start, s.end)
}
