package game

import (
	"fmt"
	"sort"
)

// FleetRules maps a ship size (number of decks) to the number of ships of
// that size a fleet must have.
type FleetRules map[int]int

// DefaultFleetRules returns the classic fleet: four 1-deck ships, three
// 2-deck ships, two 3-deck ships and one 4-deck ship.
func DefaultFleetRules() FleetRules {
	return FleetRules{
		1: 4,
		2: 3,
		3: 2,
		4: 1,
	}
}

// sizes returns the ship sizes known to the rules in ascending order.
func (r FleetRules) sizes() []int {
	sizes := make([]int, 0, len(r))
	for size := range r {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// maxSize returns the largest ship size the rules know about.
func (r FleetRules) maxSize() int {
	largest := 0
	for size := range r {
		largest = max(largest, size)
	}
	return largest
}

// Fleet is the set of ships on a board.
type Fleet []*Ship

// Validate runs both the count check and the spacing check.
func (f Fleet) Validate(rules FleetRules) error {
	if err := f.CheckCounts(rules); err != nil {
		return err
	}
	return f.CheckSpacing()
}

// CheckCounts checks the number of ships of every size against the rules.
func (f Fleet) CheckCounts(rules FleetRules) error {
	counts := make(map[int]int, len(rules))
	for _, ship := range f {
		if _, ok := rules[ship.Size()]; !ok {
			return fmt.Errorf("%w: ship %s has %d decks", ErrShipTooLarge, ship, ship.Size())
		}
		counts[ship.Size()]++
	}

	for _, size := range rules.sizes() {
		if want, have := rules[size], counts[size]; want != have {
			return fmt.Errorf("%w: there should be %d ships with %d decks, got %d",
				ErrFleetCountMismatch, want, size, have)
		}
	}
	return nil
}

// CheckSpacing checks that no two ships overlap or touch each other,
// diagonally included.
func (f Fleet) CheckSpacing() error {
	decks := 0
	for _, ship := range f {
		decks += ship.Size()
	}

	shipArea := NewCoordinateSet(uint32(decks))
	for _, ship := range f {
		for _, d := range ship.decks {
			if shipArea.Has(d.coord) {
				return fmt.Errorf("%w: ships overlap at %s", ErrShipsTooClose, d.coord)
			}
			shipArea.Add(d.coord)
		}
	}

	// Free area is every cell around a ship that the ship itself does not
	// occupy. Another ship's deck in it means the two ships touch.
	freeArea := NewCoordinateSet(uint32(decks * 8))
	for _, ship := range f {
		own := ship.Coordinates()
		for _, d := range ship.decks {
			for _, n := range d.coord.Neighbors() {
				if !own.Has(n) {
					freeArea.Add(n)
				}
			}
		}
	}

	for _, ship := range f {
		for _, d := range ship.decks {
			if freeArea.Has(d.coord) {
				return fmt.Errorf("%w: ship %s touches another ship at %s",
					ErrShipsTooClose, ship, d.coord)
			}
		}
	}
	return nil
}
