package game

import (
	"fmt"
	"log/slog"

	"github.com/dolthub/swiss"
	"github.com/google/uuid"
)

// Board holds a validated fleet and resolves shots against it.
//
// A Board is not safe for concurrent use. Wrap it with NewLockedBoard
// if shots may come from more than one goroutine.
type Board struct {
	id     uuid.UUID
	ships  Fleet
	field  *swiss.Map[Coordinate, *Ship]
	logger *slog.Logger
}

// NewBoard builds the ships described by specs, validates them as a fleet
// and returns the board. No board is returned if any ship or the fleet as
// a whole is invalid.
func NewBoard(specs []ShipSpec, opts ...Option) (board *Board, err error) {
	o := newOptions(opts)
	id := uuid.New()
	logger := o.logger.With(slog.String("board", id.String()))

	ships := make(Fleet, 0, len(specs))
	decks := 0
	maxSize := o.rules.maxSize()
	for _, spec := range specs {
		// Reject oversized ships before any deck is allocated.
		size, err := spec.Size()
		if err == nil && size > maxSize {
			err = fmt.Errorf("%w: ship %s has %d decks", ErrShipTooLarge, spec, size)
		}
		if err != nil {
			logger.Warn("invalid ship", slog.String("spec", spec.String()), slog.Any("error", err))
			return nil, err
		}

		ship, err := NewShip(spec.Start, spec.End)
		if err != nil {
			logger.Warn("invalid ship", slog.String("spec", spec.String()), slog.Any("error", err))
			return nil, err
		}
		ships = append(ships, ship)
		decks += ship.Size()
	}

	if err = ships.Validate(o.rules); err != nil {
		logger.Warn("invalid fleet", slog.Any("error", err))
		return nil, err
	}

	field := swiss.NewMap[Coordinate, *Ship](uint32(decks))
	for _, ship := range ships {
		for _, d := range ship.decks {
			field.Put(d.coord, ship)
		}
	}

	logger.Debug("board created", slog.Int("ships", len(ships)), slog.Int("decks", decks))
	board = &Board{
		id:     id,
		ships:  ships,
		field:  field,
		logger: logger,
	}
	return
}

// ID returns the unique identifier of the board.
func (b *Board) ID() uuid.UUID {
	return b.id
}

// Ships returns the fleet on the board. The ships are the board's own:
// firing at them directly changes the board.
func (b *Board) Ships() Fleet {
	ships := make(Fleet, len(b.ships))
	copy(ships, b.ships)
	return ships
}

// ShipAt returns the ship occupying c, if any. See Ships.
func (b *Board) ShipAt(c Coordinate) (*Ship, bool) {
	return b.field.Get(c)
}

// Fire shoots at c. It returns OutcomeMiss if no ship occupies c, and the
// outcome of the owning ship's Fire otherwise.
func (b *Board) Fire(c Coordinate) Outcome {
	outcome := OutcomeMiss
	if ship, ok := b.field.Get(c); ok {
		outcome = ship.Fire(c.Row, c.Column)
	}
	b.logger.Debug("shot resolved", slog.String("at", c.String()), slog.String("outcome", outcome.String()))
	return outcome
}

// AllSunk reports whether every ship on the board is sunk.
func (b *Board) AllSunk() bool {
	for _, ship := range b.ships {
		if !ship.Sunk() {
			return false
		}
	}
	return true
}
