package game

import "errors"

var (
	// ErrUnalignedShip is returned when the endpoints of a ship share
	// neither a row nor a column.
	ErrUnalignedShip = errors.New("ship endpoints are not aligned")

	// ErrInvalidShipSize is returned when a ship is placed with less than
	// one deck.
	ErrInvalidShipSize = errors.New("invalid ship size")

	// ErrShipTooLarge is returned when a ship has a deck count the fleet
	// rules do not know about.
	ErrShipTooLarge = errors.New("the ship is too big")

	// ErrFleetCountMismatch is returned when the number of ships of some
	// size differs from the fleet rules.
	ErrFleetCountMismatch = errors.New("fleet count mismatch")

	// ErrShipsTooClose is returned when two ships overlap or touch,
	// diagonally included.
	ErrShipsTooClose = errors.New("the ships are too close")
)
