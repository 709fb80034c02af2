package game

import (
	"github.com/google/uuid"
	"github.com/sasha-s/go-deadlock"
)

// LockedBoard serializes access to a Board so it can be shared between
// goroutines.
type LockedBoard struct {
	board *Board
	lock  *deadlock.Mutex
}

// NewLockedBoard wraps b. The caller must not use b directly afterwards,
// nor any *Ship obtained from b.Ships or b.ShipAt: Ship.Fire on such a
// pointer bypasses the lock. Use Sunk to query a ship instead.
func NewLockedBoard(b *Board) *LockedBoard {
	return &LockedBoard{
		board: b,
		lock:  &deadlock.Mutex{},
	}
}

// ID returns the identifier of the wrapped board.
func (lb *LockedBoard) ID() uuid.UUID {
	return lb.board.ID()
}

// Fire shoots at c on the wrapped board.
func (lb *LockedBoard) Fire(c Coordinate) Outcome {
	lb.lock.Lock()
	defer lb.lock.Unlock()
	return lb.board.Fire(c)
}

// AllSunk reports whether every ship on the wrapped board is sunk.
func (lb *LockedBoard) AllSunk() bool {
	lb.lock.Lock()
	defer lb.lock.Unlock()
	return lb.board.AllSunk()
}

// Sunk reports whether the ship occupying c is sunk. ok is false if no ship
// occupies c.
func (lb *LockedBoard) Sunk(c Coordinate) (sunk, ok bool) {
	lb.lock.Lock()
	defer lb.lock.Unlock()
	ship, ok := lb.board.ShipAt(c)
	if !ok {
		return false, false
	}
	return ship.Sunk(), true
}
