// Package gameerrors holds the domain-level error kinds shared by the
// hexgrid, flag, state, king, and protocol packages.
package gameerrors

import (
	"errors"
	"fmt"
)

// ErrConflictDiffOutOfBound is returned internally by hexgrid.Generate
// when a candidate map fails the requested inequality bucket. Callers
// never see it escape Generate; it triggers a regeneration attempt.
var ErrConflictDiffOutOfBound = errors.New("conflict inequality out of requested bound")

// PosOutOfBoundError reports an operation addressed outside the grid.
type PosOutOfBoundError struct {
	X, Y int
}

func (e *PosOutOfBoundError) Error() string {
	return fmt.Sprintf("position (%d,%d) out of bound", e.X, e.Y)
}

// NotOwnerError reports a build/degrade attempted on a tile the actor
// doesn't own.
type NotOwnerError struct {
	Operator int
	Owner    int
	X, Y     int
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("player %d is not owner (%d) of tile (%d,%d)", e.Operator, e.Owner, e.X, e.Y)
}

// TileNotHabitableError reports an operation that requires a habitable
// tile (Mountain/Mine/Void don't qualify).
type TileNotHabitableError struct {
	X, Y int
}

func (e *TileNotHabitableError) Error() string {
	return fmt.Sprintf("tile (%d,%d) is not habitable", e.X, e.Y)
}

// ErrUpgradeTopLevelBuilding is returned when build is called on an
// existing Fortress.
var ErrUpgradeTopLevelBuilding = errors.New("cannot upgrade a fortress any further")

// ErrDegradeGrassland is returned when degrade is called below
// Grassland.
var ErrDegradeGrassland = errors.New("cannot degrade grassland any further")

// InsufficientGoldError reports a failed affordability check.
type InsufficientGoldError struct {
	Required uint64
	Owning   uint64
}

func (e *InsufficientGoldError) Error() string {
	return fmt.Sprintf("insufficient gold: required %d, owning %d", e.Required, e.Owning)
}

// ErrPlayerNotFound is returned by lookups keyed on a player id that
// isn't present in the current game.
var ErrPlayerNotFound = errors.New("player not found")

// DeprecatedMsgError is logged by the client when an inbound S2C
// frame carries a time not newer than the last one it applied.
type DeprecatedMsgError struct {
	Time uint64
}

func (e *DeprecatedMsgError) Error() string {
	return fmt.Sprintf("deprecated message for time %d", e.Time)
}

// ErrShortRead is returned by the protocol codec when a buffer is
// smaller than the declared frame size.
var ErrShortRead = errors.New("short read: buffer smaller than declared frame size")

// ErrUnknownC2SMsg is returned by the server when a decoded C2S frame
// carries a message id the current protocol doesn't define.
var ErrUnknownC2SMsg = errors.New("unknown client message id")
