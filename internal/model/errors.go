package model

import "errors"

// Common errors used across the application
var (
	// Match errors
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotInSetup     = errors.New("match is not in setup")
	ErrNotInBattle    = errors.New("match is not in battle")
	ErrMatchOver      = errors.New("match is already over")
	ErrMatchAbandoned = errors.New("match has been abandoned")

	// Placement errors
	ErrPlacementOutOfBounds = errors.New("placement is out of bounds")
	ErrPlacementOverlap     = errors.New("placement overlaps another ship")
	ErrRosterExhausted      = errors.New("all ships have been placed")
	ErrInvalidOrientation   = errors.New("invalid orientation")

	// Attack errors
	ErrCoordinateOutOfBounds = errors.New("coordinate is out of bounds")
)

// IsPlacementError reports whether err is a rejected ship placement
func IsPlacementError(err error) bool {
	return errors.Is(err, ErrPlacementOutOfBounds) || errors.Is(err, ErrPlacementOverlap)
}
