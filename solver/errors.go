package solver

import (
	"github.com/pkg/errors"
)

// Boundary validation errors. Once inputs pass validation the
// computation is pure arithmetic over finite enumerations and
// cannot fail.
var (
	// ErrInvalidPot is returned when the pot is not a positive finite value.
	ErrInvalidPot = errors.New("pot must be positive")
	// ErrInvalidHistory is returned when the history contains a duplicate
	// card, or leaves too few cards in the deck to resolve every
	// remaining decision.
	ErrInvalidHistory = errors.New("invalid card history")
	// ErrInsufficientHistory is returned when the history is shorter than
	// the depth the decision's scoring rule reads.
	ErrInsufficientHistory = errors.New("insufficient history for decision")
	// ErrUnknownChoice is returned when the choice is not available at
	// the decision.
	ErrUnknownChoice = errors.New("unknown choice for decision")
)
