package entities

import "errors"

// Conflict outcomes raised by the repositories' atomic guards. These are
// expected business results, surfaced to callers as ordinary return values.
var (
	// ErrInsufficientCredits means a debit would take the balance below zero.
	// The balance is left untouched.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrSlotsFull means every slot on the listing is already sold.
	ErrSlotsFull = errors.New("lead slots full")

	// ErrAlreadyPurchased means the professional already holds a slot on the
	// listing. Retrying cannot succeed.
	ErrAlreadyPurchased = errors.New("lead already purchased")

	// ErrEstimateAlreadyPaid means the one-way paid transition already happened.
	ErrEstimateAlreadyPaid = errors.New("estimate already paid")
)

// ErrInvariantViolation marks states the transaction protocol must make
// impossible (negative balance, occupant overflow). Seeing it is a bug, not a
// business outcome.
var ErrInvariantViolation = errors.New("marketplace invariant violation")
