package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Visit errors
	ErrVisitNotFound = errors.New("visit not found")
	ErrInvalidDrink  = errors.New("unknown drink type")
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
	ErrMissingCafe   = errors.New("visit must name a cafe")
)
