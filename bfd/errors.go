package bfd

import "errors"

// Sentinel errors returned by the bfd package.
var (
	// ErrInvalidParameter indicates a caller passed an out-of-range
	// bound (beta < 1, rounds < 0, a source vertex outside [0,|V|)).
	ErrInvalidParameter = errors.New("bfd: invalid parameter")

	// ErrCancelled indicates a BFD loop observed ctx.Done() between
	// relaxation rounds and exited before mutating any caller-visible
	// state. The other subpackages define no cancellation sentinel of
	// their own: they propagate this one, or ctx.Err() from their own
	// checks, and the root fineman package maps either onto its own
	// ErrCancelled.
	ErrCancelled = errors.New("bfd: cancelled")
)
