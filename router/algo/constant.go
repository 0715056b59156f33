package algo

import "errors"

const (
	// NO_LINE marks a search state that has not boarded any line yet
	// (the start state).
	NO_LINE = -1

	// DEFAULT_MAX_VISITED_STATES bounds frontier growth per search.
	DEFAULT_MAX_VISITED_STATES = 1_000_000
)

var (
	// ErrSearchExhausted: the frontier grew past the configured state bound.
	ErrSearchExhausted = errors.New("search exhausted: visited state bound exceeded")
	// ErrNoEdge: no edge with the requested (from, to, line) exists.
	ErrNoEdge = errors.New("no such edge")
)
