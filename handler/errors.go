package handler

import "errors"

var (
	// ErrUnsupportedChange is returned by NoOp for any fleet change.
	ErrUnsupportedChange = errors.New("handler: change not supported")

	// ErrUnknownHandler is returned by Get for an unregistered name.
	ErrUnknownHandler = errors.New("handler: unknown handler name")

	// ErrAgentNotFound is returned when an index/seed does not name a
	// current agent.
	ErrAgentNotFound = errors.New("handler: agent not found")

	// ErrNoNeighbors is returned when an agent being removed has no
	// adjacent agent to absorb its cells.
	ErrNoNeighbors = errors.New("handler: removed agent has no adjacent agent to receive its cells")
)
