// State types live in elev so that the controller can hand copies of them to the simulator.
package elev

import (
	"errors"
	"sync"

	"elevsim/src/types"
)

var (
	ErrInvalidFloor      = errors.New("invalid floor")
	ErrInvalidFloorCount = errors.New("building needs at least one floor")
	ErrNotPending        = errors.New("floor has no pending call")
	ErrUnreachable       = errors.New("call not served within simulation limit")
)

// State is the mutable part of the car. Pending holds each called floor once.
type State struct {
	Floor   int
	Dir     types.Direction
	Door    types.DoorState
	Pending map[int]bool
}

// Controller owns the car state and serializes every operation on it.
type Controller struct {
	totalFloors int
	mu          sync.Mutex
	state       State
}
