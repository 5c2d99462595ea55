package elev

import (
	"fmt"
	"log/slog"

	"elevsim/src/types"
)

// NewController returns a car parked at floor 0 with doors closed and no calls.
func NewController(totalFloors int) (*Controller, error) {
	if totalFloors < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFloorCount, totalFloors)
	}
	c := &Controller{
		totalFloors: totalFloors,
		state: State{
			Floor:   0,
			Dir:     types.DirIdle,
			Door:    types.DoorClosed,
			Pending: make(map[int]bool),
		},
	}
	slog.Debug("Controller initialized", "floors", totalFloors)
	return c, nil
}

func (c *Controller) TotalFloors() int {
	return c.totalFloors
}

// Advance moves the simulation forward by one tick.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := c.state.Floor
	c.state.step(c.totalFloors)
	if c.state.Floor != before {
		slog.Debug("Car moved", "from", before, "to", c.state.Floor, "dir", c.state.Dir)
	}
	slog.Debug("Tick", "state", c.state)
}

// RegisterCall adds floor to the pending calls. Calls outside the building are rejected
// with ErrInvalidFloor and leave the state untouched.
func (c *Controller) RegisterCall(floor int) error {
	if err := c.checkFloor(floor); err != nil {
		slog.Warn("Rejected call", "floor", floor, "floors", c.totalFloors)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.addOrder(floor)
	slog.Debug("Call registered", "floor", floor, "state", c.state)
	return nil
}

// Status returns a snapshot of the car.
func (c *Controller) Status() types.Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return types.Status{
		CurrentFloor: c.state.Floor,
		Direction:    c.state.Dir,
		Doors:        c.state.Door,
		PendingCalls: c.state.sortedOrders(),
	}
}

func (c *Controller) checkFloor(floor int) error {
	if floor < 0 || floor >= c.totalFloors {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidFloor, floor, c.totalFloors-1)
	}
	return nil
}
