package elev

import (
	"fmt"

	"elevsim/src/config"
	"elevsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// TicksUntilServed simulates a copy of the car and returns how many ticks pass before the door
// opens at floor and its call is cleared. The live state is not touched.
func (c *Controller) TicksUntilServed(floor int) (int, error) {
	if err := c.checkFloor(floor); err != nil {
		return 0, err
	}

	simState := new(State)
	c.mu.Lock()
	pending := c.state.Pending[floor]
	err := deepcopy.Copy(simState, &c.state)
	c.mu.Unlock()
	if err != nil {
		return 0, fmt.Errorf("copy state: %w", err)
	}
	if !pending {
		return 0, fmt.Errorf("%w: %d", ErrNotPending, floor)
	}

	for ticks := 1; ticks <= config.MaxSimTicks; ticks++ {
		simState.step(c.totalFloors)
		if simState.Door == types.DoorOpen && simState.Floor == floor && !simState.Pending[floor] {
			return ticks, nil
		}
	}
	return 0, fmt.Errorf("%w: floor %d", ErrUnreachable, floor)
}
