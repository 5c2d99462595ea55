// Contains the per-tick state machine for the car.
package elev

import (
	"log/slog"

	"elevsim/src/types"
)

// step applies one tick to s. Exactly one of the branches below fires.
func (s *State) step(totalFloors int) {
	topFloor := totalFloors - 1

	if !s.hasOrders() {
		s.Dir = types.DirIdle
		s.Door = types.DoorClosed
		return
	}

	if s.Door == types.DoorOpen {
		s.Door = types.DoorClosed
		return
	}

	target := s.highestOrder()
	if s.Dir == types.DirDown {
		target = s.lowestOrder()
	}

	if s.Floor == target {
		s.Door = types.DoorOpen
		s.clearOrder(target)
		if !s.hasOrders() {
			s.Dir = types.DirIdle
		}
		return
	}

	// The car keeps going to the end of the shaft even with nothing left
	// in that direction, and only turns around at the terminal floors.
	switch s.Dir {
	case types.DirUp:
		if s.Floor < topFloor {
			s.Floor++
		}
		if s.Floor >= topFloor {
			s.Dir = types.DirDown
		}
	case types.DirDown:
		if s.Floor > 0 {
			s.Floor--
		}
		if s.Floor <= 0 {
			s.Dir = types.DirUp
		}
	}
}

// addOrder registers floor and picks a direction if the car is idle.
func (s *State) addOrder(floor int) {
	s.Pending[floor] = true
	if s.Dir == types.DirIdle {
		if floor > s.Floor {
			s.Dir = types.DirUp
		} else {
			s.Dir = types.DirDown
		}
	}
}

// LogValue lets a State be passed directly as a slog attribute.
func (s State) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("floor", s.Floor),
		slog.String("dir", s.Dir.String()),
		slog.String("door", s.Door.String()),
		slog.Any("pending", s.sortedOrders()),
	)
}
