package elev

import (
	"maps"
	"slices"
)

func (s *State) hasOrders() bool {
	return len(s.Pending) > 0
}

func (s *State) lowestOrder() int {
	return slices.Min(slices.Collect(maps.Keys(s.Pending)))
}

func (s *State) highestOrder() int {
	return slices.Max(slices.Collect(maps.Keys(s.Pending)))
}

// sortedOrders returns the pending floors ascending. The result is never nil.
func (s *State) sortedOrders() []int {
	orders := slices.Sorted(maps.Keys(s.Pending))
	if orders == nil {
		orders = []int{}
	}
	return orders
}

func (s *State) clearOrder(floor int) {
	delete(s.Pending, floor)
}
