package elev

import (
	"testing"

	"elevsim/src/types"
)

func TestFormatStatus(t *testing.T) {
	status := types.Status{
		CurrentFloor: 3,
		Direction:    types.DirUp,
		Doors:        types.DoorOpen,
		PendingCalls: []int{1, 8},
	}
	want := "Floor: 3 | Dir: up   | Doors: open   | Calls: [1 8]"
	if got := FormatStatus(status); got != want {
		t.Errorf("FormatStatus() = %q, want %q", got, want)
	}
}
