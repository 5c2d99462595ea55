package types

import "fmt"

type Direction int

const (
	DirIdle Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirIdle:
		return "idle"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "up":
		*d = DirUp
	case "down":
		*d = DirDown
	case "idle":
		*d = DirIdle
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
)

func (s DoorState) String() string {
	if s == DoorOpen {
		return "open"
	}
	return "closed"
}

func (s DoorState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *DoorState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "open":
		*s = DoorOpen
	case "closed":
		*s = DoorClosed
	default:
		return fmt.Errorf("unknown door state %q", text)
	}
	return nil
}

// Status is a point-in-time snapshot of the car. PendingCalls is ascending and never nil.
type Status struct {
	CurrentFloor int       `json:"current_floor"`
	Direction    Direction `json:"direction"`
	Doors        DoorState `json:"doors"`
	PendingCalls []int     `json:"pending_calls"`
}

// Call is the payload of a call request.
type Call struct {
	Floor *int `json:"floor"`
}
