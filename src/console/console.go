// Package console drives the elevator from single key presses on the terminal.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"elevsim/src/elev"
	"elevsim/src/types"

	"github.com/eiannone/keyboard"
)

type Elevator interface {
	RegisterCall(floor int) error
	Status() types.Status
}

type action int

const (
	actionNone action = iota
	actionCall
	actionStatus
	actionQuit
)

// Run reads keys until q, Ctrl-C or ctx cancellation. Digits call that floor, s prints the status.
func Run(ctx context.Context, elevator Elevator, out io.Writer) error {
	keyEvents, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	fmt.Fprintln(out, "Keys: 0-9 call floor, s status, q quit")
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-keyEvents:
			if event.Err != nil {
				return fmt.Errorf("read key: %w", event.Err)
			}
			if handleKey(elevator, out, event.Rune, event.Key) == actionQuit {
				return nil
			}
		}
	}
}

func handleKey(elevator Elevator, out io.Writer, char rune, key keyboard.Key) action {
	switch {
	case key == keyboard.KeyCtrlC || char == 'q' || char == 'Q':
		return actionQuit
	case char == 's' || char == 'S':
		fmt.Fprintln(out, elev.FormatStatus(elevator.Status()))
		return actionStatus
	case char >= '0' && char <= '9':
		floor := int(char - '0')
		if err := elevator.RegisterCall(floor); err != nil {
			slog.Warn("Console call ignored", "floor", floor, "err", err)
			return actionNone
		}
		fmt.Fprintf(out, "Call registered for floor %d\n", floor)
		return actionCall
	}
	return actionNone
}
