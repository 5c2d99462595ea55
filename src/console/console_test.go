package console

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"elevsim/src/elev"

	"github.com/eiannone/keyboard"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleKey(t *testing.T) {
	controller, err := elev.NewController(4)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer

	tests := []struct {
		name string
		char rune
		key  keyboard.Key
		want action
	}{
		{"call floor", '2', 0, actionCall},
		{"floor outside building", '7', 0, actionNone},
		{"status", 's', 0, actionStatus},
		{"unknown key", 'x', 0, actionNone},
		{"quit", 'q', 0, actionQuit},
		{"ctrl-c", 0, keyboard.KeyCtrlC, actionQuit},
	}
	for _, tt := range tests {
		if got := handleKey(controller, &out, tt.char, tt.key); got != tt.want {
			t.Errorf("%s: handleKey() = %d, want %d", tt.name, got, tt.want)
		}
	}

	if calls := controller.Status().PendingCalls; len(calls) != 1 || calls[0] != 2 {
		t.Errorf("pending calls = %v, want [2]", calls)
	}
	if !strings.Contains(out.String(), "Calls: [2]") {
		t.Errorf("status line missing from output: %q", out.String())
	}
}
