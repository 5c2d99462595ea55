package elev

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"elevsim/src/types"
)

// InitLogger installs the default slog logger. With toFile set, output is also written to
// <instanceID>.log; the returned closer releases that file.
func InitLogger(instanceID string, level slog.Level, toFile bool) (io.Closer, error) {
	var out io.Writer = os.Stdout
	var closer io.Closer = io.NopCloser(nil)
	if toFile {
		logFile, err := os.OpenFile(fmt.Sprintf("%s.log", instanceID), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, logFile)
		closer = logFile
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	slog.SetDefault(slog.New(handler).With("id", instanceID))
	return closer, nil
}

// FormatStatus renders a status as a single console line.
func FormatStatus(status types.Status) string {
	calls := make([]string, len(status.PendingCalls))
	for i, floor := range status.PendingCalls {
		calls[i] = fmt.Sprint(floor)
	}
	return fmt.Sprintf("Floor: %d | Dir: %-4s | Doors: %-6s | Calls: [%s]",
		status.CurrentFloor, status.Direction, status.Doors, strings.Join(calls, " "))
}
