package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

type Logger = *slog.Logger

// ParseLevel accepts debug, info, warn and error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("logs: unknown level %q", s)
	}
	return level, nil
}

// New returns a logger writing text records to w. When jsonPath is not
// empty, records are also appended to that file as JSON lines. The returned
// closer releases the file.
func New(w io.Writer, level slog.Level, jsonPath string) (Logger, io.Closer, error) {
	leveler := new(slog.LevelVar)
	leveler.Set(level)

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: leveler,
		}),
	}

	var closer io.Closer = nopCloser{}
	if jsonPath != "" {
		f, err := os.OpenFile(jsonPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: leveler,
		}))
		closer = f
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
