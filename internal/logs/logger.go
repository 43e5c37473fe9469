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

// Options selects where records go. Writer receives human-readable text;
// File, when set, is opened for append and receives JSON.
type Options struct {
	Writer io.Writer
	Level  string
	File   string
}

// ParseLevel maps debug, info, warn and error to their slog levels.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return 0, fmt.Errorf("logs: unknown level %q", name)
	}
	return level, nil
}

// New builds a logger fanning out to every configured sink. The returned
// close function releases the log file, if any.
func New(opts Options) (Logger, func() error, error) {
	level := new(slog.LevelVar)
	if opts.Level != "" {
		l, err := ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, err
		}
		level.Set(l)
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		}),
	}

	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logs: open %s: %w", opts.File, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
		closeFn = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
