// Package logging builds the stderr logger used by mkempty: slog records rendered by tint,
// colorized only when the destination is a terminal.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Level is a structured log level. It satisfies slog.Leveler.
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// ParseLevel converts a level name into a Level. A blank value means info;
// an unknown name is an error so typos in flags or MKEMPTY_LOG_LEVEL surface.
func ParseLevel(value string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return LevelInfo, nil
	}
	level, ok := levelNames[name]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", value)
	}
	return level, nil
}

// Level implements slog.Leveler.
func (l Level) Level() slog.Level {
	return slog.Level(l)
}

func (l Level) String() string {
	return strings.ToLower(slog.Level(l).String())
}

// New returns a logger writing tint-formatted records at or above level to w.
// A nil w falls back to stderr.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
