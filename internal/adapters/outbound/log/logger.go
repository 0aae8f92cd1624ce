package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// NewLogger creates a zerolog logger writing to out at the given level.
// Pretty output uses the zerolog console writer without colors.
func NewLogger(out io.Writer, level string, pretty bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "weatherbot").
		Logger(), nil
}

// InitLogger is the initializer for the logger dependencies.
// Logs go to a file so they never interleave with the interactive shell output.
type InitLogger struct {
	Level  string `config:"LOG_LEVEL" default:"info"`
	File   string `config:"LOG_FILE" default:"weatherbot.log"`
	Format string `config:"LOG_FORMAT" default:"console"`
	file   *os.File
}

// Initialize registers the zerolog logger and a *log.Logger bridged to it in the dependency container.
func (il *InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	var out io.Writer = io.Discard
	if il.File != "" && il.File != "-" {
		f, err := os.OpenFile(il.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return ctx, fmt.Errorf("failed to open log file: %w", err)
		}
		il.file = f
		out = f
	}

	zl, err := NewLogger(out, il.Level, il.Format == "console")
	if err != nil {
		return ctx, err
	}

	depend.Register(zl)
	depend.Register(log.New(zl, "", 0))
	return ctx, nil
}

// Close closes the log file.
func (il *InitLogger) Close() {
	if il.file != nil {
		_ = il.file.Close()
	}
}
