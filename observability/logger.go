package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/adrianflutur/registry"
)

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}

// NewLogger returns a text logger for registry records. Registry records
// are emitted at debug level, so anything above that silences them.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// EnrichLogger adds the registration key to logger.
func EnrichLogger(logger *slog.Logger, key registry.Key) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("key", key.String()))
}
