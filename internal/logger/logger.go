package logger

import (
	"io"
	"log/slog"

	"github.com/jwebster45206/character-sim/internal/config"
	"github.com/jwebster45206/character-sim/pkg/character"
)

// Setup configures the global slog logger based on environment.
// Output goes to w rather than stdout, which belongs to the console.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// WithCharacter adds the character's identity to logger context
func WithCharacter(logger *slog.Logger, c *character.Character) *slog.Logger {
	if c == nil {
		return logger
	}
	return logger.With(
		"character_id", c.ID(),
		"character", c.Name(),
		"archetype", c.Archetype().Key,
	)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
