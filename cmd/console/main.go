package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/character-sim/internal/config"
	"github.com/jwebster45206/character-sim/internal/logger"
	"github.com/jwebster45206/character-sim/pkg/character"
	"github.com/jwebster45206/character-sim/pkg/command"
)

func main() {
	cfg := config.Load()

	logOut, closeLog, err := openLogOutput(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log := logger.Setup(cfg, logOut)

	var opts []character.Option
	if cfg.Seed != 0 {
		opts = append(opts, character.WithRoller(character.NewSeededRoller(cfg.Seed)))
	}

	in := bufio.NewReader(os.Stdin)
	c, err := createCharacter(in, os.Stdout, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create character: %v\n", err)
		os.Exit(1)
	}
	log = logger.WithCharacter(log, c)
	log.Info("character created", "mode", cfg.Mode, "seeded", cfg.Seed != 0)

	session := command.NewSession(c)

	if cfg.Mode == config.ModePlain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := command.Run(ctx, in, os.Stdout, session); err != nil {
			logger.WithError(log, err).Error("command loop failed")
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.Info("training finished", "turns", session.Turns)
		return
	}

	p := tea.NewProgram(NewConsoleUI(cfg, session),
		tea.WithAltScreen(),
		tea.WithInput(consoleInput(in, os.Stdin)))
	if _, err := p.Run(); err != nil {
		logger.WithError(log, err).Error("console ui failed")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("training finished", "turns", session.Turns)
}

// consoleInput keeps bytes the setup prompts already buffered. With nothing
// buffered it returns stdin itself so bubbletea can still put a TTY in raw mode.
func consoleInput(in *bufio.Reader, stdin io.Reader) io.Reader {
	if in.Buffered() > 0 {
		return in
	}
	return stdin
}

// openLogOutput picks where logs go. The TUI owns the terminal, so without
// LOG_FILE it discards logs instead of writing over the screen.
func openLogOutput(cfg *config.Config) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	if cfg.Mode == config.ModeTUI {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
