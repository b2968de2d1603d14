package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/jwebster45206/character-sim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleInput_KeepsBufferedBytes(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("Bob\nwarrior\nattack\nskip\n"))
	_, err := createCharacter(in, &bytes.Buffer{})
	require.NoError(t, err)

	stdin := strings.NewReader("")
	r := consoleInput(in, stdin)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "attack\nskip\n", string(rest))
}

func TestConsoleInput_FallsBackToStdin(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("Bob\nwarrior\n"))
	_, err := createCharacter(in, &bytes.Buffer{})
	require.NoError(t, err)

	stdin := strings.NewReader("special\n")
	assert.Same(t, stdin, consoleInput(in, stdin))
}

func TestOpenLogOutput(t *testing.T) {
	t.Run("tui without file discards", func(t *testing.T) {
		w, closeLog, err := openLogOutput(&config.Config{Mode: config.ModeTUI})
		require.NoError(t, err)
		defer closeLog()
		assert.Equal(t, io.Discard, w)
	})

	t.Run("file is appended to", func(t *testing.T) {
		path := t.TempDir() + "/sim.log"
		w, closeLog, err := openLogOutput(&config.Config{Mode: config.ModeTUI, LogFile: path})
		require.NoError(t, err)
		_, err = io.WriteString(w, "hello\n")
		require.NoError(t, err)
		closeLog()
	})
}
