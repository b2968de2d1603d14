package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jwebster45206/character-sim/pkg/character"
)

const maxNameAttempts = 3

// createCharacter asks for a name and an archetype key.
// An unrecognized key selects the base archetype.
func createCharacter(in *bufio.Reader, out io.Writer, opts ...character.Option) (*character.Character, error) {
	fmt.Fprintln(out, "Greetings, adventurer! Before you begin, choose a name and a class.")

	var name string
	for attempt := 0; ; attempt++ {
		fmt.Fprint(out, "Enter your character's name: ")
		line, err := readLine(in)
		if err != nil {
			return nil, err
		}
		if name, err = character.NormalizeName(line); err == nil {
			break
		}
		if attempt+1 >= maxNameAttempts {
			return nil, fmt.Errorf("no name given: %w", err)
		}
		fmt.Fprintln(out, "A name is required.")
	}

	fmt.Fprintf(out, "Hello, %s! Now choose your class:\n", name)
	for _, a := range character.Archetypes() {
		fmt.Fprintf(out, "  %-8s %s\n", a.Key, a.Description)
	}
	fmt.Fprint(out, "Enter a class (anything else keeps you a plain character): ")
	key, err := readLine(in)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	c, err := character.Create(name, key, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	fmt.Fprintln(out, c.Describe())
	return c, nil
}

// readLine returns the next line without its newline.
// A final unterminated line is returned with a nil error.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
