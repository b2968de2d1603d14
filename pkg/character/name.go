package character

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxNameLength is the longest name kept, in runes
const MaxNameLength = 32

var ErrEmptyName = errors.New("character name cannot be empty")

// NormalizeName trims and collapses whitespace and applies Unicode NFC.
// Letter case is kept as given.
func NormalizeName(s string) (string, error) {
	fields := strings.Fields(norm.NFC.String(s))
	if len(fields) == 0 {
		return "", ErrEmptyName
	}
	name := strings.Join(fields, " ")
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = strings.TrimSpace(string(runes[:MaxNameLength]))
	}
	return name, nil
}
