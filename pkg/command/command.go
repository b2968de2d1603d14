package command

import (
	"strings"

	"github.com/jwebster45206/character-sim/pkg/character"
)

type Type string

const (
	CmdAttack  Type = "attack"
	CmdDefence Type = "defence"
	CmdSpecial Type = "special"
	CmdSkip    Type = "skip"
	CmdNone    Type = "" // Unrecognized input, ignored by the loop
)

var known = map[string]Type{
	"attack":  CmdAttack,
	"defence": CmdDefence,
	"special": CmdSpecial,
	"skip":    CmdSkip,
}

// Parse maps an input line to a command. Unknown input returns CmdNone.
func Parse(input string) Type {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		return CmdNone
	}
	cmd, ok := known[trimmed]
	if !ok {
		return CmdNone
	}
	return cmd
}

// Session is the state of one command loop.
type Session struct {
	Character *character.Character
	Last      Type // last handled command
	Turns     int  // number of handled actions, skip excluded
}

func NewSession(c *character.Character) *Session {
	return &Session{Character: c}
}

// Result is the outcome of one line of input.
type Result struct {
	Command Type
	Handled bool   // True if the input named an action or skip
	Message string // Text to print verbatim, empty when nothing should be shown
	Done    bool   // True when the loop should end
}

// Dispatch runs one line of input against the session's character.
func Dispatch(s *Session, input string) Result {
	cmd := Parse(input)

	var msg string
	switch cmd {
	case CmdAttack:
		msg = s.Character.Attack()
	case CmdDefence:
		msg = s.Character.Defence()
	case CmdSpecial:
		msg = s.Character.Special()
	case CmdSkip:
		s.Last = CmdSkip
		return Result{Command: CmdSkip, Handled: true, Done: true}
	default:
		return Result{Command: CmdNone}
	}

	s.Last = cmd
	s.Turns++
	return Result{Command: cmd, Handled: true, Message: msg}
}

// Help returns the instructions shown before the loop starts.
func Help() string {
	return strings.Join([]string{
		"Train your skills.",
		"Enter one of the commands:",
		"  attack  - strike the opponent",
		"  defence - block incoming damage",
		"  special - use your special skill",
		"Enter skip to stop training.",
	}, "\n")
}
