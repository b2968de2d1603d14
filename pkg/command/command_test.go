package command

import (
	"testing"

	"github.com/jwebster45206/character-sim/pkg/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRoller always rolls the given face, clamped to [1, faces].
type fixedRoller int

func (f fixedRoller) Die(faces uint) int {
	return min(max(int(f), 1), int(faces))
}

func newTestSession(t *testing.T, key string) *Session {
	t.Helper()
	c, err := character.Create("Hero", key, character.WithRoller(fixedRoller(1)))
	require.NoError(t, err)
	return NewSession(c)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Type
	}{
		{"attack", CmdAttack},
		{"  ATTACK ", CmdAttack},
		{"defence", CmdDefence},
		{"special", CmdSpecial},
		{"skip", CmdSkip},
		{"Skip\n", CmdSkip},
		{"defense", CmdNone},
		{"", CmdNone},
		{"attack now", CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDispatch_Actions(t *testing.T) {
	s := newTestSession(t, "warrior")

	res := Dispatch(s, "attack")
	assert.True(t, res.Handled)
	assert.False(t, res.Done)
	assert.Equal(t, "Hero dealt 8 damage to the opponent", res.Message)

	res = Dispatch(s, "defence")
	assert.Equal(t, "Hero blocked 15 points of damage.", res.Message)

	res = Dispatch(s, "special")
	assert.Equal(t, s.Character.Special(), res.Message)

	assert.Equal(t, CmdSpecial, s.Last)
	assert.Equal(t, 3, s.Turns)
}

func TestDispatch_UnknownIsIgnored(t *testing.T) {
	s := newTestSession(t, "mage")
	Dispatch(s, "attack")

	res := Dispatch(s, "dance")

	assert.False(t, res.Handled)
	assert.False(t, res.Done)
	assert.Empty(t, res.Message)
	assert.Equal(t, CmdAttack, s.Last, "unknown input must not change the last command")
	assert.Equal(t, 1, s.Turns)
}

func TestDispatch_Skip(t *testing.T) {
	s := newTestSession(t, "healer")

	res := Dispatch(s, "skip")

	assert.True(t, res.Handled)
	assert.True(t, res.Done)
	assert.Empty(t, res.Message)
	assert.Equal(t, CmdSkip, s.Last)
	assert.Zero(t, s.Turns)
}

func TestHelp_ListsCommands(t *testing.T) {
	help := Help()
	for _, cmd := range []string{"attack", "defence", "special", "skip"} {
		assert.Contains(t, help, cmd)
	}
}
