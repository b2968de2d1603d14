package character

import "github.com/jwebster45206/d20"

// Roller rolls a single die.
type Roller interface {
	// Die returns a roll of one die with the given faces, in [1, faces]. faces > 0.
	Die(faces uint) int
}

// DiceRoller backs Roller with a d20.Roller. Not safe for concurrent use.
type DiceRoller struct {
	dice *d20.Roller
}

// NewRandomRoller returns a time-seeded roller.
func NewRandomRoller() *DiceRoller {
	return &DiceRoller{dice: d20.NewRandomRoller()}
}

// NewSeededRoller returns a deterministic roller.
func NewSeededRoller(seed uint64) *DiceRoller {
	return &DiceRoller{dice: d20.NewRoller(int64(seed))}
}

// Die rolls one die. Zero faces rolls as a single-faced die.
func (r *DiceRoller) Die(faces uint) int {
	out, err := r.dice.Dice(1, max(faces, 1)).Roll()
	if err != nil {
		return 1
	}
	return out.Value
}

// Roll draws uniformly from r inclusive of both bounds.
func Roll(roller Roller, r Range) int {
	if r.Hi <= r.Lo {
		return r.Lo
	}
	return r.Lo - 1 + roller.Die(uint(r.Hi-r.Lo+1))
}
