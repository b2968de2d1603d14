package character

import "strings"

// Fixed offsets added to every archetype's roll
const (
	DefaultAttack  = 5
	DefaultDefence = 10
	DefaultStamina = 80
)

// BaseKey is the archetype used when no known key is given
const BaseKey = "character"

// Range is an inclusive integer interval. Bounds may be negative.
type Range struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

// Contains reports whether n lies in [Lo, Hi].
func (r Range) Contains(n int) bool {
	return n >= r.Lo && n <= r.Hi
}

// Shift returns the range offset by n.
func (r Range) Shift(n int) Range {
	return Range{Lo: r.Lo + n, Hi: r.Hi + n}
}

// Archetype is a fixed bundle of combat constants and narrative text.
type Archetype struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	AttackRange  Range  `json:"attack_range"`
	DefenceRange Range  `json:"defence_range"`
	SpecialBonus int    `json:"special_bonus"`
	SpecialSkill string `json:"special_skill"`
}

var (
	Base = Archetype{
		Key:          BaseKey,
		Name:         "Character",
		Description:  "brave lover of adventure",
		AttackRange:  Range{1, 3},
		DefenceRange: Range{1, 5},
		SpecialBonus: 15,
		SpecialSkill: "Luck",
	}

	Warrior = Archetype{
		Key:          "warrior",
		Name:         "Warrior",
		Description:  "daring close-combat fighter. Strong, hardy and brave",
		AttackRange:  Range{3, 5},
		DefenceRange: Range{5, 10},
		SpecialBonus: DefaultStamina + 25,
		SpecialSkill: "Stamina",
	}

	Mage = Archetype{
		Key:          "mage",
		Name:         "Mage",
		Description:  "resourceful ranged fighter. Possesses great intelligence",
		AttackRange:  Range{5, 10},
		DefenceRange: Range{-2, 2},
		SpecialBonus: DefaultAttack + 40,
		SpecialSkill: "Attack",
	}

	// Healer trades offence for support; its attack range is entirely negative.
	Healer = Archetype{
		Key:          "healer",
		Name:         "Healer",
		Description:  "mighty spellcaster. Draws strength from nature, faith and spirits",
		AttackRange:  Range{-3, -1},
		DefenceRange: Range{2, 5},
		SpecialBonus: DefaultDefence + 30,
		SpecialSkill: "Defence",
	}
)

var archetypes = map[string]Archetype{
	Base.Key:    Base,
	Warrior.Key: Warrior,
	Mage.Key:    Mage,
	Healer.Key:  Healer,
}

// Lookup returns the archetype for key, ignoring case and surrounding space.
// Unknown keys fall back to Base.
func Lookup(key string) Archetype {
	if a, ok := archetypes[strings.ToLower(strings.TrimSpace(key))]; ok {
		return a
	}
	return Base
}

// Archetypes returns the selectable archetypes in menu order.
func Archetypes() []Archetype {
	return []Archetype{Warrior, Mage, Healer}
}

// AttackSpan is the full interval of totals Attack can produce.
func (a Archetype) AttackSpan() Range {
	return a.AttackRange.Shift(DefaultAttack)
}

// DefenceSpan is the full interval of totals Defence can produce.
func (a Archetype) DefenceSpan() Range {
	return a.DefenceRange.Shift(DefaultDefence)
}
