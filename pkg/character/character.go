package character

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jwebster45206/d20"
)

// Attribute keys on the character's d20 actor
const (
	AttrAttack  = "attack"
	AttrDefence = "defence"
	AttrSpecial = "special"
)

// Character is one named instance of an archetype.
// It has no mutable state; every action is an independent sample.
type Character struct {
	id        string
	name      string
	archetype Archetype
	actor     *d20.Actor
	roller    Roller
}

// Option configures a Character at construction.
type Option func(*Character)

// WithRoller sets the randomness source for Attack and Defence.
// The default is a time-seeded d20 roller per character.
func WithRoller(r Roller) Option {
	return func(c *Character) {
		if r != nil {
			c.roller = r
		}
	}
}

// WithID overrides the generated actor ID.
func WithID(id string) Option {
	return func(c *Character) {
		if id != "" {
			c.id = id
		}
	}
}

// New creates a character from an archetype.
// The name is normalized; a blank name returns ErrEmptyName.
func New(name string, archetype Archetype, opts ...Option) (*Character, error) {
	normalized, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	c := &Character{
		id:        uuid.NewString(),
		name:      normalized,
		archetype: archetype,
		roller:    NewRandomRoller(),
	}
	for _, opt := range opts {
		opt(c)
	}

	actor, err := d20.NewActor(c.id).
		WithHP(DefaultStamina).
		WithAC(DefaultDefence).
		WithAttributes(map[string]int{
			AttrAttack:  DefaultAttack,
			AttrDefence: DefaultDefence,
			AttrSpecial: archetype.SpecialBonus,
		}).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor: %w", err)
	}
	c.actor = actor

	return c, nil
}

// Create builds a character from an archetype key.
// Unrecognized keys produce a Base character rather than an error.
func Create(name, archetypeKey string, opts ...Option) (*Character, error) {
	return New(name, Lookup(archetypeKey), opts...)
}

// ID returns the generated or overridden character ID.
func (c *Character) ID() string { return c.id }

// Name returns the normalized name given at creation.
func (c *Character) Name() string { return c.name }

// Archetype returns the archetype chosen at creation.
func (c *Character) Archetype() Archetype { return c.archetype }

// Actor exposes the underlying d20 actor. Read only.
func (c *Character) Actor() *d20.Actor { return c.actor }

func (c *Character) base(key string, fallback int) int {
	if v, ok := c.actor.Attribute(key); ok {
		return v
	}
	return fallback
}

// AttackValue samples one attack total.
func (c *Character) AttackValue() int {
	return c.base(AttrAttack, DefaultAttack) + Roll(c.roller, c.archetype.AttackRange)
}

// DefenceValue samples one defence total.
func (c *Character) DefenceValue() int {
	return c.base(AttrDefence, DefaultDefence) + Roll(c.roller, c.archetype.DefenceRange)
}

// Attack describes one attack roll.
func (c *Character) Attack() string {
	return fmt.Sprintf("%s dealt %d damage to the opponent", c.name, c.AttackValue())
}

// Defence describes one defence roll.
func (c *Character) Defence() string {
	return fmt.Sprintf("%s blocked %d points of damage.", c.name, c.DefenceValue())
}

// Special contains no random component.
func (c *Character) Special() string {
	return fmt.Sprintf("%s used special skill \"%s %d\".", c.name, c.archetype.SpecialSkill, c.base(AttrSpecial, c.archetype.SpecialBonus))
}

// Describe returns "<Name> - <description>.".
func (c *Character) Describe() string {
	return fmt.Sprintf("%s - %s.", c.archetype.Name, c.archetype.Description)
}

// String implements fmt.Stringer with Describe.
func (c *Character) String() string {
	return c.Describe()
}
