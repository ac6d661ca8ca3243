package models

import (
	"fmt"
	"slices"
)

// FightResult tags the outcome of fighting a character.
type FightResult int

const (
	// FightLost means the weapon had no effect.
	FightLost FightResult = iota
	// FightWon means the character was defeated.
	FightWon
	// FightFriendly means the player attacked a friend. Nothing changes.
	FightFriendly
)

func (r FightResult) String() string {
	switch r {
	case FightWon:
		return "won"
	case FightFriendly:
		return "friendly fire"
	default:
		return "lost"
	}
}

// Character is an inhabitant of a room.
type Character interface {
	Describer
	Name() string
	Talk() string
	// Fight resolves an attack with the named weapon. The returned phrase is
	// what the character says in response, if anything.
	Fight(weapon string) (FightResult, string)
}

type persona struct {
	Descriptive
	name    string
	replica string
}

func newPersona(name, description string) persona {
	return persona{
		Descriptive: Descriptive{Description: description},
		name:        name,
		replica:     "No replica yet.",
	}
}

func (p *persona) Name() string { return p.name }

func (p *persona) SetConversation(replica string) {
	p.replica = replica
}

func (p *persona) Talk() string { return p.replica }

func (p *persona) Describe() string {
	return fmt.Sprintf("You see %s here. %s.", p.name, p.Description)
}

// Enemy can be defeated with one of its weaknesses.
type Enemy struct {
	persona
	Weaknesses  []string
	DeathPhrase string
}

func NewEnemy(name, description, deathPhrase string) *Enemy {
	return &Enemy{
		persona:     newPersona(name, description),
		DeathPhrase: deathPhrase,
	}
}

func (e *Enemy) SetWeaknesses(weaknesses ...string) {
	e.Weaknesses = slices.Clone(weaknesses)
}

// Fight reports FightWon iff weapon is one of the weaknesses. Counting
// defeats is the caller's business.
func (e *Enemy) Fight(weapon string) (FightResult, string) {
	if slices.Contains(e.Weaknesses, weapon) {
		return FightWon, e.DeathPhrase
	}
	return FightLost, ""
}

// Friend can't be fought; attacking one always short-circuits.
type Friend struct {
	persona
	FightPhrase string
}

func NewFriend(name, description, fightPhrase string) *Friend {
	return &Friend{
		persona:     newPersona(name, description),
		FightPhrase: fightPhrase,
	}
}

func (f *Friend) Fight(string) (FightResult, string) {
	return FightFriendly, f.FightPhrase
}
