package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnemyFight(t *testing.T) {
	e := NewEnemy("Dave", "A smelly zombie", "Argh")
	e.SetWeaknesses("cheese", "book")

	res, phrase := e.Fight("cheese")
	assert.Equal(t, FightWon, res)
	assert.Equal(t, "Argh", phrase)

	res, phrase = e.Fight("sword")
	assert.Equal(t, FightLost, res)
	assert.Empty(t, phrase)
}

func TestFriendFightIsAlwaysFriendly(t *testing.T) {
	var f Character = NewFriend("Tech", "An apron", "Ouch!")
	for _, weapon := range []string{"", "cheese", "spatula"} {
		res, phrase := f.Fight(weapon)
		assert.Equal(t, FightFriendly, res)
		assert.Equal(t, "Ouch!", phrase)
	}
}

func TestCharacterTalkAndDescribe(t *testing.T) {
	e := NewEnemy("Dave", "A smelly zombie", "")
	assert.Equal(t, "No replica yet.", e.Talk())
	e.SetConversation("I'm hungry.")
	assert.Equal(t, "I'm hungry.", e.Talk())
	assert.Equal(t, "You see Dave here. A smelly zombie.", e.Describe())
	e.SetDescription("A tidy zombie")
	assert.Equal(t, "You see Dave here. A tidy zombie.", e.Describe())
}

func TestItemDescribe(t *testing.T) {
	assert.Equal(t, "book: A good book.", NewItem("book", "A good book").Describe())
	assert.Equal(t, "filament: A spool (75% left).", NewConsumable("filament", "A spool", 0.75).Describe())
}

func TestBackpack(t *testing.T) {
	var b Backpack
	assert.False(t, b.Has("cheese"))
	b.Add("cheese", "book")
	assert.True(t, b.Has("cheese"))
	assert.Equal(t, Backpack{"cheese", "book"}, b)
}
