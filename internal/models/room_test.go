package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkIsReciprocal(t *testing.T) {
	for _, d := range Directions {
		a, b := NewRoom("100"), NewRoom("200")
		a.Link(b, d)
		assert.Same(t, b, a.Neighbours[d], "direction %s", d)
		assert.Same(t, a, b.Neighbours[d.Opposite()], "direction %s", d)
	}
}

func TestOppositePairs(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, East, West.Opposite())
}

func TestMoveIntoMissingRoom(t *testing.T) {
	a, b := NewRoom("100"), NewRoom("200")
	a.Link(b, East)

	next, ok := a.Move(North)
	assert.False(t, ok)
	assert.Same(t, a, next)
	assert.Len(t, a.FreeDirections(), 3)

	next, ok = a.Move(East)
	assert.True(t, ok)
	assert.Same(t, b, next)
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("North")
	require.True(t, ok)
	assert.Equal(t, North, d)

	_, ok = ParseDirection("up")
	assert.False(t, ok)
}

func TestRoomCharacters(t *testing.T) {
	r := NewRoom("300")
	a := NewEnemy("A", "first", "")
	b := NewEnemy("B", "second", "")
	c := NewFriend("C", "third", "")
	r.Characters = []Character{a, b, c}

	got, ok := r.Character("B")
	require.True(t, ok)
	assert.Same(t, b, got)

	r.RemoveCharacter(b)
	assert.Equal(t, []Character{a, c}, r.Characters)

	_, ok = r.Character("B")
	assert.False(t, ok)
}

func TestTakeItems(t *testing.T) {
	r := NewRoom("400")
	r.Items = []*Item{NewItem("spatula", "thin")}
	items := r.TakeItems()
	assert.Len(t, items, 1)
	assert.Empty(t, r.Items)
	assert.Empty(t, r.TakeItems())
}

func TestDetailsListsEveryDirection(t *testing.T) {
	a, b := NewRoom("100"), NewRoom("200")
	a.SetDescription("Dusty.")
	a.Link(b, South)
	assert.Equal(t,
		"You're currently at: 100. Dusty.\nAdjoining rooms: north: No room, west: No room, south: 200, east: No room",
		a.Details())
}
