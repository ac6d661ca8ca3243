package models

import "strings"

// Direction is one of the four exits a room can have.
type Direction string

const (
	North Direction = "north"
	West  Direction = "west"
	South Direction = "south"
	East  Direction = "east"
)

// Directions lists every direction in display order.
var Directions = []Direction{North, West, South, East}

var opposites = map[Direction]Direction{
	North: South,
	South: North,
	West:  East,
	East:  West,
}

// Opposite returns the direction leading back.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// ParseDirection recognises a direction word.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(s))
	_, ok := opposites[d]
	return d, ok
}

// Describer is implemented by everything that carries free-text description.
type Describer interface {
	SetDescription(description string)
	Describe() string
}

// Descriptive is embedded by entities with a settable description.
type Descriptive struct {
	Description string
}

func (d *Descriptive) SetDescription(description string) {
	d.Description = description
}

func (d *Descriptive) Describe() string {
	return d.Description
}

// Room is a node of the map graph.
type Room struct {
	Descriptive
	Name       string
	Neighbours map[Direction]*Room
	Characters []Character
	Items      []*Item
}

func NewRoom(name string) *Room {
	return &Room{
		Descriptive: Descriptive{Description: "No description yet."},
		Name:        name,
		Neighbours:  make(map[Direction]*Room, len(Directions)),
	}
}

// Link connects other in direction d and sets the reverse link on other.
// Callers check that the slot is free; an occupied slot is overwritten.
func (r *Room) Link(other *Room, d Direction) {
	r.Neighbours[d] = other
	other.Neighbours[d.Opposite()] = r
}

// Move returns the neighbour in direction d. When there is no room that way
// it returns r itself and false.
func (r *Room) Move(d Direction) (*Room, bool) {
	if next := r.Neighbours[d]; next != nil {
		return next, true
	}
	return r, false
}

// FreeDirections returns the directions without a neighbour, in display order.
func (r *Room) FreeDirections() []Direction {
	var free []Direction
	for _, d := range Directions {
		if r.Neighbours[d] == nil {
			free = append(free, d)
		}
	}
	return free
}

// Character finds an inhabitant by name.
func (r *Room) Character(name string) (Character, bool) {
	for _, c := range r.Characters {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// RemoveCharacter drops c from the room, keeping the order of the rest.
func (r *Room) RemoveCharacter(c Character) {
	for i, other := range r.Characters {
		if other == c {
			r.Characters = append(r.Characters[:i:i], r.Characters[i+1:]...)
			return
		}
	}
}

// TakeItems empties the room's item list and returns what was there.
func (r *Room) TakeItems() []*Item {
	items := r.Items
	r.Items = nil
	return items
}

// Details renders the room name, description and exits.
func (r *Room) Details() string {
	var b strings.Builder
	b.WriteString("You're currently at: " + r.Name + ". " + r.Description + "\n")
	b.WriteString("Adjoining rooms: ")
	for i, d := range Directions {
		if i > 0 {
			b.WriteString(", ")
		}
		if next := r.Neighbours[d]; next != nil {
			b.WriteString(string(d) + ": " + next.Name)
		} else {
			b.WriteString(string(d) + ": No room")
		}
	}
	return b.String()
}
