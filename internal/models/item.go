package models

import (
	"fmt"
	"math"
	"slices"
)

// Item lies in a room until the player takes it.
type Item struct {
	Descriptive
	Name string
	// Consumable items track the remaining fraction in Amount (0.0 to 1.0).
	Consumable bool
	Amount     float64
}

func NewItem(name, description string) *Item {
	return &Item{Descriptive: Descriptive{Description: description}, Name: name}
}

func NewConsumable(name, description string, amount float64) *Item {
	it := NewItem(name, description)
	it.Consumable = true
	it.Amount = amount
	return it
}

func (i *Item) Describe() string {
	if i.Consumable {
		return fmt.Sprintf("%s: %s (%d%% left).", i.Name, i.Description, int(math.Round(i.Amount*100)))
	}
	return i.Name + ": " + i.Description + "."
}

// Backpack holds the names of collected items. Items lose their identity on
// pickup; only names travel.
type Backpack []string

func (b *Backpack) Add(names ...string) {
	*b = append(*b, names...)
}

func (b Backpack) Has(name string) bool {
	return slices.Contains(b, name)
}
