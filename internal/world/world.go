// Package world builds the starting map: rooms linked into a spanning tree,
// populated with printers and friends, with tools scattered around.
package world

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tatianab/print-shop/internal/models"
	"github.com/tatianab/print-shop/internal/printer"
)

const (
	minPrinters = 2
	maxPrinters = 8
)

// Config drives generation of one world.
type Config struct {
	Rooms int
	// GameLength is the length category (1 short, 2 normal, 3 long). It
	// scales tool generation.
	GameLength int
	Content    *models.Content
	Rand       *rand.Rand
}

// World is a generated map and the room the player starts in.
type World struct {
	Rooms []*models.Room
	Start *models.Room
}

// Generate builds a world from cfg.
func Generate(cfg *Config) (*World, error) {
	if cfg.Rooms < 1 {
		return nil, fmt.Errorf("world needs at least one room, got %d", cfg.Rooms)
	}
	if cfg.Rooms > 900 {
		return nil, fmt.Errorf("too many rooms for three-digit names: %d", cfg.Rooms)
	}
	if cfg.Content == nil || len(cfg.Content.PrinterModels) == 0 {
		return nil, fmt.Errorf("world needs printer models to populate rooms")
	}
	if distinct(cfg.Content.PrinterModels)*90 < cfg.Rooms*maxPrinters {
		return nil, fmt.Errorf("not enough printer names for %d rooms", cfg.Rooms)
	}

	rooms := make([]*models.Room, 0, cfg.Rooms)
	for _, name := range roomNames(cfg.Rooms, cfg.Rand) {
		r := models.NewRoom(name)
		if d := pick(cfg.Content.RoomDescriptions, cfg.Rand); d != "" {
			r.SetDescription(d)
		}
		rooms = append(rooms, r)
	}

	LinkRooms(rooms, cfg.Rand)
	populate(rooms, cfg)
	distributeTools(rooms, cfg)

	return &World{
		Rooms: rooms,
		Start: rooms[cfg.Rand.Intn(len(rooms))],
	}, nil
}

// roomNames draws n distinct three-digit names.
func roomNames(n int, rng *rand.Rand) []string {
	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for len(names) < n {
		name := fmt.Sprintf("%d", 100+rng.Intn(900))
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// LinkRooms joins rooms into a spanning tree. Each unlinked room is attached
// to a random free slot of a random already-linked room.
func LinkRooms(rooms []*models.Room, rng *rand.Rand) {
	if len(rooms) == 0 {
		return
	}
	linked := []*models.Room{rooms[0]}
	for _, next := range rooms[1:] {
		for {
			host := linked[rng.Intn(len(linked))]
			free := host.FreeDirections()
			if len(free) == 0 {
				continue
			}
			host.Link(next, free[rng.Intn(len(free))])
			break
		}
		linked = append(linked, next)
	}
}

// Links counts the undirected links in the world.
func (w *World) Links() int {
	n := 0
	for _, r := range w.Rooms {
		n += len(r.Neighbours)
	}
	return n / 2
}

// Printers returns every printer in room order.
func (w *World) Printers() []*printer.Printer {
	var out []*printer.Printer
	for _, r := range w.Rooms {
		out = append(out, RoomPrinters(r)...)
	}
	return out
}

// RoomPrinters returns the printers among a room's inhabitants.
func RoomPrinters(r *models.Room) []*printer.Printer {
	var out []*printer.Printer
	for _, c := range r.Characters {
		if p, ok := c.(*printer.Printer); ok {
			out = append(out, p)
		}
	}
	return out
}

func populate(rooms []*models.Room, cfg *Config) {
	c := cfg.Content
	tools := c.ToolNames()
	names := make(map[string]bool)
	for _, r := range rooms {
		n := minPrinters + cfg.Rand.Intn(maxPrinters-minPrinters+1)
		for range n {
			var name string
			for {
				name = fmt.Sprintf("%s-%d", pick(c.PrinterModels, cfg.Rand), 10+cfg.Rand.Intn(90))
				if !names[name] {
					break
				}
			}
			names[name] = true

			p := printer.New(name, pick(c.PrinterDescriptions, cfg.Rand), pick(c.DeathPhrases, cfg.Rand), cfg.Rand)
			if replica := pick(c.PrinterReplicas, cfg.Rand); replica != "" {
				p.SetConversation(replica)
			}
			p.SetWeaknesses(weaknesses(tools, cfg.Rand)...)
			r.Characters = append(r.Characters, p)
		}
	}

	for _, f := range c.Friends {
		friend := models.NewFriend(f.Name, f.Description, f.FightPhrase)
		if f.Replica != "" {
			friend.SetConversation(f.Replica)
		}
		r := rooms[cfg.Rand.Intn(len(rooms))]
		r.Characters = append(r.Characters, friend)
	}
}

// weaknesses picks one or two distinct tool names.
func weaknesses(tools []string, rng *rand.Rand) []string {
	if len(tools) == 0 {
		return nil
	}
	n := min(1+rng.Intn(2), len(tools))
	perm := rng.Perm(len(tools))
	out := make([]string, 0, n)
	for _, i := range perm[:n] {
		out = append(out, tools[i])
	}
	return out
}

// distributeTools scatters tool instances over random rooms. Necessary tools
// always appear. An optional tool type appears as a whole batch only when a
// fresh draw falls under the same amount that sizes the batch.
func distributeTools(rooms []*models.Room, cfg *Config) {
	for _, spec := range cfg.Content.NecessaryTools() {
		placeTools(rooms, spec, batchSize(spec, cfg.GameLength), cfg.Rand)
	}
	for _, spec := range cfg.Content.OptionalTools() {
		if cfg.Rand.Float64() < spec.GenerationAmount*float64(cfg.GameLength) {
			placeTools(rooms, spec, batchSize(spec, cfg.GameLength), cfg.Rand)
		}
	}
}

func batchSize(spec models.ToolSpec, gameLength int) int {
	return max(1, int(math.Floor(spec.GenerationAmount*float64(gameLength))))
}

func placeTools(rooms []*models.Room, spec models.ToolSpec, n int, rng *rand.Rand) {
	for range n {
		var it *models.Item
		if spec.Consumable {
			it = models.NewConsumable(spec.Name, spec.Description, 0.25+0.75*rng.Float64())
		} else {
			it = models.NewItem(spec.Name, spec.Description)
		}
		r := rooms[rng.Intn(len(rooms))]
		r.Items = append(r.Items, it)
	}
}

func distinct(names []string) int {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	return len(seen)
}

func pick(options []string, rng *rand.Rand) string {
	if len(options) == 0 {
		return ""
	}
	return options[rng.Intn(len(options))]
}
