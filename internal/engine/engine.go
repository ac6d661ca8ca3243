// Package engine runs the turn loop: it parses commands, dispatches them
// against the world, advances the clock and reports how the session ended.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/tatianab/print-shop/internal/models"
	"github.com/tatianab/print-shop/internal/printer"
	"github.com/tatianab/print-shop/internal/world"
)

// ErrGameOver is returned for input after the session has ended.
var ErrGameOver = errors.New("game is over")

// Minutes charged for loading or unloading a printer.
const handlingMinutes = 5

// Enemies to defeat for a win.
const defeatsToWin = 2

// Outcome tags how a turn left the session.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
	TimeUp
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	case TimeUp:
		return "TIME_UP"
	}
	return "PLAYING"
}

// Turn is the result of handling one line of input.
type Turn struct {
	Lines   []string
	Outcome Outcome
}

// Narrator dresses a freshly generated world with flavour text.
type Narrator interface {
	Narrate(ctx context.Context, w *world.World) error
}

// Options configures a new session.
type Options struct {
	Length   models.LengthSpec
	Content  *models.Content
	Rand     *rand.Rand
	Logger   *slog.Logger
	Narrator Narrator
}

type promptKind int

const (
	promptNone promptKind = iota
	promptWeapon
	promptAbort
	promptTool
)

type pending struct {
	kind   promptKind
	target models.Character
}

// Engine is one game session.
type Engine struct {
	rooms    []*models.Room
	current  *models.Room
	backpack models.Backpack
	time     int
	limit    int
	results  map[printer.Size]int
	defeated int
	outcome  Outcome
	prompt   pending
	rng      *rand.Rand
	logger   *slog.Logger
	out      []string
}

// NewEngine generates a world for opts.Length and lets the narrator dress it.
// Narration failures are logged and the generated text is kept.
func NewEngine(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Rand == nil {
		return nil, errors.New("engine needs a random source")
	}
	w, err := world.Generate(&world.Config{
		Rooms:      opts.Length.Rooms,
		GameLength: opts.Length.Choice,
		Content:    opts.Content,
		Rand:       opts.Rand,
	})
	if err != nil {
		return nil, fmt.Errorf("generate world: %w", err)
	}

	e := New(w, opts.Length.Minutes, opts.Rand, opts.Logger)
	if opts.Narrator != nil {
		if err := opts.Narrator.Narrate(ctx, w); err != nil {
			e.logger.Warn("narration failed, keeping generated text", "err", err)
		}
	}
	e.logger.Info("world generated",
		"rooms", len(w.Rooms),
		"printers", len(w.Printers()),
		"start", w.Start.Name,
		"minutes", opts.Length.Minutes)
	return e, nil
}

// New starts a session on an existing world with a budget of limit minutes.
func New(w *world.World, limit int, rng *rand.Rand, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		rooms:   w.Rooms,
		current: w.Start,
		limit:   limit,
		results: make(map[printer.Size]int),
		rng:     rng,
		logger:  logger.With("session", uuid.NewString()),
	}
}

func (e *Engine) CurrentRoom() *models.Room { return e.current }
func (e *Engine) Backpack() models.Backpack { return e.backpack }
func (e *Engine) Time() int { return e.time }
func (e *Engine) Limit() int { return e.limit }
func (e *Engine) Defeated() int { return e.defeated }
func (e *Engine) Outcome() Outcome { return e.outcome }
// Results returns a copy of the completed units per size.
func (e *Engine) Results() map[printer.Size]int { return maps.Clone(e.results) }
func (e *Engine) Rooms() []*models.Room { return e.rooms }
func (e *Engine) Prompting() bool { return e.prompt.kind != promptNone }

// Look renders the current room with its inhabitants and items.
func (e *Engine) Look() []string {
	lines := []string{e.current.Details()}
	if cs := e.current.Characters; len(cs) > 0 {
		names := make([]string, 0, len(cs))
		for _, c := range cs {
			names = append(names, c.Name())
		}
		lines = append(lines, "Characters here: "+strings.Join(names, ", ")+".")
		for _, c := range cs {
			lines = append(lines, c.Describe())
		}
	}
	if items := e.current.Items; len(items) > 0 {
		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Name)
		}
		lines = append(lines, "Items here: "+strings.Join(names, ", ")+".")
		for _, it := range items {
			lines = append(lines, it.Describe())
		}
	}
	return lines
}

// Handle processes one line of input. A pending prompt consumes the line
// as its answer; otherwise the line is parsed as a command.
func (e *Engine) Handle(line string) (Turn, error) {
	if e.outcome != Playing {
		return Turn{Outcome: e.outcome}, ErrGameOver
	}
	e.out = nil

	if e.prompt.kind != promptNone {
		p := e.prompt
		e.prompt = pending{}
		e.answer(p, strings.TrimSpace(line))
	} else {
		e.dispatch(Parse(line))
	}

	if e.outcome == Playing && e.time >= e.limit {
		e.finish(TimeUp)
		e.say("Time is up! You worked %d minutes.", e.time)
	}
	if e.outcome != Playing {
		e.say("Results: %s.", e.ResultsSummary())
	}
	return Turn{Lines: e.out, Outcome: e.outcome}, nil
}

// Prompt returns the question the engine is waiting on, if any.
func (e *Engine) Prompt() string {
	switch e.prompt.kind {
	case promptWeapon:
		return "What will you fight with?"
	case promptAbort:
		return fmt.Sprintf("%s is still working. Stop it and lose the job? (yes/no)", e.prompt.target.Name())
	case promptTool:
		return "Which tool will you use? (" + strings.Join(e.backpack, ", ") + ")"
	}
	return ""
}

// ResultsSummary formats the completed units per size.
func (e *Engine) ResultsSummary() string {
	parts := make([]string, 0, len(printer.Sizes))
	for _, s := range printer.Sizes {
		parts = append(parts, fmt.Sprintf("%s %d", s, e.results[s]))
	}
	return strings.Join(parts, ", ")
}

func (e *Engine) say(format string, args ...any) {
	e.out = append(e.out, fmt.Sprintf(format, args...))
}

func (e *Engine) finish(o Outcome) {
	e.outcome = o
	e.logger.Info("game ended",
		"outcome", o.String(),
		"minutes", e.time,
		"defeated", e.defeated,
		"small", e.results[printer.Small],
		"medium", e.results[printer.Medium],
		"large", e.results[printer.Large])
}

// Advance lets minutes pass. Every minute ticks every printer in every room,
// wherever the player is.
func (e *Engine) Advance(minutes int) {
	for range minutes {
		for _, r := range e.rooms {
			for _, p := range world.RoomPrinters(r) {
				before := p.Status
				p.Tick(e.rng)
				if p.Status != before {
					e.logger.Debug("printer status changed",
						"printer", p.Name(),
						"room", r.Name,
						"from", before.String(),
						"to", p.Status.String())
				}
			}
		}
		e.time++
	}
}
