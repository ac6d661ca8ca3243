package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/print-shop/internal/config"
	"github.com/tatianab/print-shop/internal/engine"
	"github.com/tatianab/print-shop/internal/models"
	"github.com/tatianab/print-shop/internal/world"
	"google.golang.org/api/option"
)

const maxTurns = 200

// player chooses the next line of input for a session.
type player interface {
	next(ctx context.Context, eng *engine.Engine) string
}

func main() {
	games := flag.Int("games", 20, "Number of sessions to play")
	length := flag.Int("length", 1, "Game length choice (1, 2 or 3)")
	seed := flag.Int64("seed", 1, "Seed of the first session")
	useLLM := flag.Bool("llm", false, "Let a Gemini model play instead of the random bot")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	content, err := cfg.Content()
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}
	spec, ok := content.Length(*length)
	if !ok {
		log.Fatalf("Unknown game length %d", *length)
	}

	var p player
	if *useLLM {
		if cfg.GeminiAPIKey == "" {
			log.Fatalf("GEMINI_API_KEY is required with -llm")
		}
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			log.Fatalf("Failed to create player client: %v", err)
		}
		defer client.Close()
		p = &llmPlayer{model: client.GenerativeModel(cfg.Model)}
	}

	tally := make(map[engine.Outcome]int)
	for i := range *games {
		rng := rand.New(rand.NewSource(*seed + int64(i)))
		eng, err := engine.NewEngine(ctx, engine.Options{Length: spec, Content: content, Rand: rng})
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
		if !*useLLM {
			p = &randomPlayer{rng: rng, tools: content.ToolNames()}
		}

		outcome, turns := play(ctx, eng, p)
		tally[outcome]++
		fmt.Printf("Session %d (seed %d): %s after %d turns, %d minutes, results: %s\n",
			i+1, *seed+int64(i), outcome, turns, eng.Time(), eng.ResultsSummary())
	}

	fmt.Printf("\nWon %d, lost %d, out of time %d, unfinished %d\n",
		tally[engine.Won], tally[engine.Lost], tally[engine.TimeUp], tally[engine.Playing])
}

func play(ctx context.Context, eng *engine.Engine, p player) (engine.Outcome, int) {
	for turn := 1; turn <= maxTurns; turn++ {
		line := p.next(ctx, eng)
		result, err := eng.Handle(line)
		if err != nil {
			return result.Outcome, turn
		}
		if result.Outcome != engine.Playing {
			return result.Outcome, turn
		}
	}
	return engine.Playing, maxTurns
}

// randomPlayer mostly runs jobs and wanders; it rarely picks a fight.
type randomPlayer struct {
	rng   *rand.Rand
	tools []string
}

func (r *randomPlayer) next(_ context.Context, eng *engine.Engine) string {
	if eng.Prompting() {
		prompt := eng.Prompt()
		switch {
		case strings.Contains(prompt, "yes/no"):
			return "no"
		case len(eng.Backpack()) > 0:
			return eng.Backpack()[r.rng.Intn(len(eng.Backpack()))]
		default:
			return r.tools[r.rng.Intn(len(r.tools))]
		}
	}

	room := eng.CurrentRoom()
	printers := world.RoomPrinters(room)
	switch roll := r.rng.Intn(100); {
	case roll < 10 && len(room.Items) > 0:
		return "take"
	case roll < 40 && len(printers) > 0:
		target := printers[r.rng.Intn(len(printers))]
		return fmt.Sprintf("print %s %d", target.Name(), 1+r.rng.Intn(12))
	case roll < 60 && len(printers) > 0:
		return "retrieve " + printers[r.rng.Intn(len(printers))].Name()
	case roll < 75:
		return fmt.Sprintf("wait %d", 5+r.rng.Intn(30))
	case roll < 98:
		return string(models.Directions[r.rng.Intn(len(models.Directions))])
	case len(printers) > 0:
		return "fight " + printers[r.rng.Intn(len(printers))].Name()
	}
	return "status"
}

// llmPlayer asks a generative model for the next command.
type llmPlayer struct {
	model *genai.GenerativeModel
}

func (l *llmPlayer) next(ctx context.Context, eng *engine.Engine) string {
	var question string
	if eng.Prompting() {
		question = "The game asks: " + eng.Prompt()
	} else {
		question = "What is your next command?"
	}

	prompt := fmt.Sprintf(`You are playing a text adventure in a print shop full of 3D printers.
Collect as many printed units as you can before time runs out.

%s

Backpack: %v
Time: %d of %d minutes

Commands:
%s

%s Return ONLY the command, no extra commentary.`,
		strings.Join(eng.Look(), "\n"),
		eng.Backpack(),
		eng.Time(), eng.Limit(),
		"north|south|east|west, talk [name], fight [name], take, wait <minutes>, print [printer] <job>, retrieve [printer], repair [printer], inspect [printer], jobs, status",
		question,
	)

	resp, err := l.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "wait 5"
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "status"
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
}
