// Package narrator asks a Gemini model to dress a generated world with
// flavour text.
package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/print-shop/internal/world"
)

//go:embed prompts/narrate_world.txt
var narrateWorldPrompt string

var narrateTmpl = template.Must(template.New("narrate_world").Parse(narrateWorldPrompt))

// Gemini narrates worlds with a generative model.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gemini{
		client: client,
		model:  client.GenerativeModel(model),
		logger: logger,
	}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

// Narration is the model's answer: new text keyed by room and printer name.
type Narration struct {
	Rooms    map[string]string           `yaml:"rooms"`
	Printers map[string]PrinterNarration `yaml:"printers"`
}

type PrinterNarration struct {
	Description string `yaml:"description"`
	Replica     string `yaml:"replica"`
}

type promptRoom struct {
	Name, Description string
}

type promptPrinter struct {
	Name, Description string
	Temper            int
}

// Prompt renders the narration request for w.
func Prompt(w *world.World) (string, error) {
	var data struct {
		Rooms    []promptRoom
		Printers []promptPrinter
	}
	for _, r := range w.Rooms {
		data.Rooms = append(data.Rooms, promptRoom{Name: r.Name, Description: r.Description})
	}
	for _, p := range w.Printers() {
		data.Printers = append(data.Printers, promptPrinter{Name: p.Name(), Description: p.Description, Temper: int(p.Temper)})
	}

	var buf bytes.Buffer
	if err := narrateTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Narrate replaces descriptions and dialogue in w with the model's text.
func (g *Gemini) Narrate(ctx context.Context, w *world.World) error {
	prompt, err := Prompt(w)
	if err != nil {
		return err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return fmt.Errorf("unexpected response type from Gemini")
	}

	n, err := ParseNarration(string(text))
	if err != nil {
		return err
	}
	applied := Apply(w, n)
	g.logger.Info("world narrated", "updated", applied)
	return nil
}

// ParseNarration reads the model's YAML, tolerating a markdown fence.
func ParseNarration(text string) (*Narration, error) {
	clean := cleanYAML(text)
	var n Narration
	if err := yaml.Unmarshal([]byte(clean), &n); err != nil {
		return nil, fmt.Errorf("failed to parse narration YAML: %w\nOutput was: %s", err, clean)
	}
	return &n, nil
}

func cleanYAML(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```yaml")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return clean
}

// Apply copies narrated text onto matching rooms and printers and reports
// how many entities changed. Unknown names and empty strings are ignored.
func Apply(w *world.World, n *Narration) int {
	changed := 0
	for _, r := range w.Rooms {
		if d := strings.TrimSpace(n.Rooms[r.Name]); d != "" {
			r.SetDescription(d)
			changed++
		}
	}
	for _, p := range w.Printers() {
		pn, ok := n.Printers[p.Name()]
		if !ok {
			continue
		}
		if d := strings.TrimSpace(pn.Description); d != "" {
			p.SetDescription(d)
		}
		if r := strings.TrimSpace(pn.Replica); r != "" {
			p.SetConversation(r)
		}
		changed++
	}
	return changed
}
