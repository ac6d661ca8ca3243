package models

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// LengthSpec is one selectable game length.
type LengthSpec struct {
	Choice  int    `yaml:"choice"`
	Label   string `yaml:"label"`
	Minutes int    `yaml:"minutes"`
	Rooms   int    `yaml:"rooms"`
}

// ToolSpec describes one tool type the generator can scatter around.
type ToolSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// GenerationAmount is both a per-length count multiplier and, for
	// optional tools, the presence probability per length unit.
	GenerationAmount float64 `yaml:"generation_amount"`
	Necessary        bool    `yaml:"necessary"`
	Consumable       bool    `yaml:"consumable"`
}

// FriendSpec describes a non-hostile inhabitant.
type FriendSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Replica     string `yaml:"replica"`
	FightPhrase string `yaml:"fight_phrase"`
}

// Content holds the static tables the world is dressed with.
type Content struct {
	Lengths             []LengthSpec `yaml:"lengths"`
	Tools               []ToolSpec   `yaml:"tools"`
	PrinterModels       []string     `yaml:"printer_models"`
	PrinterDescriptions []string     `yaml:"printer_descriptions"`
	PrinterReplicas     []string     `yaml:"printer_replicas"`
	DeathPhrases        []string     `yaml:"death_phrases"`
	RoomDescriptions    []string     `yaml:"room_descriptions"`
	Friends             []FriendSpec `yaml:"friends"`
}

// DefaultContent returns the embedded content tables.
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}

// LoadContent reads content tables from a YAML file.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContent(data)
}

func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	if len(c.Lengths) == 0 {
		return errors.New("content: no game lengths defined")
	}
	if len(c.Tools) == 0 {
		return errors.New("content: no tools defined")
	}
	if len(c.PrinterModels) == 0 {
		return errors.New("content: no printer models defined")
	}
	for _, l := range c.Lengths {
		if l.Minutes <= 0 || l.Rooms <= 0 {
			return fmt.Errorf("content: length %d needs positive minutes and rooms", l.Choice)
		}
	}
	seen := make(map[string]bool, len(c.PrinterModels))
	for _, m := range c.PrinterModels {
		if err := checkName("printer model", m); err != nil {
			return err
		}
		if seen[m] {
			return fmt.Errorf("content: duplicate printer model %q", m)
		}
		seen[m] = true
	}
	for _, f := range c.Friends {
		if err := checkName("friend", f.Name); err != nil {
			return err
		}
	}
	return nil
}

// checkName rejects names a player could not type as a single command token.
func checkName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("content: empty %s name", kind)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("content: %s name %q contains whitespace", kind, name)
	}
	return nil
}

// Length finds the game length for a menu choice.
func (c *Content) Length(choice int) (LengthSpec, bool) {
	for _, l := range c.Lengths {
		if l.Choice == choice {
			return l, true
		}
	}
	return LengthSpec{}, false
}

func (c *Content) NecessaryTools() []ToolSpec {
	return c.filterTools(true)
}

func (c *Content) OptionalTools() []ToolSpec {
	return c.filterTools(false)
}

func (c *Content) filterTools(necessary bool) []ToolSpec {
	var out []ToolSpec
	for _, t := range c.Tools {
		if t.Necessary == necessary {
			out = append(out, t)
		}
	}
	return out
}

// ToolNames lists every tool type name.
func (c *Content) ToolNames() []string {
	names := make([]string, 0, len(c.Tools))
	for _, t := range c.Tools {
		names = append(names, t.Name)
	}
	return names
}
