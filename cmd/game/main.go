package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/print-shop/internal/config"
	"github.com/tatianab/print-shop/internal/engine"
	"github.com/tatianab/print-shop/internal/models"
	"github.com/tatianab/print-shop/internal/narrator"
	"github.com/tatianab/print-shop/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	content, err := cfg.Content()
	if err != nil {
		fmt.Printf("Error loading content: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := cfg.Logger()
	if err != nil {
		fmt.Printf("Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Printf("Error closing log: %v\n", err)
		}
	}()

	var narr engine.Narrator
	if cfg.GeminiAPIKey != "" {
		g, err := narrator.NewGemini(ctx, cfg.GeminiAPIKey, cfg.Model, logger)
		if err != nil {
			fmt.Printf("Error creating narrator: %v\n", err)
			os.Exit(1)
		}
		defer g.Close()
		narr = g
	}

	newGame := func(ctx context.Context, length models.LengthSpec) (*engine.Engine, error) {
		return engine.NewEngine(ctx, engine.Options{
			Length:   length,
			Content:  content,
			Rand:     cfg.Rand(),
			Logger:   logger,
			Narrator: narr,
		})
	}

	if err := tui.Run(content, newGame); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
