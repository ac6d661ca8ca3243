package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tatianab/print-shop/internal/config"
	"github.com/tatianab/print-shop/internal/console"
	"github.com/tatianab/print-shop/internal/engine"
	"github.com/tatianab/print-shop/internal/narrator"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	content, err := cfg.Content()
	if err != nil {
		return err
	}
	logger, closeLog, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil && err == nil {
			err = fmt.Errorf("close log: %w", cerr)
		}
	}()

	opts := engine.Options{Content: content, Rand: cfg.Rand(), Logger: logger}
	if cfg.GeminiAPIKey != "" {
		g, err := narrator.NewGemini(ctx, cfg.GeminiAPIKey, cfg.Model, logger)
		if err != nil {
			return err
		}
		defer g.Close()
		opts.Narrator = g
	}

	c := console.New(os.Stdin, os.Stdout)
	opts.Length, err = c.ChooseLength(content)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	eng, err := engine.NewEngine(ctx, opts)
	if err != nil {
		return err
	}
	_, err = c.Play(eng)
	return err
}
