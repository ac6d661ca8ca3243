package config

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/tatianab/print-shop/internal/models"
)

const defaultModel = "gemini-2.5-flash"

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey enables the narrator when set.
	GeminiAPIKey string
	Model        string
	Seed         int64
	HasSeed      bool
	ContentFile  string
	LogFile      string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Model:        os.Getenv("PRINTSHOP_MODEL"),
		ContentFile:  os.Getenv("PRINTSHOP_CONTENT"),
		LogFile:      os.Getenv("PRINTSHOP_LOG"),
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	if raw := os.Getenv("PRINTSHOP_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("PRINTSHOP_SEED must be an integer: %w", err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

// Rand returns a random source seeded from the configured seed, or from the
// clock when none is set.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if !c.HasSeed {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Content loads the configured content file or the embedded default.
func (c *Config) Content() (*models.Content, error) {
	if c.ContentFile == "" {
		return models.DefaultContent()
	}
	content, err := models.LoadContent(c.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", c.ContentFile, err)
	}
	return content, nil
}

// Logger opens the configured log file. Without one, logs are discarded.
// The returned func closes the file.
func (c *Config) Logger() (*slog.Logger, func() error, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}
