package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PRINTSHOP_MODEL", "")
	t.Setenv("PRINTSHOP_SEED", "")
	t.Setenv("PRINTSHOP_CONTENT", "")
	t.Setenv("PRINTSHOP_LOG", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, defaultModel, cfg.Model)
	assert.False(t, cfg.HasSeed)

	content, err := cfg.Content()
	require.NoError(t, err)
	assert.NotEmpty(t, content.Lengths)
}

func TestLoadConfigSeed(t *testing.T) {
	t.Setenv("PRINTSHOP_SEED", "1234")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, cfg.Rand().Int63(), cfg.Rand().Int63())

	t.Setenv("PRINTSHOP_SEED", "soon")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestContentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := "lengths: [{choice: 1, label: tiny, minutes: 30, rooms: 1}]\ntools: [{name: wrench, necessary: true}]\nprinter_models: [Mini]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg := &Config{ContentFile: path}
	content, err := cfg.Content()
	require.NoError(t, err)
	assert.Equal(t, "tiny", content.Lengths[0].Label)

	cfg.ContentFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.Content()
	assert.Error(t, err)
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	cfg := &Config{LogFile: path}
	logger, closeLog, err := cfg.Logger()
	require.NoError(t, err)
	logger.Info("hello", "k", "v")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello k=v")
}
