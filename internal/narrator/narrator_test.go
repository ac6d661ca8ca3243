package narrator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/print-shop/internal/models"
	"github.com/tatianab/print-shop/internal/printer"
	"github.com/tatianab/print-shop/internal/world"
)

func testWorld() *world.World {
	room := models.NewRoom("123")
	p := printer.New("Ender-42", "A boxy printer", "", rand.New(rand.NewSource(1)))
	room.Characters = []models.Character{p}
	return &world.World{Rooms: []*models.Room{room}, Start: room}
}

func TestPromptListsRoomsAndPrinters(t *testing.T) {
	prompt, err := Prompt(testWorld())
	require.NoError(t, err)
	assert.Contains(t, prompt, "- 123: No description yet.")
	assert.Contains(t, prompt, "- Ender-42 (temper ")
	assert.Contains(t, prompt, "A boxy printer")
}

func TestParseNarrationStripsFence(t *testing.T) {
	text := "```yaml\nrooms:\n  \"123\": \"A humid room.\"\nprinters:\n  Ender-42:\n    description: \"A sulking printer\"\n    replica: \"Leave me alone.\"\n```"
	n, err := ParseNarration(text)
	require.NoError(t, err)
	assert.Equal(t, "A humid room.", n.Rooms["123"])
	assert.Equal(t, "Leave me alone.", n.Printers["Ender-42"].Replica)

	_, err = ParseNarration("rooms: [")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	w := testWorld()
	n := &Narration{
		Rooms: map[string]string{"123": "A humid room.", "999": "Nowhere."},
		Printers: map[string]PrinterNarration{
			"Ender-42": {Description: "A sulking printer", Replica: "Leave me alone."},
			"Ghost-11": {Description: "Not here"},
		},
	}
	assert.Equal(t, 2, Apply(w, n))

	assert.Equal(t, "A humid room.", w.Rooms[0].Description)
	p := w.Printers()[0]
	assert.Equal(t, "A sulking printer", p.Description)
	assert.Equal(t, "Leave me alone.", p.Talk())
}

func TestApplyKeepsTextOnBlankAnswers(t *testing.T) {
	w := testWorld()
	n := &Narration{
		Rooms:    map[string]string{"123": "  "},
		Printers: map[string]PrinterNarration{"Ender-42": {}},
	}
	Apply(w, n)
	assert.Equal(t, "No description yet.", w.Rooms[0].Description)
	assert.Equal(t, "A boxy printer", w.Printers()[0].Description)
}
