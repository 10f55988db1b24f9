package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roversim/server/internal/object"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTemplateTable(t *testing.T) {
	path := writeTemp(t, "templates.yaml", `
templates:
  - type: BotWheeled
    name: Wheeled Bot
    scripted: true
    destructible: true
    explosive: true
    max_energy: 100
    speed: 8.0
  - type: BotFlying
    name: Flying Bot
    flying: true
    starts_landed: true
    scale: 2.5
`)

	table, err := LoadTemplateTable(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Count())

	bot := table.Get(object.TypeBotWheeled)
	require.NotNil(t, bot)
	assert.Equal(t, "Wheeled Bot", bot.Name)
	assert.True(t, bot.Scripted)
	assert.True(t, bot.Explosive)
	assert.Equal(t, 100.0, bot.MaxEnergy)
	assert.Equal(t, 1.0, bot.Scale, "scale defaults to 1")

	flyer := table.Get(object.TypeBotFlying)
	require.NotNil(t, flyer)
	assert.True(t, flyer.Flying)
	assert.True(t, flyer.StartsLanded)
	assert.Equal(t, 2.5, flyer.Scale)

	assert.Nil(t, table.Get(object.TypeBase))
}

func TestLoadTemplateTableUnknownType(t *testing.T) {
	path := writeTemp(t, "templates.yaml", `
templates:
  - type: Gremlin
`)
	_, err := LoadTemplateTable(path)
	assert.ErrorContains(t, err, "unknown type")
}

func TestLoadTemplateTableDuplicateType(t *testing.T) {
	path := writeTemp(t, "templates.yaml", `
templates:
  - type: Base
  - type: Base
`)
	_, err := LoadTemplateTable(path)
	assert.ErrorContains(t, err, "duplicate type")
}

func TestLoadTemplateTableMissingFile(t *testing.T) {
	_, err := LoadTemplateTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
