package notetag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/battler-opacity/internal/entities"
	"github.com/KirkDiggler/battler-opacity/internal/opacity"
)

func TestExtract(t *testing.T) {
	t.Run("value tag keeps raw text", func(t *testing.T) {
		meta := Extract("<Battler Opacity: 128>")
		v, err := meta.GetString("Battler Opacity")
		require.NoError(t, err)
		assert.Equal(t, " 128", v)
	})

	t.Run("bare tag is a flag", func(t *testing.T) {
		meta := Extract("<Battler Opacity>")
		assert.True(t, meta.IsFlag("Battler Opacity"))
	})

	t.Run("empty value after colon", func(t *testing.T) {
		meta := Extract("<Battler Opacity:>")
		v, err := meta.GetString("Battler Opacity")
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})

	t.Run("multiple tags across lines", func(t *testing.T) {
		meta := Extract("A wandering ghost.\n<Battler Opacity: 90>\n<Float>\n<Element: Dark>")
		assert.Len(t, meta, 3)
		assert.True(t, meta.IsFlag("Float"))
		assert.Equal(t, " Dark", meta.GetStringOrDefault("Element", ""))
	})

	t.Run("later duplicate wins", func(t *testing.T) {
		meta := Extract("<Battler Opacity: 10><Battler Opacity: 20>")
		assert.Equal(t, " 20", meta.GetStringOrDefault("Battler Opacity", ""))
	})

	t.Run("no tags", func(t *testing.T) {
		assert.Empty(t, Extract("just a description"))
		assert.Empty(t, Extract(""))
	})
}

func TestApply(t *testing.T) {
	record := &entities.Record{Kind: entities.RecordKindState, ID: 3, Note: "<Battler Opacity: 64>"}
	Apply(record)
	assert.Equal(t, float64(64), opacity.ReadTagValue(record))

	record.Note = "<Battler Opacity>"
	Apply(record)
	assert.Equal(t, float64(255), opacity.ReadTagValue(record))

	assert.NotPanics(t, func() { Apply(nil) })
}
