package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagtree/pkg/config"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	override := &config.Config{
		Format: config.FormatJSON,
		Outline: config.OutlineConfig{
			MaxDepth:       3,
			ShowAttributes: boolPtr(false),
		},
	}

	result := merge(base, override)

	assert.Equal(t, config.FormatJSON, result.Format)
	assert.Equal(t, config.ColorAuto, result.Color, "unset scalars keep base values")
	assert.Equal(t, config.DefaultIndent, result.Outline.Indent)
	assert.Equal(t, 3, result.Outline.MaxDepth)
	assert.False(t, result.Outline.AttributesShown())
	assert.False(t, result.Render.DoctypeEnabled())

	// Inputs are not modified.
	assert.Equal(t, config.FormatText, base.Format)
	assert.True(t, base.Outline.AttributesShown())
	*override.Outline.ShowAttributes = true
	assert.False(t, result.Outline.AttributesShown())
}

func TestMerge_FmtListsReplace(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Fmt.Exclude = []string{"vendor/**"}

	result := merge(base, &config.Config{Fmt: config.FmtConfig{
		Extensions: []string{".xml"},
		Jobs:       2,
	}})

	assert.Equal(t, []string{".xml"}, result.Fmt.Extensions)
	assert.Equal(t, []string{"vendor/**"}, result.Fmt.Exclude, "empty lists keep base values")
	assert.Equal(t, 2, result.Fmt.Jobs)
	assert.Equal(t, config.DefaultExtensions(), base.Fmt.Extensions)
}

func TestMerge_NilInputs(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, cfg, merge(cfg, nil))
	assert.Equal(t, cfg, merge(nil, cfg))
	assert.NotSame(t, cfg, merge(cfg, nil))
	assert.Nil(t, merge(nil, nil))
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	result := MergeAll(
		config.NewConfig(),
		&config.Config{Format: config.FormatJSON, LogLevel: "warn"},
		&config.Config{Format: config.FormatHTML, Render: config.RenderConfig{Doctype: boolPtr(true)}},
	)
	require.NotNil(t, result)

	assert.Equal(t, config.FormatHTML, result.Format)
	assert.Equal(t, "warn", result.LogLevel)
	assert.True(t, result.Render.DoctypeEnabled())
}
