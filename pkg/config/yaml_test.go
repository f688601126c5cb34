package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagtree/pkg/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.DefaultIndent, cfg.Outline.Indent)
	assert.Zero(t, cfg.Outline.MaxDepth)
	assert.True(t, cfg.Outline.AttributesShown())
	assert.False(t, cfg.Render.DoctypeEnabled())
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies pointer fields", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		original.Debug = true

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.NotSame(t, original.Outline.ShowAttributes, clone.Outline.ShowAttributes)
		assert.True(t, clone.Debug)

		*clone.Outline.ShowAttributes = false
		*clone.Render.Doctype = true
		clone.Fmt.Extensions[0] = ".xml"
		assert.True(t, original.Outline.AttributesShown())
		assert.False(t, original.Render.DoctypeEnabled())
		assert.Equal(t, config.DefaultExtensions(), original.Fmt.Extensions)
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(`
format: json
color: never
log_level: debug
outline:
  indent: 4
  max_depth: 3
  show_attributes: false
render:
  doctype: true
fmt:
  extensions: [.tt, .xml]
  exclude: ["vendor/**"]
  jobs: 2
`))
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Outline.Indent)
	assert.Equal(t, 3, cfg.Outline.MaxDepth)
	assert.False(t, cfg.Outline.AttributesShown())
	assert.True(t, cfg.Render.DoctypeEnabled())
	assert.Equal(t, []string{".tt", ".xml"}, cfg.Fmt.Extensions)
	assert.Equal(t, []string{"vendor/**"}, cfg.Fmt.Exclude)
	assert.Equal(t, 2, cfg.Fmt.Jobs)
}

func TestFromYAML_Empty(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "# only a comment\n"} {
		cfg, err := config.FromYAML([]byte(input))
		require.NoError(t, err, "input %q", input)
		assert.Empty(t, cfg.Format)
		assert.Nil(t, cfg.Outline.ShowAttributes)
	}
}

func TestFromYAML_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("format: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")

	_, err = config.FromYAML([]byte("formt: json\n"))
	require.Error(t, err, "unknown keys are rejected")
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Format = config.FormatHTML
	original.Outline.MaxDepth = 5
	original.Debug = true

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "debug:", "CLI-only fields are not persisted")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	original.Debug = false
	assert.Equal(t, original, parsed)
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	data, err := config.NewConfig().ToYAMLWithHeader("# header")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# header\n\n"))

	var nilCfg *config.Config
	data, err = nilCfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal template parses to an empty config", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), config.DefaultTemplateHeader()))
		assert.Contains(t, string(data), "# format: text")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("full template parses to the defaults", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
		require.NoError(t, err)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.NewConfig(), cfg)
	})
}
