package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagtree/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TAGTREE_COLOR", "never")
	t.Setenv("TAGTREE_LOG_LEVEL", "debug")
	t.Setenv("TAGTREE_OUTLINE_INDENT", "3")
	t.Setenv("TAGTREE_OUTLINE_MAX_DEPTH", "2")
	t.Setenv("TAGTREE_OUTLINE_SHOW_ATTRIBUTES", "false")
	t.Setenv("TAGTREE_FMT_JOBS", "4")

	cfg := config.NewConfig()
	applied, err := LoadFromEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"TAGTREE_COLOR",
		"TAGTREE_FMT_JOBS",
		"TAGTREE_LOG_LEVEL",
		"TAGTREE_OUTLINE_INDENT",
		"TAGTREE_OUTLINE_MAX_DEPTH",
		"TAGTREE_OUTLINE_SHOW_ATTRIBUTES",
	}, applied)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Outline.Indent)
	assert.Equal(t, 2, cfg.Outline.MaxDepth)
	assert.False(t, cfg.Outline.AttributesShown())
	assert.Equal(t, 4, cfg.Fmt.Jobs)
	assert.Equal(t, config.FormatText, cfg.Format, "unset variables leave fields alone")
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
		want  string
	}{
		{"bad bool", "TAGTREE_RENDER_DOCTYPE", "maybe", "invalid boolean for TAGTREE_RENDER_DOCTYPE"},
		{"bad int", "TAGTREE_OUTLINE_INDENT", "wide", "invalid integer for TAGTREE_OUTLINE_INDENT"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv(testCase.env, testCase.value)

			_, err := LoadFromEnv(config.NewConfig())
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.want)
		})
	}
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	applied, err := LoadFromEnv(nil)
	require.NoError(t, err)
	assert.Nil(t, applied)
}

func TestGetEnvVarName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TAGTREE_OUTLINE_MAX_DEPTH", GetEnvVarName("outline.max_depth"))
	assert.Equal(t, "TAGTREE_FORMAT", GetEnvVarName("format"))
	assert.Empty(t, GetEnvVarName("nonexistent"))
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	assert.Len(t, vars, len(envMappings))
	assert.Contains(t, vars["TAGTREE_COLOR"], "auto")
}
