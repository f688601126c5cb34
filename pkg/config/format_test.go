package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/tagtree/pkg/config"
)

func TestOutputFormat_IsValid(t *testing.T) {
	t.Parallel()

	for _, f := range config.ValidFormats() {
		assert.True(t, f.IsValid(), f)
	}
	assert.False(t, config.OutputFormat("sarif").IsValid())
	assert.False(t, config.OutputFormat("").IsValid())
}

func TestColorMode_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode config.ColorMode
		want bool
	}{
		{config.ColorAuto, true},
		{config.ColorAlways, true},
		{config.ColorNever, true},
		{"sometimes", false},
		{"", false},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, testCase.mode.IsValid(), testCase.mode)
	}
}
