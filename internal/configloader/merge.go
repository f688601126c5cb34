package configloader

import (
	"slices"

	"github.com/yaklabco/tagtree/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer values: override overwrites base if override is non-nil
//   - Slices: override replaces base if override is non-empty
//   - Debug: can only be switched on
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Debug {
		result.Debug = true
	}

	mergeOutline(&result.Outline, override.Outline)
	if override.Render.Doctype != nil {
		v := *override.Render.Doctype
		result.Render.Doctype = &v
	}

	mergeFmt(&result.Fmt, override.Fmt)

	return result
}

// mergeFmt merges fmt settings. Lists are replaced, never appended.
func mergeFmt(base *config.FmtConfig, override config.FmtConfig) {
	if len(override.Extensions) > 0 {
		base.Extensions = slices.Clone(override.Extensions)
	}
	if len(override.Exclude) > 0 {
		base.Exclude = slices.Clone(override.Exclude)
	}
	if override.Jobs != 0 {
		base.Jobs = override.Jobs
	}
}

// mergeOutline merges outline settings. Indent and MaxDepth treat zero as
// unset, so a file cannot lower MaxDepth back to unlimited once a lower
// layer set it.
func mergeOutline(base *config.OutlineConfig, override config.OutlineConfig) {
	if override.Indent != 0 {
		base.Indent = override.Indent
	}
	if override.MaxDepth != 0 {
		base.MaxDepth = override.MaxDepth
	}
	if override.ShowAttributes != nil {
		v := *override.ShowAttributes
		base.ShowAttributes = &v
	}
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
