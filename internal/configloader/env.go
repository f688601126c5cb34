package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/samber/lo"

	"github.com/yaklabco/tagtree/pkg/config"
)

// envVarPrefix is the prefix for all tagtree environment variables.
const envVarPrefix = "TAGTREE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines an environment variable to config field mapping.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":                  {"format", envTypeString, "Output format: text, json, markup, or html"},
	"COLOR":                   {"color", envTypeString, "Styled output: auto, always, or never"},
	"LOG_LEVEL":               {"log_level", envTypeString, "Log level: debug, info, warn, or error"},
	"OUTLINE_INDENT":          {"outline.indent", envTypeInt, "Spaces per outline nesting level"},
	"OUTLINE_MAX_DEPTH":       {"outline.max_depth", envTypeInt, "Deepest outline level printed (0 = unlimited)"},
	"OUTLINE_SHOW_ATTRIBUTES": {"outline.show_attributes", envTypeBool, "Print attributes in the outline: true or false"},
	"RENDER_DOCTYPE":          {"render.doctype", envTypeBool, "Prefix rendered HTML with a doctype: true or false"},
	"FMT_JOBS":                {"fmt.jobs", envTypeInt, "Files formatted concurrently (0 = one per CPU)"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with TAGTREE_ (e.g., TAGTREE_FORMAT).
// It returns the names of the variables that were applied, sorted.
func LoadFromEnv(cfg *config.Config) ([]string, error) {
	if cfg == nil {
		return nil, nil
	}

	suffixes := lo.Keys(envMappings)
	slices.Sort(suffixes)

	var applied []string
	for _, envSuffix := range suffixes {
		mapping := envMappings[envSuffix]
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return nil, err
		}
		applied = append(applied, envVar)
	}

	return applied, nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "outline.show_attributes":
		cfg.Outline.ShowAttributes = &value
	case "render.doctype":
		cfg.Render.Doctype = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "outline.indent":
		cfg.Outline.Indent = value
	case "outline.max_depth":
		cfg.Outline.MaxDepth = value
	case "fmt.jobs":
		cfg.Fmt.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return lo.MapEntries(envMappings, func(suffix string, m envMapping) (string, string) {
		return envVarPrefix + suffix, m.description
	})
}
