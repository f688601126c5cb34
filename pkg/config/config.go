// Package config defines core configuration types for tagtree.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

// Config is the root configuration structure.
type Config struct {
	// Format selects the output of the parse command.
	Format OutputFormat `yaml:"format"`

	// Color controls styled output: auto, always or never.
	Color ColorMode `yaml:"color"`

	// LogLevel is the default log level: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Outline configures the text outline format.
	Outline OutlineConfig `yaml:"outline"`

	// Render configures HTML output.
	Render RenderConfig `yaml:"render"`

	// Fmt configures file discovery for the fmt command.
	Fmt FmtConfig `yaml:"fmt"`

	// CLI-level options (not persisted to config files).

	// Debug forces debug logging.
	Debug bool `yaml:"-"`
}

// OutlineConfig controls the indented tree outline.
type OutlineConfig struct {
	// Indent is the number of spaces per nesting level.
	Indent int `yaml:"indent"`

	// MaxDepth stops the outline below this depth. Zero means unlimited.
	MaxDepth int `yaml:"max_depth"`

	// ShowAttributes prints attributes next to each tag.
	ShowAttributes *bool `yaml:"show_attributes,omitempty"`
}

// RenderConfig controls HTML rendering.
type RenderConfig struct {
	// Doctype prefixes rendered HTML with <!doctype html>.
	Doctype *bool `yaml:"doctype,omitempty"`
}

// FmtConfig controls which files fmt picks up when walking directories.
type FmtConfig struct {
	// Extensions are the file extensions (with leading dot) treated as markup.
	Extensions []string `yaml:"extensions,omitempty"`

	// Exclude lists glob patterns for files and directories to skip.
	Exclude []string `yaml:"exclude,omitempty"`

	// Jobs is the number of files formatted concurrently. Zero means one per CPU.
	Jobs int `yaml:"jobs"`
}

// Default values.
const (
	DefaultIndent   = 2
	DefaultLogLevel = "info"
)

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	showAttrs := true
	doctype := false

	return &Config{
		Format:   FormatText,
		Color:    ColorAuto,
		LogLevel: DefaultLogLevel,
		Outline: OutlineConfig{
			Indent:         DefaultIndent,
			MaxDepth:       0,
			ShowAttributes: &showAttrs,
		},
		Render: RenderConfig{
			Doctype: &doctype,
		},
		Fmt: FmtConfig{
			Extensions: DefaultExtensions(),
		},
	}
}

// DefaultExtensions returns the file extensions fmt treats as markup.
func DefaultExtensions() []string {
	return []string{".tt", ".tagtree"}
}

// AttributesShown reports whether the outline prints attributes.
// Unset means shown.
func (o OutlineConfig) AttributesShown() bool {
	return o.ShowAttributes == nil || *o.ShowAttributes
}

// DoctypeEnabled reports whether rendered HTML starts with a doctype.
func (r RenderConfig) DoctypeEnabled() bool {
	return r.Doctype != nil && *r.Doctype
}
