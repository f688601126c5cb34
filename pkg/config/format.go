package config

// OutputFormat specifies how a parsed document is printed.
type OutputFormat string

const (
	// FormatText prints an indented outline of the tree.
	FormatText OutputFormat = "text"
	// FormatJSON prints the tree as nested JSON objects.
	FormatJSON OutputFormat = "json"
	// FormatMarkup prints the canonical serialization.
	FormatMarkup OutputFormat = "markup"
	// FormatHTML prints rendered HTML.
	FormatHTML OutputFormat = "html"
)

// ValidFormats lists every output format.
func ValidFormats() []OutputFormat {
	return []OutputFormat{FormatText, FormatJSON, FormatMarkup, FormatHTML}
}

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatMarkup, FormatHTML:
		return true
	default:
		return false
	}
}

// ColorMode controls styled output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}
