package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/tagtree/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Indent is the number of spaces per outline level.
	Indent int

	// MaxDepth limits how deep the outline goes. Zero means unlimited.
	MaxDepth int

	// ShowAttributes prints attributes next to tag names in the outline.
	ShowAttributes bool

	// ShowHeader prints the input path above the outline.
	ShowHeader bool

	// Doctype prefixes HTML output with a doctype.
	Doctype bool

	// Compact uses minified JSON output.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:         os.Stdout,
		Format:         FormatText,
		Color:          "auto",
		Indent:         config.DefaultIndent,
		ShowAttributes: true,
		ShowHeader:     true,
	}
}

// OptionsFromConfig builds Options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, w io.Writer) Options {
	opts := DefaultOptions()
	opts.Writer = w
	if cfg == nil {
		return opts
	}

	opts.Format = Format(cfg.Format)
	opts.Color = string(cfg.Color)
	opts.Indent = cfg.Outline.Indent
	opts.MaxDepth = cfg.Outline.MaxDepth
	opts.ShowAttributes = cfg.Outline.AttributesShown()
	opts.Doctype = cfg.Render.DoctypeEnabled()

	return opts
}
