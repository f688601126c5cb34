package config

import (
	"bytes"
	"fmt"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting uncommented with its default value.
	// If false, generates a minimal template with settings commented out.
	Full bool
}

// GenerateTemplate creates a configuration file template. The result always
// parses with FromYAML.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	defaults := NewConfig()

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")

	prefix := "# "
	if opts.Full {
		prefix = ""
	}

	formats := make([]string, 0, len(ValidFormats()))
	for _, f := range ValidFormats() {
		formats = append(formats, string(f))
	}

	writeSetting(&buf, prefix, "Output format for 'tagtree parse': "+strings.Join(formats, ", "),
		fmt.Sprintf("format: %s", defaults.Format))
	writeSetting(&buf, prefix, "Styled output: auto, always, or never",
		fmt.Sprintf("color: %s", defaults.Color))
	writeSetting(&buf, prefix, "Log level: debug, info, warn, or error",
		fmt.Sprintf("log_level: %s", defaults.LogLevel))

	buf.WriteString("# Text outline settings\n")
	buf.WriteString(prefix + "outline:\n")
	writeSetting(&buf, prefix+"  ", "Spaces per nesting level",
		fmt.Sprintf("indent: %d", defaults.Outline.Indent))
	writeSetting(&buf, prefix+"  ", "Deepest level printed (0 = unlimited)",
		fmt.Sprintf("max_depth: %d", defaults.Outline.MaxDepth))
	writeSetting(&buf, prefix+"  ", "Print attributes next to tags",
		fmt.Sprintf("show_attributes: %t", defaults.Outline.AttributesShown()))

	buf.WriteString("# HTML rendering settings\n")
	buf.WriteString(prefix + "render:\n")
	writeSetting(&buf, prefix+"  ", "Prefix output with <!doctype html>",
		fmt.Sprintf("doctype: %t", defaults.Render.DoctypeEnabled()))

	buf.WriteString("# Directory walking settings for 'tagtree fmt'\n")
	buf.WriteString(prefix + "fmt:\n")
	writeSetting(&buf, prefix+"  ", "File extensions treated as markup",
		fmt.Sprintf("extensions: [%s]", strings.Join(defaults.Fmt.Extensions, ", ")))
	buf.WriteString("  # Glob patterns to skip\n")
	buf.WriteString("  # exclude: [\"vendor/**\"]\n")
	writeSetting(&buf, prefix+"  ", "Files formatted concurrently (0 = one per CPU)",
		fmt.Sprintf("jobs: %d", defaults.Fmt.Jobs))

	return buf.Bytes(), nil
}

func writeSetting(buf *bytes.Buffer, prefix, comment, line string) {
	indent := strings.TrimPrefix(prefix, "# ")
	buf.WriteString(indent + "# " + comment + "\n")
	buf.WriteString(prefix + line + "\n")
	if indent == "" {
		buf.WriteString("\n")
	}
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# tagtree configuration
# See: https://github.com/yaklabco/tagtree`
}
