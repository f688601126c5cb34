package cli

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/internal/configloader"
	"github.com/yaklabco/tagtree/internal/ui/pretty"
)

type exitCodeEntry struct {
	code    int
	meaning string
}

// exitCodeHelp lists the exit codes shown in the root help.
var exitCodeHelp = []exitCodeEntry{
	{ExitSuccess, "success"},
	{ExitInvalidMarkup, "a document failed to tokenize or parse"},
	{ExitCheckFailed, "fmt --check found documents that need formatting"},
	{ExitInvalidUsage, "invalid flags or arguments"},
	{ExitConfigError, "configuration could not be loaded"},
	{ExitInternalError, "internal error"},
	{ExitIOError, "a file could not be read or written"},
}

// flagLinePattern splits a pflag usage line into indent, flag names with
// type, and description. pflag separates the last two by at least two spaces.
var flagLinePattern = regexp.MustCompile(`^(\s*)(-\S.*?)\s{2,}(\S.*)$`)

// helpTheme maps help elements onto the shared output palette.
type helpTheme struct {
	command    lipgloss.Style
	heading    lipgloss.Style
	subcommand lipgloss.Style
	flag       lipgloss.Style
	dim        lipgloss.Style
}

func newHelpTheme(styles *pretty.Styles) helpTheme {
	return helpTheme{
		command:    styles.Tag,
		heading:    styles.SummaryTitle,
		subcommand: styles.AttrValue,
		flag:       styles.AttrKey,
		dim:        styles.Dim,
	}
}

// HelpFormatter renders cobra help and usage with lipgloss styles. The root
// command's help also lists environment variables and exit codes.
type HelpFormatter struct {
	theme helpTheme
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	colorEnabled := pretty.IsColorEnabled(colorMode, writer)
	return &HelpFormatter{theme: newHelpTheme(pretty.NewStyles(colorEnabled))}
}

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}

{{- if not .HasParent}}

{{ heading "Environment:" }}
{{ environment }}

{{ heading "Exit Codes:" }}
{{ exitCodes }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}` + usageTemplate

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"command":                 h.theme.command.Render,
		"heading":                 h.theme.heading.Render,
		"subcommand":              h.theme.subcommand.Render,
		"dim":                     h.theme.dim.Render,
		"flags":                   h.flagUsages,
		"environment":             h.environment,
		"exitCodes":               h.exitCodes,
		"join":                    strings.Join,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

// ApplyToCommand installs the styled templates on cmd. Subcommands inherit
// them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.funcs()
	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := usage.Execute(command.OutOrStderr(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := help.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// flagUsages styles the output of pflag's FlagUsages line by line.
func (h *HelpFormatter) flagUsages(usages string) string {
	lines := strings.Split(strings.TrimSuffix(usages, "\n"), "\n")
	return strings.Join(lo.Map(lines, func(line string, _ int) string {
		return h.flagLine(line)
	}), "\n")
}

// flagLine styles flag names and dims the value type. Continuation lines of
// wrapped descriptions pass through unchanged.
func (h *HelpFormatter) flagLine(line string) string {
	match := flagLinePattern.FindStringSubmatch(line)
	if match == nil {
		return line
	}
	indent, names, description := match[1], match[2], match[3]

	styled := lo.Map(strings.Fields(names), func(field string, _ int) string {
		if !strings.HasPrefix(field, "-") {
			return h.theme.dim.Render(field)
		}
		name, comma := strings.CutSuffix(field, ",")
		if comma {
			return h.theme.flag.Render(name) + ","
		}
		return h.theme.flag.Render(name)
	})

	return indent + strings.Join(styled, " ") + "   " + description
}

// environment lists every TAGTREE_* variable the config loader reads.
func (h *HelpFormatter) environment() string {
	vars := configloader.ListEnvVars()
	names := lo.Keys(vars)
	slices.Sort(names)

	width := len(slices.MaxFunc(names, func(a, b string) int { return len(a) - len(b) }))
	lines := lo.Map(names, func(name string, _ int) string {
		return "  " + h.theme.flag.Render(rpad(name, width)) + "   " + vars[name]
	})
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) exitCodes() string {
	lines := lo.Map(exitCodeHelp, func(entry exitCodeEntry, _ int) string {
		return "  " + h.theme.subcommand.Render(fmt.Sprintf("%-3d", entry.code)) + "  " + entry.meaning
	})
	return strings.Join(lines, "\n")
}

// rpad pads str with spaces to at least padding bytes.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
