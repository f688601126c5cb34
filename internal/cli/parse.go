package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/pkg/config"
	"github.com/yaklabco/tagtree/pkg/reporter"
)

// outputFlags holds the flags that shape document output.
type outputFlags struct {
	format       string
	indent       int
	maxDepth     int
	noAttributes bool
	doctype      bool
	compact      bool
}

func newParseCommand(global *globalFlags) *cobra.Command {
	flags := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and print its tree",
		Long: `Parse a markup document and print the resulting tree.

Reads the named file, or stdin when no file (or "-") is given. Parse errors
are reported with the offending line and a caret, and exit with status 1.

Examples:
  tagtree parse page.tt                  Print an indented outline
  tagtree parse page.tt --format json    Print the tree as JSON
  tagtree parse --format markup < page.tt
  tagtree parse page.tt --max-depth 2 --no-attributes`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := flags.overrides(cmd)
			if err != nil {
				return err
			}
			return runDocument(cmd, global, overrides, flags.compact, firstArg(args))
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, markup, html")
	cmd.Flags().IntVar(&flags.indent, "indent", config.DefaultIndent, "spaces per outline level")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0, "deepest outline level to print (0 = unlimited)")
	cmd.Flags().BoolVar(&flags.noAttributes, "no-attributes", false, "hide attributes in the outline")
	cmd.Flags().BoolVar(&flags.doctype, "doctype", false, "prefix html output with a doctype")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")

	return cmd
}

// overrides returns the config values set explicitly on the command line.
func (f *outputFlags) overrides(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		format, err := reporter.ParseFormat(f.format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		cfg.Format = config.OutputFormat(format)
	}
	if changed("indent") {
		cfg.Outline.Indent = f.indent
	}
	if changed("max-depth") {
		cfg.Outline.MaxDepth = f.maxDepth
	}
	if changed("no-attributes") {
		show := !f.noAttributes
		cfg.Outline.ShowAttributes = &show
	}
	if changed("doctype") {
		doctype := f.doctype
		cfg.Render.Doctype = &doctype
	}

	return cfg, nil
}

// runDocument parses one input and reports it in the configured format.
func runDocument(cmd *cobra.Command, global *globalFlags, overrides *config.Config, compact bool, path string) error {
	cfg, err := global.loadConfig(cmd, overrides)
	if err != nil {
		return err
	}

	in, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	doc, err := in.parse(cmd, string(cfg.Color))
	if err != nil {
		return err
	}

	opts := reporter.OptionsFromConfig(cfg, cmd.OutOrStdout())
	opts.Compact = compact

	rep, err := reporter.New(opts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	input := reporter.Input{Path: in.displayPath(), Tree: doc.Tree()}
	if err := rep.Report(commandContext(cmd), input); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
