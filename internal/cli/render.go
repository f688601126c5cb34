package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/pkg/config"
)

func newRenderCommand(global *globalFlags) *cobra.Command {
	var doctype bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document as HTML",
		Long: `Render a markup document as HTML.

Unlike the canonical markup form, rendered HTML keeps attributes on every
element, escapes text and writes void elements such as <br> without a
closing tag.

Examples:
  tagtree render page.tt
  tagtree render page.tt --doctype > page.html`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := &config.Config{Format: config.FormatHTML}
			if cmd.Flags().Changed("doctype") {
				overrides.Render.Doctype = &doctype
			}
			return runDocument(cmd, global, overrides, false, firstArg(args))
		},
	}

	cmd.Flags().BoolVar(&doctype, "doctype", false, "prefix output with <!doctype html>")

	return cmd
}
