// Package cli provides the Cobra command structure for tagtree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	noConfig   bool
}

// NewRootCommand creates the root tagtree command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	global := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "tagtree",
		Short: "Parse, query and reformat tag-tree markup documents",
		Long: `tagtree reads a small HTML-like markup language into a document tree.

Documents are a single root tag with nested child tags, or a tag holding one
run of text. Attributes take identifier or quoted values, comments are
skipped and a leading <!...> declaration is ignored. tagtree prints the tree
as an outline, JSON, canonical markup or rendered HTML, queries it by
attribute and reformats files in place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&global.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&global.noConfig, "no-config", false,
		"ignore discovered config files and TAGTREE_* environment variables")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newParseCommand(global))
	rootCmd.AddCommand(newRenderCommand(global))
	rootCmd.AddCommand(newFmtCommand(global))
	rootCmd.AddCommand(newQueryCommand(global))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(global.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// usageArgs wraps a positional argument validator so its failures map to
// the usage exit code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
