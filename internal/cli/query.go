package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/internal/logging"
	"github.com/yaklabco/tagtree/pkg/dom"
)

type queryFlags struct {
	attr string
	deep bool
}

func newQueryCommand(global *globalFlags) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "query [file] --attr key=value",
		Short: "Find elements by attribute",
		Long: `Find elements whose attribute key equals value.

By default only the immediate children of the root are searched. With
--deep the whole tree below the root is searched. Each match is printed in
canonical markup form on its own line.

Examples:
  tagtree query page.tt --attr class=nav
  tagtree query page.tt --attr id=main --deep`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, global, flags, firstArg(args))
		},
	}

	cmd.Flags().StringVar(&flags.attr, "attr", "", "attribute to match, as key=value")
	cmd.Flags().BoolVar(&flags.deep, "deep", false, "search every descendant of the root")

	return cmd
}

func runQuery(cmd *cobra.Command, global *globalFlags, flags *queryFlags, path string) error {
	key, value, err := parseAttrFlag(flags.attr)
	if err != nil {
		return err
	}

	cfg, err := global.loadConfig(cmd, nil)
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

	tree := doc.Tree()
	var matches []dom.NodeID
	if flags.deep {
		matches = tree.FindByAttribute(doc.Root(), key, value)
	} else {
		matches = tree.GetElementsByAttribute(doc.Root(), key, value)
	}

	logging.FromContext(commandContext(cmd)).Debug("query finished",
		logging.FieldPath, in.name,
		logging.FieldMatches, len(matches),
	)

	if len(matches) == 0 {
		return nil
	}

	lines := lo.Map(matches, func(id dom.NodeID, _ int) string {
		return tree.Serialize(id)
	})
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write matches: %w", err)
	}
	return nil
}

// parseAttrFlag splits a key=value query. The value may be empty.
func parseAttrFlag(attr string) (string, string, error) {
	key, value, ok := strings.Cut(attr, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("%w: --attr must be key=value, got %q", ErrUsage, attr)
	}
	return key, value, nil
}
