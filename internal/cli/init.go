package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/internal/logging"
	"github.com/yaklabco/tagtree/pkg/config"
	"github.com/yaklabco/tagtree/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// defaultConfigFile is the file init writes when --output is not given.
const defaultConfigFile = ".tagtree.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new tagtree configuration file",
		Long: `Create a new .tagtree.yml configuration file in the current directory.

The minimal template lists every setting commented out with its default.
The full template writes every setting with its default value.

Examples:
  tagtree init                       Create minimal .tagtree.yml
  tagtree init --full                Write every setting uncommented
  tagtree init --output custom.yml   Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags, logging.NewInteractive())
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every setting uncommented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .tagtree.yml)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags, logger *log.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}
