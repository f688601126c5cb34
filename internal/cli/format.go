package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/internal/logging"
	"github.com/yaklabco/tagtree/internal/ui/pretty"
	"github.com/yaklabco/tagtree/pkg/config"
	"github.com/yaklabco/tagtree/pkg/diff"
	"github.com/yaklabco/tagtree/pkg/runner"
)

type fmtFlags struct {
	write          bool
	check          bool
	diff           bool
	jobs           int
	exclude        []string
	followSymlinks bool
}

func newFmtCommand(global *globalFlags) *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Rewrite documents in canonical form",
		Long: `Print documents in canonical form: attributes sorted and single-quoted,
empty elements self-closed and no whitespace between tags.

Note that elements with children lose their attributes in canonical form.

Paths may be files or directories. Directories are walked for files with
the configured extensions (.tt and .tagtree by default); hidden entries and
--exclude matches are skipped. With no paths, stdin is read.

With --write, files are replaced in place through a temp file and rename.
A file edited since it was read is left alone, and so is a file with an
element that carries both attributes and children, since writing it would
lose those attributes. With --check, files that
are not already canonical are listed and tagtree exits with status 3.
With --diff, a unified diff is printed for each file that would change.

Examples:
  tagtree fmt page.tt               Print the canonical form
  tagtree fmt --write .             Reformat every document under .
  tagtree fmt --check -j 4 docs     Fail if any file would change
  tagtree fmt -d page.tt            Show what formatting would change`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, global, flags, args)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the result back to each file")
	cmd.Flags().BoolVarP(&flags.check, "check", "c", false, "list files that are not formatted and exit 3")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print unified diffs instead of formatted output")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "files formatted concurrently (0 = one per CPU)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip when walking directories")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "walk into symlinked directories")

	return cmd
}

// fmtFile is the outcome of formatting one input, from stdin or disk.
type fmtFile struct {
	name      string
	content   []byte
	formatted []byte
	changed   bool
	written   bool
	skipped   bool
	skipWhy   error
	parseErr  error
	err       error
}

func (f *fmtFlags) mode() runner.Mode {
	switch {
	case f.write:
		return runner.ModeWrite
	case f.check:
		return runner.ModeCheck
	default:
		return runner.ModePrint
	}
}

func (f *fmtFlags) overrides(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}
	if cmd.Flags().Changed("jobs") {
		cfg.Fmt.Jobs = f.jobs
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Fmt.Exclude = f.exclude
	}
	return cfg
}

func runFmt(cmd *cobra.Command, global *globalFlags, flags *fmtFlags, paths []string) error {
	if flags.write && flags.check {
		return fmt.Errorf("%w: --write and --check cannot be combined", ErrUsage)
	}
	if flags.write && flags.diff {
		return fmt.Errorf("%w: --write and --diff cannot be combined", ErrUsage)
	}
	if flags.write && len(paths) == 0 {
		return fmt.Errorf("%w: --write needs at least one path", ErrUsage)
	}

	cfg, err := global.loadConfig(cmd, flags.overrides(cmd))
	if err != nil {
		return err
	}

	var files []fmtFile
	if len(paths) == 0 {
		file, err := formatStdin(cmd)
		if err != nil {
			return err
		}
		files = []fmtFile{file}
	} else {
		files, err = formatPaths(cmd, cfg, flags, paths)
		if err != nil {
			return err
		}
	}

	return reportFmt(cmd, cfg, flags, files)
}

func formatStdin(cmd *cobra.Command) (fmtFile, error) {
	in, err := readStdin(cmd)
	if err != nil {
		return fmtFile{}, err
	}

	file := fmtFile{name: in.name, content: in.content}
	file.formatted, file.parseErr = runner.Canonical(in.content)
	file.changed = file.parseErr == nil && !bytes.Equal(file.formatted, in.content)
	return file, nil
}

func formatPaths(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags, paths []string) ([]fmtFile, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	opts := runner.OptionsFromConfig(cfg, paths, flags.mode())
	opts.FollowSymlinks = flags.followSymlinks

	result, err := runner.New(nil).Run(ctx, opts)
	if err != nil {
		return nil, err
	}

	wd, _ := os.Getwd()
	logger.Debug("fmt run finished",
		logging.FieldWorkingDir, wd,
		logging.FieldPaths, paths,
		logging.FieldFiles, result.Stats.FilesDiscovered,
		logging.FieldChanged, result.Stats.FilesChanged,
		logging.FieldMode, opts.Mode,
	)

	files := make([]fmtFile, 0, len(result.Files))
	for _, outcome := range result.Files {
		files = append(files, fmtFile{
			name:      displayName(wd, outcome.Path),
			content:   outcome.Content,
			formatted: outcome.Formatted,
			changed:   outcome.Changed,
			written:   outcome.Written,
			skipped:   outcome.Skipped,
			skipWhy:   outcome.SkipReason,
			parseErr:  outcome.ParseError,
			err:       outcome.Error,
		})
	}
	return files, nil
}

// displayName shows path relative to wd when it lies below it.
func displayName(wd, path string) string {
	if wd == "" {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func reportFmt(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags, files []fmtFile) error {
	logger := logging.FromContext(commandContext(cmd))
	stdout := cmd.OutOrStdout()
	outStyles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), stdout))
	errStyles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.ErrOrStderr()))
	stats := pretty.FmtStats{Written: flags.write}

	var firstErr error
	errored := 0

	for _, file := range files {
		if file.err != nil {
			logger.Error("cannot format file", logging.FieldPath, file.name, logging.FieldError, file.err)
			if firstErr == nil {
				firstErr = file.err
			}
			errored++
			continue
		}
		stats.FilesChecked++

		if file.parseErr != nil {
			printMarkupError(cmd, string(cfg.Color), file.name, file.content, file.parseErr)
			stats.FilesFailed++
			continue
		}

		switch {
		case flags.write:
			if file.skipped {
				stats.FilesSkipped++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n",
					errStyles.Warning.Render("left alone"), errStyles.FilePath.Render(file.name), file.skipWhy)
			}
			if file.written {
				stats.FilesChanged++
			}
			logger.Debug("formatted file", logging.FieldPath, file.name, logging.FieldWrite, file.written)
		case flags.diff:
			if file.changed {
				stats.FilesChanged++
				fmt.Fprint(stdout, outStyles.FormatDiff(diff.Compute(file.name, file.content, file.formatted)))
			}
		case flags.check:
			if file.changed {
				stats.FilesChanged++
				fmt.Fprintln(stdout, file.name)
			}
		default:
			if _, err := stdout.Write(file.formatted); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}

	if flags.write || flags.check {
		fmt.Fprint(cmd.ErrOrStderr(), errStyles.FormatFmtSummary(stats))
	}

	switch {
	case firstErr != nil:
		return fmt.Errorf("%d of %d files could not be formatted: %w", errored, len(files), firstErr)
	case stats.FilesFailed > 0:
		return fmt.Errorf("%w: %d of %d inputs failed to parse", ErrInvalidMarkup, stats.FilesFailed, stats.FilesChecked)
	case flags.check && stats.FilesChanged > 0:
		return fmt.Errorf("%w: %d of %d", ErrCheckFailed, stats.FilesChanged, stats.FilesChecked)
	default:
		return nil
	}
}
