package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/tagtree/internal/logging"
	"github.com/yaklabco/tagtree/internal/ui/pretty"
	"github.com/yaklabco/tagtree/pkg/fsutil"
	"github.com/yaklabco/tagtree/pkg/markup"
)

// stdinName labels diagnostics for input read from stdin.
const stdinName = "<stdin>"

// ErrStdinTerminal is returned when a command would read markup from an
// interactive terminal.
var ErrStdinTerminal = errors.New("no input: pass a file or pipe markup on stdin")

// input is one markup source loaded into memory.
type input struct {
	name    string
	content []byte

	// source is nil for stdin.
	source *fsutil.Source
}

// readInput loads path, or stdin when path is "" or "-".
func readInput(cmd *cobra.Command, path string) (*input, error) {
	if path == "" || path == "-" {
		return readStdin(cmd)
	}

	content, src, err := fsutil.ReadSource(commandContext(cmd), path)
	if err != nil {
		return nil, err
	}
	return &input{name: path, content: content, source: src}, nil
}

func readStdin(cmd *cobra.Command) (*input, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, ErrStdinTerminal
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return &input{name: stdinName, content: content}, nil
}

// displayPath is the path shown in output headers; stdin has none.
func (in *input) displayPath() string {
	if in.source == nil {
		return ""
	}
	return in.name
}

// parse builds the document. On failure it prints a caret diagnostic to
// stderr and returns an error wrapping ErrInvalidMarkup.
func (in *input) parse(cmd *cobra.Command, color string) (*markup.Document, error) {
	logger := logging.FromContext(commandContext(cmd))

	doc, err := markup.ParseBytes(in.content)
	if err != nil {
		printMarkupError(cmd, color, in.name, in.content, err)
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidMarkup, in.name, err)
	}

	logger.Debug("parsed document", logging.FieldPath, in.name, logging.FieldNodes, doc.Tree().Len())
	return doc, nil
}

// printMarkupError writes a caret diagnostic for err to stderr.
func printMarkupError(cmd *cobra.Command, color, name string, content []byte, err error) {
	stderr := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(color, stderr))
	fmt.Fprint(stderr, styles.FormatMarkupError(name, string(content), err))
}
