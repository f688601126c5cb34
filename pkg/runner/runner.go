package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/yaklabco/tagtree/pkg/dom"
	"github.com/yaklabco/tagtree/pkg/fsutil"
	"github.com/yaklabco/tagtree/pkg/markup"
)

// ErrAttributeLoss marks content whose canonical form would drop attributes.
var ErrAttributeLoss = errors.New("canonical form drops attributes")

// FormatFunc turns file content into its formatted form. An error means the
// content is not valid markup.
type FormatFunc func(content []byte) ([]byte, error)

// Canonical parses content and returns its serialized form followed by a
// newline. Content after the root tag is an error, never dropped.
func Canonical(content []byte) ([]byte, error) {
	doc, err := markup.ParseStrict(string(content))
	if err != nil {
		return nil, err
	}
	return []byte(doc.String() + "\n"), nil
}

// GuardFunc vets original content before its formatted form is written.
// A non-nil error leaves the file untouched.
type GuardFunc func(content []byte) error

// KeepsAttributes fails with ErrAttributeLoss when content holds an element
// with both attributes and children. Canonical drops such attributes.
func KeepsAttributes(content []byte) error {
	doc, err := markup.ParseBytes(content)
	if err != nil {
		return err
	}

	tree := doc.Tree()
	lossy := tree.FindAll(doc.Root(), func(id dom.NodeID) bool {
		return tree.HasChildren(id) && len(tree.Attrs(id)) > 0
	})
	if len(lossy) == 0 {
		return nil
	}

	tags := lo.Map(lossy, func(id dom.NodeID, _ int) string {
		return "<" + tree.TagName(id) + ">"
	})
	return fmt.Errorf("%w on %s", ErrAttributeLoss, strings.Join(tags, ", "))
}

// Runner orchestrates multi-file formatting.
type Runner struct {
	// Format produces the formatted form of each file.
	Format FormatFunc

	// Guard, if set, is consulted in write mode before a changed file is
	// replaced.
	Guard GuardFunc
}

// New creates a Runner using format. A nil format selects Canonical guarded
// by KeepsAttributes.
func New(format FormatFunc) *Runner {
	if format == nil {
		return &Runner{Format: Canonical, Guard: KeepsAttributes}
	}
	return &Runner{Format: format}
}

// Run discovers files under opts.Paths and formats them concurrently.
// Outcomes are returned in path order regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Mode)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; key by path and rebuild in file order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker formats files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, mode Mode) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, mode)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile reads, formats and, in write mode, replaces one file.
func (r *Runner) processFile(ctx context.Context, path string, mode Mode) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, src, err := fsutil.ReadSource(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Content = content

	formatted, err := r.Format(content)
	if err != nil {
		outcome.ParseError = err
		return outcome
	}
	outcome.Formatted = formatted
	outcome.Changed = !bytes.Equal(content, formatted)

	if mode != ModeWrite || !outcome.Changed {
		return outcome
	}

	if r.Guard != nil {
		if err := r.Guard(content); err != nil {
			outcome.Skipped = true
			outcome.SkipReason = err
			return outcome
		}
	}

	written, err := fsutil.Replace(ctx, src, formatted)
	switch {
	case errors.Is(err, fsutil.ErrModified):
		outcome.Skipped = true
		outcome.SkipReason = err
	case err != nil:
		outcome.Error = fmt.Errorf("write %s: %w", path, err)
	default:
		outcome.Written = written
	}

	return outcome
}
