package runner

// FileOutcome is the result of formatting one file.
type FileOutcome struct {
	// Path is the absolute path of the file.
	Path string

	// Content is the file as read from disk.
	Content []byte

	// Formatted is the canonical text. Nil when the file failed to parse.
	Formatted []byte

	// Changed reports whether Formatted differs from Content.
	Changed bool

	// Written is set when the file was replaced on disk.
	Written bool

	// Skipped is set when a changed file was left alone in write mode.
	// SkipReason says why.
	Skipped bool

	// SkipReason wraps fsutil.ErrModified when the file changed on disk
	// while it was being formatted, or ErrAttributeLoss when writing would
	// drop attributes.
	SkipReason error

	// ParseError is set when the content is not valid markup.
	ParseError error

	// Error is set if the file could not be read or written.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files read and parsed successfully.
	FilesProcessed int

	// FilesChanged is the number of files whose canonical form differs.
	FilesChanged int

	// FilesWritten is the number of files replaced on disk.
	FilesWritten int

	// FilesSkipped is the number of changed files left alone in write mode.
	FilesSkipped int

	// FilesInvalid is the number of files that failed to parse.
	FilesInvalid int

	// FilesErrored is the number of files that could not be read or written.
	FilesErrored int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasInvalid reports whether any file failed to parse.
func (r *Result) HasInvalid() bool {
	return r != nil && r.Stats.FilesInvalid > 0
}

// HasChanges reports whether any file is not in canonical form.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// FirstError returns the first read or write error in path order.
func (r *Result) FirstError() error {
	if r == nil {
		return nil
	}
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			return outcome.Error
		}
	}
	return nil
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.ParseError != nil:
		r.Stats.FilesInvalid++
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	if outcome.Skipped {
		r.Stats.FilesSkipped++
	}
}
