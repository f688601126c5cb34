// Package runner formats many markup files concurrently.
package runner

import "github.com/yaklabco/tagtree/pkg/config"

// Mode selects what happens to a file once it has been formatted.
type Mode int

const (
	// ModePrint keeps the formatted text in the outcome for the caller to print.
	ModePrint Mode = iota

	// ModeCheck only reports whether each file would change.
	ModeCheck

	// ModeWrite replaces changed files on disk.
	ModeWrite
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModePrint:
		return "print"
	case ModeCheck:
		return "check"
	case ModeWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) picked up
	// when walking directories. Files named explicitly in Paths are always
	// processed. Defaults to config.DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns, relative to WorkingDir, used to skip
	// files or directories during the walk.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Mode selects print, check or write behavior.
	Mode Mode
}

// OptionsFromConfig builds options from the fmt section of cfg.
func OptionsFromConfig(cfg *config.Config, paths []string, mode Mode) Options {
	opts := Options{Paths: paths, Mode: mode}
	if cfg != nil {
		opts.Extensions = cfg.Fmt.Extensions
		opts.ExcludeGlobs = cfg.Fmt.Exclude
		opts.Jobs = cfg.Fmt.Jobs
	}
	return opts
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
