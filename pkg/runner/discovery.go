package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Discover finds markup files for opts. Directories are walked and filtered
// by extension and exclude globs; files named directly are always kept.
// Exclude globs match paths relative to either WorkingDir or the directory
// being walked.
// It returns a deterministically sorted list of absolute file paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	exclude, err := newExcluder(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(file string) {
		if _, ok := seen[file]; !ok {
			seen[file] = struct{}{}
			files = append(files, file)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			add(absPath)
			continue
		}

		discovered, err := walkDirectory(ctx, absPath, workDir, exclude, opts)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	slices.Sort(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively walks a directory and returns matching files.
func walkDirectory(ctx context.Context, root, workDir string, exclude *excluder, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		excluded := exclude.match(relativePath(workDir, path), entry.IsDir()) ||
			exclude.match(relativePath(root, path), entry.IsDir())

		if entry.IsDir() {
			// Hidden directories are skipped, except the root itself.
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if excluded {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Unreadable symlink targets are skipped.
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the target; WalkDir does not descend into a symlink root.
				subFiles, err := walkDirectory(ctx, realPath, workDir, exclude, opts)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if hasMatchingExtension(path, opts.effectiveExtensions()) && !excluded {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func relativePath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// hasMatchingExtension checks if the file has one of the extensions.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// excluder matches slash-separated relative paths against exclude globs.
// "*" stops at a slash and "**" crosses slashes. A pattern without a slash
// is also tried against the base name, so "*.bak" matches anywhere.
type excluder struct {
	globs    []glob.Glob
	baseName []bool
}

func newExcluder(patterns []string) (*excluder, error) {
	ex := &excluder{}
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		ex.globs = append(ex.globs, g)
		ex.baseName = append(ex.baseName, !strings.Contains(pattern, "/"))
	}
	return ex, nil
}

// match reports whether relPath is excluded. Directories also match
// patterns such as "vendor/**" through their trailing slash form.
func (e *excluder) match(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)
	for i, g := range e.globs {
		switch {
		case g.Match(relPath):
			return true
		case isDir && g.Match(relPath+"/"):
			return true
		case e.baseName[i] && g.Match(path.Base(relPath)):
			return true
		}
	}
	return false
}
