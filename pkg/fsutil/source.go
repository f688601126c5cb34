// Package fsutil reads markup sources and writes formatted output back
// safely: writes go through a temp file and rename, and a source that
// changed on disk after it was read is never overwritten.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrModified indicates the source changed on disk since it was read.
	ErrModified = errors.New("file modified since read")

	// ErrNilSource is returned when a nil Source is passed.
	ErrNilSource = errors.New("nil source")
)

// Source records the on-disk state of a markup file at read time.
type Source struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64
	Hash    [sha256.Size]byte
}

// ReadSource reads path and snapshots its metadata.
func ReadSource(ctx context.Context, path string) ([]byte, *Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read source: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, "stat", err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, "read", err)
	}

	return content, &Source{
		Path:    path,
		Mode:    stat.Mode().Perm(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// Changed reports whether the file no longer matches the snapshot.
// A deleted file counts as changed. Mod time and size are compared first;
// the content hash is only checked when both match.
func (s *Source) Changed(ctx context.Context) (bool, error) {
	if s == nil {
		return false, ErrNilSource
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check source: %w", err)
	}

	stat, err := os.Stat(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", s.Path, err)
	}

	if !stat.ModTime().Equal(s.ModTime) || stat.Size() != s.Size {
		return true, nil
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return sha256.Sum256(content) != s.Hash, nil
}

// Matches reports whether content is byte-identical to what was read.
func (s *Source) Matches(content []byte) bool {
	return s != nil && sha256.Sum256(content) == s.Hash
}

func classify(path, op string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
