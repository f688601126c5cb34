package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/tagtree/pkg/config"
)

// newProject creates a temp directory marked as a VCS root so the upward
// search never leaves it.
func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func isolatedOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolatedOptions(newProject(t)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("expected format %q, got %q", config.FormatText, result.Config.Format)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".tagtree.yml"), `
format: json
outline:
  indent: 4
`)

	result, err := Load(context.Background(), isolatedOptions(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format %q, got %q", config.FormatJSON, result.Config.Format)
	}
	if result.Config.Outline.Indent != 4 {
		t.Errorf("expected indent 4, got %d", result.Config.Outline.Indent)
	}
	if result.Config.Color != config.ColorAuto {
		t.Errorf("expected default color to survive, got %q", result.Config.Color)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ProjectConfigFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".tagtree.yaml"), "color: never\n")
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolatedOptions(sub))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Color != config.ColorNever {
		t.Errorf("expected color never, got %q", result.Config.Color)
	}
	if result.Paths.Project != filepath.Join(dir, ".tagtree.yaml") {
		t.Errorf("unexpected project path %q", result.Paths.Project)
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".tagtree.yml"), "format: json\nlog_level: warn\n")
	explicit := filepath.Join(dir, "custom.yml")
	writeFile(t, explicit, "format: html\n")

	opts := isolatedOptions(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatHTML {
		t.Errorf("expected explicit format html, got %q", result.Config.Format)
	}
	if result.Config.LogLevel != "warn" {
		t.Errorf("expected project log level to survive, got %q", result.Config.LogLevel)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != explicit {
		t.Errorf("unexpected load order %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverridesEverything(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".tagtree.yml"), "format: json\n")

	opts := isolatedOptions(dir)
	opts.CLIConfig = &config.Config{Format: config.FormatMarkup, Debug: true}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatMarkup {
		t.Errorf("expected CLI format markup, got %q", result.Config.Format)
	}
	if !result.Config.Debug {
		t.Error("expected debug from CLI")
	}
}

func TestLoad_UserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeFile(t, filepath.Join(xdg, "tagtree", "config.yaml"), "color: always\nformat: json\n")

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".tagtree.yml"), "format: markup\n")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreEnv:          true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Color != config.ColorAlways {
		t.Errorf("expected user color always, got %q", result.Config.Color)
	}
	if result.Config.Format != config.FormatMarkup {
		t.Errorf("expected project format to win over user, got %q", result.Config.Format)
	}
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	t.Setenv("TAGTREE_FORMAT", "html")
	t.Setenv("TAGTREE_RENDER_DOCTYPE", "true")

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".tagtree.yml"), "format: json\n")

	opts := isolatedOptions(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatHTML {
		t.Errorf("expected env format html, got %q", result.Config.Format)
	}
	if !result.Config.Render.DoctypeEnabled() {
		t.Error("expected doctype enabled from env")
	}
	if len(result.EnvApplied) != 2 {
		t.Errorf("expected 2 env vars applied, got %v", result.EnvApplied)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing explicit file", func(t *testing.T) {
		t.Parallel()

		opts := isolatedOptions(newProject(t))
		opts.ExplicitPath = filepath.Join(t.TempDir(), "nope.yml")

		_, err := Load(context.Background(), opts)
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)
		writeFile(t, filepath.Join(dir, ".tagtree.yml"), "format: [oops")

		_, err := Load(context.Background(), isolatedOptions(dir))
		if err == nil || !strings.Contains(err.Error(), "load project config") {
			t.Fatalf("expected project config error, got %v", err)
		}
	})

	t.Run("invalid value names the file", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)
		path := filepath.Join(dir, ".tagtree.yml")
		writeFile(t, path, "format: sarif\n")

		_, err := Load(context.Background(), isolatedOptions(dir))

		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if validationErr.FilePath != path || validationErr.Field != "format" {
			t.Errorf("unexpected validation error %+v", validationErr)
		}
	})

	t.Run("invalid CLI value", func(t *testing.T) {
		t.Parallel()

		opts := isolatedOptions(newProject(t))
		opts.CLIConfig = &config.Config{Color: "rainbow"}

		_, err := Load(context.Background(), opts)

		var validationErr *ValidationError
		if !errors.As(err, &validationErr) || validationErr.Field != "color" {
			t.Fatalf("expected color validation error, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Load(ctx, isolatedOptions(newProject(t)))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestLoad_WarningsCollected(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".tagtree.yml"), "outline:\n  indent: 12\n")

	result, err := Load(context.Background(), isolatedOptions(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected an indent warning")
	}
	if !strings.Contains(result.Warnings[0], "outline.indent") {
		t.Errorf("unexpected warning %q", result.Warnings[0])
	}
}
