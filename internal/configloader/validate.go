package configloader

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/tagtree/internal/logging"
	"github.com/yaklabco/tagtree/pkg/config"
)

// maxReasonableIndent is the outline indent above which a warning is raised.
const maxReasonableIndent = 8

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "outline.indent").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, markup, html", cfg.Format),
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.LogLevel != "" && !logging.ValidLevel(cfg.LogLevel) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	validateOutline(cfg.Outline, result)
	validateFmt(cfg.Fmt, result)

	return result
}

// validateFmt checks the fmt discovery settings.
func validateFmt(fmtCfg config.FmtConfig, result *ValidationResult) {
	for _, ext := range fmtCfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "fmt.extensions",
				Value:   ext,
				Message: fmt.Sprintf("extension %q must start with a dot", ext),
			})
		}
	}

	for _, pattern := range fmtCfg.Exclude {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "fmt.exclude",
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob %q", pattern),
			})
		}
	}

	if fmtCfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "fmt.jobs",
			Value:   fmtCfg.Jobs,
			Message: "jobs must be >= 0 (0 means one per CPU)",
		})
	}
}

// validateOutline checks the outline settings.
func validateOutline(outline config.OutlineConfig, result *ValidationResult) {
	switch {
	case outline.Indent < 0:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "outline.indent",
			Value:   outline.Indent,
			Message: "indent must be >= 0",
		})
	case outline.Indent > maxReasonableIndent:
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "outline.indent",
			Value:   outline.Indent,
			Message: fmt.Sprintf("indent %d is unusually wide", outline.Indent),
		})
	}

	if outline.MaxDepth < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "outline.max_depth",
			Value:   outline.MaxDepth,
			Message: "max_depth must be >= 0 (0 means unlimited)",
		})
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
