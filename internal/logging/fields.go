package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig   = "config"
	FieldSource   = "source"
	FieldFormat   = "format"
	FieldColor    = "color"
	FieldEnv      = "env"
	FieldLogLevel = "log_level"

	// Document fields.
	FieldNodes   = "nodes"
	FieldMatches = "matches"

	// Formatting fields.
	FieldWrite   = "write"
	FieldChanged = "changed"
	FieldMode    = "mode"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
