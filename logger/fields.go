package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across cegconf.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldCommand   = "command"

	// Operations
	FieldOperation = "operation"
	FieldFormat    = "format"
	FieldKey       = "key"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"

	// Registry
	FieldID     = "id"     // Element identifier
	FieldPrefix = "prefix" // Identifier prefix
	FieldDrift  = "drift"  // Number of keys differing from the compiled registry
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	log := logger.ComponentLogger("typegen")
//	log.Infow("Wrote config class", logger.FieldFile, path)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name).With(FieldComponent, name)
}
