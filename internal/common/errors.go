// Package common defines shared sentinel errors used across the wisdomvault
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository and file-store errors.
	ErrNotFound = errors.New("not found")

	// Archive errors.
	ErrInvalidArchive = errors.New("invalid archive")
	ErrExportFailed   = errors.New("export failed")
	ErrImportFailed   = errors.New("import failed")

	// Flow-control outcomes. Cancelled is a normal outcome (the user backed
	// out before a destination or source was chosen), not a failure.
	ErrCancelled = errors.New("cancelled")
	ErrBusy      = errors.New("another export or import is in progress")

	// Validation errors.
	ErrValidation = errors.New("validation error")
)
