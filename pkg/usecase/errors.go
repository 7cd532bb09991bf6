package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Configuration errors
	ErrConfirmerRequired    = errors.New("confirmer is not configured")
	ErrExportWriterRequired = errors.New("export writer is not configured")

	// Fetch errors
	ErrEmptyLogPage = errors.New("backend returned no log page")
)

// Context keys for error values
const (
	LogIDKey    = "log_id"
	FiltersKey  = "filters"
	SequenceKey = "sequence"
)
