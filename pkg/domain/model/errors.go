package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrInvalidPage      = goerr.New("page must be 1 or greater")
	ErrInvalidPageSize  = goerr.New("invalid page size")
	ErrInvalidDate      = goerr.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidDateRange = goerr.New("from date is after to date")
	ErrInvalidTimestamp = goerr.New("invalid timestamp")
)

// Context keys for error values
const (
	PageKey      = "page"
	PageSizeKey  = "page_size"
	DateKey      = "date"
	TimestampKey = "timestamp"
)
