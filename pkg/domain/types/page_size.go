package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// PageSize is the number of log rows requested per page
type PageSize int

const (
	PageSize25  PageSize = 25
	PageSize50  PageSize = 50
	PageSize100 PageSize = 100

	DefaultPageSize = PageSize50
)

// AllPageSizes returns the page sizes offered by the dashboard
func AllPageSizes() []PageSize {
	return []PageSize{PageSize25, PageSize50, PageSize100}
}

// IsValid checks if the page size is one of the offered sizes
func (p PageSize) IsValid() bool {
	switch p {
	case PageSize25, PageSize50, PageSize100:
		return true
	default:
		return false
	}
}

// Validate returns an error if the page size is not offered
func (p PageSize) Validate() error {
	if !p.IsValid() {
		return goerr.New("page size must be one of 25, 50 or 100", goerr.V("page_size", int(p)))
	}
	return nil
}

// String returns the string representation of the page size
func (p PageSize) String() string {
	return strconv.Itoa(int(p))
}
