package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/types"
)

// DateLayout is the format of FromDate and ToDate
const DateLayout = "2006-01-02"

// LogFilters is one immutable snapshot of the log query. Nil pointers and
// empty strings mean the filter is not applied.
type LogFilters struct {
	Success        *bool          `json:"success,omitempty"`
	Intent         string         `json:"intent,omitempty"`
	UnansweredOnly *bool          `json:"unanswered_only,omitempty"`
	FromDate       string         `json:"from_date,omitempty"`
	ToDate         string         `json:"to_date,omitempty"`
	Page           int            `json:"page"`
	PageSize       types.PageSize `json:"page_size"`
}

// DefaultLogFilters returns the filters a freshly mounted dashboard starts with
func DefaultLogFilters() LogFilters {
	return LogFilters{
		Page:     1,
		PageSize: types.DefaultPageSize,
	}
}

// Validate checks the snapshot before it is sent to the backend
func (f LogFilters) Validate() error {
	if f.Page < 1 {
		return goerr.Wrap(ErrInvalidPage, "invalid filters", goerr.V(PageKey, f.Page))
	}
	if !f.PageSize.IsValid() {
		return goerr.Wrap(ErrInvalidPageSize, "invalid filters", goerr.V(PageSizeKey, int(f.PageSize)))
	}

	var from, to time.Time
	if f.FromDate != "" {
		t, err := time.Parse(DateLayout, f.FromDate)
		if err != nil {
			return goerr.Wrap(ErrInvalidDate, "invalid from date", goerr.V(DateKey, f.FromDate))
		}
		from = t
	}
	if f.ToDate != "" {
		t, err := time.Parse(DateLayout, f.ToDate)
		if err != nil {
			return goerr.Wrap(ErrInvalidDate, "invalid to date", goerr.V(DateKey, f.ToDate))
		}
		to = t
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return goerr.Wrap(ErrInvalidDateRange, "invalid date range",
			goerr.V("from_date", f.FromDate), goerr.V("to_date", f.ToDate))
	}

	return nil
}

// FilterPatch describes one user edit of the filters. Nil fields are left
// untouched. An empty Intent, FromDate or ToDate removes that filter, and
// the Clear flags remove the tri-state filters.
type FilterPatch struct {
	Success        *bool
	Intent         *string
	UnansweredOnly *bool
	FromDate       *string
	ToDate         *string
	PageSize       *types.PageSize
	Page           *int

	ClearSuccess        bool
	ClearUnansweredOnly bool
}

// TouchesQuery reports whether the patch sets any field other than Page
func (p FilterPatch) TouchesQuery() bool {
	return p.Success != nil ||
		p.Intent != nil ||
		p.UnansweredOnly != nil ||
		p.FromDate != nil ||
		p.ToDate != nil ||
		p.PageSize != nil ||
		p.ClearSuccess ||
		p.ClearUnansweredOnly
}

// IsEmpty reports whether the patch changes nothing
func (p FilterPatch) IsEmpty() bool {
	return !p.TouchesQuery() && p.Page == nil
}

// ApplyFilter merges patch into current. Any change to the query itself
// moves the result back to page 1; a page-only patch keeps everything else.
func ApplyFilter(current LogFilters, patch FilterPatch) LogFilters {
	next := current
	next.Success = clonePtr(current.Success)
	next.UnansweredOnly = clonePtr(current.UnansweredOnly)

	if patch.ClearSuccess {
		next.Success = nil
	}
	if patch.Success != nil {
		next.Success = clonePtr(patch.Success)
	}
	if patch.ClearUnansweredOnly {
		next.UnansweredOnly = nil
	}
	if patch.UnansweredOnly != nil {
		next.UnansweredOnly = clonePtr(patch.UnansweredOnly)
	}
	if patch.Intent != nil {
		next.Intent = *patch.Intent
	}
	if patch.FromDate != nil {
		next.FromDate = *patch.FromDate
	}
	if patch.ToDate != nil {
		next.ToDate = *patch.ToDate
	}
	if patch.PageSize != nil {
		next.PageSize = *patch.PageSize
	}

	if patch.TouchesQuery() {
		next.Page = 1
	} else if patch.Page != nil {
		next.Page = *patch.Page
	}

	return next
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
