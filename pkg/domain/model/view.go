package model

// ViewState is everything the log dashboard shows. It is only ever changed
// by the fetch orchestrator (Logs, Stats, Loading) or by user edits
// (Filters, ShowFilters).
type ViewState struct {
	Filters     LogFilters `json:"filters"`
	Logs        []ChatLog  `json:"logs"`
	Stats       *LogStats  `json:"stats"`
	Loading     bool       `json:"loading"`
	ShowFilters bool       `json:"show_filters"`
}

// NewViewState returns the state of a freshly mounted dashboard
func NewViewState() ViewState {
	return ViewState{
		Filters: DefaultLogFilters(),
		Logs:    []ChatLog{},
		Loading: true,
	}
}

// Clone returns a copy that shares nothing mutable with s
func (s ViewState) Clone() ViewState {
	cloned := s
	cloned.Filters.Success = clonePtr(s.Filters.Success)
	cloned.Filters.UnansweredOnly = clonePtr(s.Filters.UnansweredOnly)
	cloned.Logs = CopyLogs(s.Logs)
	cloned.Stats = clonePtr(s.Stats)
	return cloned
}
