package model

// ChatLog is one recorded chatbot exchange. The backend owns it; the
// dashboard only ever holds a read-only copy of one page of logs.
type ChatLog struct {
	ID           int64     `json:"id"`
	Timestamp    Timestamp `json:"timestamp"`
	UserText     string    `json:"user_text"`
	AIText       string    `json:"ai_text"`
	Intent       *string   `json:"intent,omitempty"`
	Source       *string   `json:"source,omitempty"`
	Confidence   *float64  `json:"confidence,omitempty"`
	Success      bool      `json:"success"`
	MatchedFAQID *int64    `json:"matched_faq_id,omitempty"`
	TokensIn     *int64    `json:"tokens_in,omitempty"`
	TokensOut    *int64    `json:"tokens_out,omitempty"`
	LatencyMS    *int64    `json:"latency_ms,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
}

// LogStats is the aggregate computed by the backend over stored logs.
// Rates are percentages in 0..100.
type LogStats struct {
	TotalLogs      int64   `json:"total_logs"`
	SuccessRate    float64 `json:"success_rate"`
	UnansweredLogs int64   `json:"unanswered_logs"`
	UnansweredRate float64 `json:"unanswered_rate"`
}

// Page is the list envelope returned by paginated endpoints
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// CopyLogs returns a shallow copy of logs so callers cannot alias cached pages
func CopyLogs(logs []ChatLog) []ChatLog {
	if logs == nil {
		return nil
	}
	copied := make([]ChatLog, len(logs))
	copy(copied, logs)
	return copied
}
