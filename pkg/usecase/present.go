package usecase

import (
	"strconv"
	"time"

	"github.com/secmon-lab/chatdesk/pkg/domain/model"
)

const (
	// TruncateLimit is the number of characters of user and bot text shown per row
	TruncateLimit = 50

	StatusSuccess = "موفق"
	StatusFailure = "ناموفق"

	noValue = "-"
)

// LogRow is one chat log formatted for the log table
type LogRow struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	UserText   string `json:"user_text"`
	AIText     string `json:"ai_text"`
	Intent     string `json:"intent"`
	Source     string `json:"source"`
	Confidence string `json:"confidence"`
	Success    bool   `json:"success"`
	Status     string `json:"status"`
}

// StatsView is LogStats formatted for the stat cards
type StatsView struct {
	TotalLogs      string `json:"total_logs"`
	SuccessRate    string `json:"success_rate"`
	UnansweredLogs string `json:"unanswered_logs"`
	UnansweredRate string `json:"unanswered_rate"`
}

// PresentRows formats logs for the table, timestamps in loc
func PresentRows(logs []model.ChatLog, loc *time.Location) []LogRow {
	if loc == nil {
		loc = time.Local
	}

	rows := make([]LogRow, 0, len(logs))
	for _, log := range logs {
		row := LogRow{
			ID:         log.ID,
			UserText:   Truncate(log.UserText, TruncateLimit),
			AIText:     Truncate(log.AIText, TruncateLimit),
			Intent:     deref(log.Intent),
			Source:     deref(log.Source),
			Confidence: FormatConfidence(log.Confidence),
			Success:    log.Success,
			Status:     StatusLabel(log.Success),
		}
		if !log.Timestamp.IsZero() {
			ts := log.Timestamp.InLocation(loc)
			row.Date = ts.Format("2006-01-02")
			row.Time = ts.Format("15:04:05")
		}
		rows = append(rows, row)
	}
	return rows
}

// PresentStats formats stats for display. Nil stats yields nil.
func PresentStats(stats *model.LogStats) *StatsView {
	if stats == nil {
		return nil
	}
	return &StatsView{
		TotalLogs:      strconv.FormatInt(stats.TotalLogs, 10),
		SuccessRate:    FormatPercent(stats.SuccessRate),
		UnansweredLogs: strconv.FormatInt(stats.UnansweredLogs, 10),
		UnansweredRate: FormatPercent(stats.UnansweredRate),
	}
}

// Truncate shortens s to at most limit characters followed by "..."
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// FormatConfidence renders a 0..1 confidence as a percentage, or "-" when absent
func FormatConfidence(c *float64) string {
	if c == nil {
		return noValue
	}
	return FormatPercent(*c * 100)
}

// FormatPercent renders a 0..100 value with one decimal
func FormatPercent(v float64) string {
	return model.FormatPercent(v)
}

func StatusLabel(success bool) string {
	if success {
		return StatusSuccess
	}
	return StatusFailure
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
