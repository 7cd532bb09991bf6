package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/secmon-lab/chatdesk/pkg/domain/model"
)

const (
	// TimestampLayout is how log timestamps appear in the export
	TimestampLayout = "2006-01-02 15:04:05"

	successYes = "بله"
	successNo  = "خیر"
)

// Header is the fixed first record of every export
var Header = []string{
	"زمان",
	"سؤال کاربر",
	"پاسخ ربات",
	"نیت",
	"منبع",
	"اطمینان",
	"موفقیت",
	"توکن ورودی",
	"توکن خروجی",
	"زمان پاسخ (ms)",
}

type encodeConfig struct {
	loc *time.Location
}

type EncodeOption func(*encodeConfig)

// WithLocation renders timestamps in loc instead of time.Local
func WithLocation(loc *time.Location) EncodeOption {
	return func(c *encodeConfig) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// EncodeCSV renders rows as CSV text. Every cell is double-quoted with
// embedded quotes doubled; records are separated by "\n" with no trailing
// newline. An empty input yields only the header record.
func EncodeCSV(rows []model.ChatLog, opts ...EncodeOption) []byte {
	cfg := encodeConfig{loc: time.Local}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	writeRecord(&b, Header)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRecord(&b, encodeRow(row, cfg.loc))
	}
	return []byte(b.String())
}

func encodeRow(row model.ChatLog, loc *time.Location) []string {
	var ts string
	if !row.Timestamp.IsZero() {
		ts = row.Timestamp.InLocation(loc).Format(TimestampLayout)
	}

	var confidence string
	if row.Confidence != nil {
		confidence = model.FormatPercent(*row.Confidence * 100)
	}

	success := successNo
	if row.Success {
		success = successYes
	}

	return []string{
		ts,
		row.UserText,
		row.AIText,
		stringOrEmpty(row.Intent),
		stringOrEmpty(row.Source),
		confidence,
		success,
		intOrEmpty(row.TokensIn),
		intOrEmpty(row.TokensOut),
		intOrEmpty(row.LatencyMS),
	}
}

func writeRecord(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// Filename is the download name for an export taken at now
func Filename(now time.Time) string {
	return "chat-logs-" + now.Format(model.DateLayout) + ".csv"
}
