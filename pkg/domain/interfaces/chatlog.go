package interfaces

import (
	"context"

	"github.com/secmon-lab/chatdesk/pkg/domain/model"
)

// LogClient is the part of the chatbot backend API the log dashboard needs
type LogClient interface {
	// ListLogs fetches one page of logs matching filters
	ListLogs(ctx context.Context, filters model.LogFilters) (*model.Page[model.ChatLog], error)

	// GetLogStats fetches aggregate stats. A nil filters requests global stats.
	GetLogStats(ctx context.Context, filters *model.LogFilters) (*model.LogStats, error)

	// DeleteLog removes one log record
	DeleteLog(ctx context.Context, id int64) error
}
