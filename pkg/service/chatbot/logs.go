package chatbot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
)

// encodeLogFilters builds the /logs query string. Unset filters are omitted.
func encodeLogFilters(f model.LogFilters) url.Values {
	q := url.Values{}
	if f.Success != nil {
		q.Set("success", strconv.FormatBool(*f.Success))
	}
	if f.Intent != "" {
		q.Set("intent", f.Intent)
	}
	if f.UnansweredOnly != nil {
		q.Set("unanswered_only", strconv.FormatBool(*f.UnansweredOnly))
	}
	if f.FromDate != "" {
		q.Set("from_date", f.FromDate)
	}
	if f.ToDate != "" {
		q.Set("to_date", f.ToDate)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("page_size", f.PageSize.String())
	}
	return q
}

// ListLogs fetches one page of chat logs
func (c *Client) ListLogs(ctx context.Context, filters model.LogFilters) (*model.Page[model.ChatLog], error) {
	data, err := c.do(ctx, request{
		operation: "list_logs",
		method:    http.MethodGet,
		path:      "/logs",
		query:     encodeLogFilters(filters),
	})
	if err != nil {
		return nil, err
	}

	page, err := decodePage[model.ChatLog](data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode log list", goerr.V(OperationKey, "list_logs"))
	}
	return page, nil
}

// GetLogStats fetches aggregate stats. Filters are only sent when non-nil.
func (c *Client) GetLogStats(ctx context.Context, filters *model.LogFilters) (*model.LogStats, error) {
	req := request{
		operation: "get_log_stats",
		method:    http.MethodGet,
		path:      "/logs/stats",
	}
	if filters != nil {
		q := encodeLogFilters(*filters)
		q.Del("page")
		q.Del("page_size")
		req.query = q
	}

	var stats model.LogStats
	if err := c.doJSON(ctx, req, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DeleteLog removes one chat log
func (c *Client) DeleteLog(ctx context.Context, id int64) error {
	_, err := c.do(ctx, request{
		operation: "delete_log",
		method:    http.MethodDelete,
		path:      fmt.Sprintf("/logs/%d", id),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to delete log", goerr.V(IDKey, id))
	}
	return nil
}
