package usecase_test

import (
	"context"
	"sync"

	"github.com/secmon-lab/chatdesk/pkg/domain/model"
)

type mockLogClient struct {
	ListLogsFn    func(ctx context.Context, filters model.LogFilters) (*model.Page[model.ChatLog], error)
	GetLogStatsFn func(ctx context.Context, filters *model.LogFilters) (*model.LogStats, error)
	DeleteLogFn   func(ctx context.Context, id int64) error

	mu         sync.Mutex
	listCalls  []model.LogFilters
	statsCalls []*model.LogFilters
	deleted    []int64
}

func (m *mockLogClient) ListLogs(ctx context.Context, filters model.LogFilters) (*model.Page[model.ChatLog], error) {
	m.mu.Lock()
	m.listCalls = append(m.listCalls, filters)
	m.mu.Unlock()

	if m.ListLogsFn != nil {
		return m.ListLogsFn(ctx, filters)
	}
	return &model.Page[model.ChatLog]{Items: []model.ChatLog{}}, nil
}

func (m *mockLogClient) GetLogStats(ctx context.Context, filters *model.LogFilters) (*model.LogStats, error) {
	m.mu.Lock()
	m.statsCalls = append(m.statsCalls, filters)
	m.mu.Unlock()

	if m.GetLogStatsFn != nil {
		return m.GetLogStatsFn(ctx, filters)
	}
	return &model.LogStats{}, nil
}

func (m *mockLogClient) DeleteLog(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.deleted = append(m.deleted, id)
	m.mu.Unlock()

	if m.DeleteLogFn != nil {
		return m.DeleteLogFn(ctx, id)
	}
	return nil
}

func (m *mockLogClient) ListCalls() []model.LogFilters {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.LogFilters(nil), m.listCalls...)
}

func (m *mockLogClient) StatsCalls() []*model.LogFilters {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.LogFilters(nil), m.statsCalls...)
}

func (m *mockLogClient) Deleted() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.deleted...)
}

type reported struct {
	err error
	msg string
}

type mockReporter struct {
	mu      sync.Mutex
	reports []reported
}

func (m *mockReporter) Report(ctx context.Context, err error, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, reported{err: err, msg: msg})
}

func (m *mockReporter) Reports() []reported {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]reported(nil), m.reports...)
}

type mockExportWriter struct {
	WriteFn func(ctx context.Context, name string, data []byte) (string, error)
}

func (m *mockExportWriter) Write(ctx context.Context, name string, data []byte) (string, error) {
	return m.WriteFn(ctx, name, data)
}
