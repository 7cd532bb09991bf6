package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
	"github.com/secmon-lab/chatdesk/pkg/service/export"
	"github.com/secmon-lab/chatdesk/pkg/utils/errutil"
	"github.com/secmon-lab/chatdesk/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// DeleteConfirmPrompt is shown before a log is deleted
const DeleteConfirmPrompt = "آیا مطمئن هستید که می‌خواهید این لاگ را حذف کنید؟"

// Dashboard drives the chat log view: it owns the view state and keeps it
// consistent with the backend across filter edits, refreshes and deletes.
type Dashboard struct {
	client      interfaces.LogClient
	store       *Store
	reporter    interfaces.Reporter
	confirmer   interfaces.Confirmer
	exporter    interfaces.ExportWriter
	loc         *time.Location
	scopedStats bool
	now         func() time.Time
}

type DashboardOption func(*Dashboard)

// WithReporter sets the sink that receives fetch and delete failures
func WithReporter(r interfaces.Reporter) DashboardOption {
	return func(d *Dashboard) {
		d.reporter = r
	}
}

// WithConfirmer sets how deletions are confirmed
func WithConfirmer(c interfaces.Confirmer) DashboardOption {
	return func(d *Dashboard) {
		d.confirmer = c
	}
}

// WithExportWriter sets where Export stores encoded logs
func WithExportWriter(w interfaces.ExportWriter) DashboardOption {
	return func(d *Dashboard) {
		d.exporter = w
	}
}

// WithLocation sets the time zone used for exported timestamps
func WithLocation(loc *time.Location) DashboardOption {
	return func(d *Dashboard) {
		if loc != nil {
			d.loc = loc
		}
	}
}

// WithScopedStats makes the stats request use the same filters as the
// log list. By default stats cover all stored logs.
func WithScopedStats() DashboardOption {
	return func(d *Dashboard) {
		d.scopedStats = true
	}
}

// WithClock replaces time.Now, used for export file names
func WithClock(now func() time.Time) DashboardOption {
	return func(d *Dashboard) {
		d.now = now
	}
}

// WithStore shares an existing store instead of creating a new one
func WithStore(s *Store) DashboardOption {
	return func(d *Dashboard) {
		d.store = s
	}
}

type logReporter struct{}

func (logReporter) Report(ctx context.Context, err error, msg string) {
	_ = errutil.Handle(ctx, err, msg)
}

func NewDashboard(client interfaces.LogClient, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		client:   client,
		reporter: logReporter{},
		loc:      time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.store == nil {
		d.store = NewStore()
	}
	return d
}

// Store returns the underlying view state store
func (d *Dashboard) Store() *Store {
	return d.store
}

// State returns a snapshot of the current view
func (d *Dashboard) State() model.ViewState {
	return d.store.State()
}

// Mount performs the initial load with the default filters
func (d *Dashboard) Mount(ctx context.Context) error {
	return d.Refresh(ctx)
}

// SetFilter applies patch to the filters and refreshes the view. The
// resulting filters are validated before anything is dispatched.
func (d *Dashboard) SetFilter(ctx context.Context, patch model.FilterPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	if _, err := d.store.PatchFilters(patch); err != nil {
		return err
	}
	return d.Refresh(ctx)
}

// ToggleFilters flips the filter panel and returns whether it is now shown
func (d *Dashboard) ToggleFilters() bool {
	d.store.Dispatch(FiltersToggled{})
	return d.store.State().ShowFilters
}

// Refresh fetches the log page for the current filters and the stats
// concurrently and settles once both finish. Only the most recently
// started refresh may update the view. On failure the previous logs and
// stats stay in place and the error is reported and returned.
func (d *Dashboard) Refresh(ctx context.Context) error {
	seq, filters := d.store.BeginFetch()
	logger := logging.From(ctx).With("sequence", seq)

	var (
		page  *model.Page[model.ChatLog]
		stats *model.LogStats
		eg    errgroup.Group
	)

	eg.Go(func() error {
		p, err := d.client.ListLogs(ctx, filters)
		if err != nil {
			return goerr.Wrap(err, "failed to list logs",
				goerr.V(FiltersKey, filters), goerr.V(SequenceKey, seq))
		}
		if p == nil {
			return goerr.Wrap(ErrEmptyLogPage, "failed to list logs", goerr.V(SequenceKey, seq))
		}
		page = p
		return nil
	})

	eg.Go(func() error {
		var scope *model.LogFilters
		if d.scopedStats {
			f := filters
			scope = &f
		}
		s, err := d.client.GetLogStats(ctx, scope)
		if err != nil {
			return goerr.Wrap(err, "failed to get log stats", goerr.V(SequenceKey, seq))
		}
		stats = s
		return nil
	})

	err := eg.Wait()

	settled := FetchSettled{Seq: seq, Err: err}
	if err == nil {
		settled.Logs = page.Items
		settled.Stats = stats
	}

	if applied := d.store.Dispatch(settled); !applied {
		logger.Debug("discarded stale refresh result")
	}

	if err != nil {
		d.reporter.Report(ctx, err, "failed to refresh logs")
		return err
	}

	logger.Debug("refreshed logs", "count", len(settled.Logs), "total", page.Total)
	return nil
}

// DeleteRow asks for confirmation and deletes log id, then refreshes the
// whole view. It reports whether the log was deleted; a declined
// confirmation returns false with no error and sends no request.
func (d *Dashboard) DeleteRow(ctx context.Context, id int64) (bool, error) {
	if d.confirmer == nil {
		return false, goerr.Wrap(ErrConfirmerRequired, "cannot delete log", goerr.V(LogIDKey, id))
	}

	ok, err := d.confirmer.Confirm(ctx, DeleteConfirmPrompt)
	if err != nil {
		return false, goerr.Wrap(err, "failed to confirm deletion", goerr.V(LogIDKey, id))
	}
	if !ok {
		logging.From(ctx).Info("deletion declined", "id", id)
		return false, nil
	}

	if err := d.client.DeleteLog(ctx, id); err != nil {
		err = goerr.Wrap(err, "failed to delete log", goerr.V(LogIDKey, id))
		d.reporter.Report(ctx, err, "failed to delete log")
		return false, err
	}

	logging.From(ctx).Info("log deleted", "id", id)
	return true, d.Refresh(ctx)
}

// EncodeExport encodes the logs currently in view and returns the file name for them
func (d *Dashboard) EncodeExport() (string, []byte) {
	logs := d.store.State().Logs
	return export.Filename(d.now().In(d.loc)), export.EncodeCSV(logs, export.WithLocation(d.loc))
}

// Export writes the logs currently in view to the configured export
// writer and returns where they were stored.
func (d *Dashboard) Export(ctx context.Context) (string, error) {
	if d.exporter == nil {
		return "", goerr.Wrap(ErrExportWriterRequired, "cannot export logs")
	}

	name, data := d.EncodeExport()
	location, err := d.exporter.Write(ctx, name, data)
	if err != nil {
		return "", goerr.Wrap(err, "failed to export logs", goerr.V("name", name))
	}
	return location, nil
}
