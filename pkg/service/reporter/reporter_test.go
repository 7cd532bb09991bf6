package reporter_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chatdesk/pkg/service/reporter"
	"github.com/secmon-lab/chatdesk/pkg/utils/logging"
)

// newCapturingHub returns a hub whose events are captured and dropped before transport
func newCapturingHub(t *testing.T) (*sentry.Hub, func() []*sentry.Event) {
	t.Helper()

	var mu sync.Mutex
	var events []*sentry.Event

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn: "https://public@sentry.example.com/1",
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
			return nil
		},
	})
	gt.NoError(t, err).Required()

	return sentry.NewHub(client, sentry.NewScope()), func() []*sentry.Event {
		mu.Lock()
		defer mu.Unlock()
		return append([]*sentry.Event(nil), events...)
	}
}

func TestReport_LogsError(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	r := reporter.New()
	r.Report(ctx, goerr.New("stats request failed", goerr.V("status", 502)), "failed to refresh logs")

	gt.String(t, buf.String()).Contains("failed to refresh logs")
	gt.String(t, buf.String()).Contains("stats request failed")
	gt.B(t, r.Flush(time.Millisecond)).True()
}

func TestReport_ForwardsToSentry(t *testing.T) {
	hub, events := newCapturingHub(t)
	r := reporter.New(reporter.WithSentryHub(hub))

	r.Report(context.Background(), goerr.New("log not found", goerr.V("id", 9999)), "failed to delete log")

	got := events()
	gt.Array(t, got).Length(1).Required()
	gt.Value(t, got[0].Tags["operation"]).Equal("failed to delete log")
	gt.Value(t, got[0].Contexts["goerr"]["id"]).Equal("9999")
}

func TestReport_IgnoresNil(t *testing.T) {
	hub, events := newCapturingHub(t)
	r := reporter.New(reporter.WithSentryHub(hub))

	r.Report(context.Background(), nil, "nothing happened")
	gt.Array(t, events()).Length(0)
}
