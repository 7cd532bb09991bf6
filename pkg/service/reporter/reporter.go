package reporter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/chatdesk/pkg/utils/errutil"
)

// Reporter logs every reported error and, when a Sentry hub is configured,
// forwards it as a Sentry event.
type Reporter struct {
	hub *sentry.Hub
}

var _ interfaces.Reporter = (*Reporter)(nil)

type Option func(*Reporter)

// WithSentryHub forwards reports to hub
func WithSentryHub(hub *sentry.Hub) Option {
	return func(r *Reporter) {
		r.hub = hub
	}
}

func New(opts ...Option) *Reporter {
	r := &Reporter{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report records err. It never fails and never blocks on the network.
func (r *Reporter) Report(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}
	_ = errutil.Handle(ctx, err, msg)

	if r.hub == nil {
		return
	}

	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("operation", msg)

		var ge *goerr.Error
		if errors.As(err, &ge) {
			extras := make(map[string]any, len(ge.Values()))
			for k, v := range ge.Values() {
				extras[k] = fmt.Sprint(v)
			}
			scope.SetContext("goerr", extras)
		}

		hub.CaptureException(err)
	})
}

// Flush waits until buffered Sentry events are delivered or timeout passes
func (r *Reporter) Flush(timeout time.Duration) bool {
	if r.hub == nil {
		return true
	}
	return r.hub.Flush(timeout)
}
