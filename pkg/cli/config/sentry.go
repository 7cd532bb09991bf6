package config

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/service/reporter"
	"github.com/urfave/cli/v3"
)

// Sentry holds configuration of the error reporting sink
type Sentry struct {
	dsn         string
	environment string
}

// Flags returns CLI flags for Sentry configuration
func (s *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN; failures are also sent to Sentry when set",
			Category:    "Observability",
			Sources:     cli.EnvVars("CHATDESK_SENTRY_DSN"),
			Destination: &s.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment name",
			Category:    "Observability",
			Sources:     cli.EnvVars("CHATDESK_SENTRY_ENV"),
			Destination: &s.environment,
		},
	}
}

// IsConfigured returns true if a DSN is set
func (s *Sentry) IsConfigured() bool {
	return s.dsn != ""
}

// LogAttrs returns log attributes for the Sentry configuration. The DSN
// carries a key prefix the log filter masks.
func (s *Sentry) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("enabled", s.IsConfigured()),
		slog.String("environment", s.environment),
		slog.String("secret_dsn", s.dsn),
	}
}

// Configure creates the reporter. Without a DSN it only logs. The
// returned function flushes pending events and must be called on exit.
func (s *Sentry) Configure(release string) (*reporter.Reporter, func(), error) {
	if !s.IsConfigured() {
		return reporter.New(), func() {}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         s.dsn,
		Environment: s.environment,
		Release:     release,
	})
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize sentry")
	}

	r := reporter.New(reporter.WithSentryHub(sentry.NewHub(client, sentry.NewScope())))
	return r, func() {
		r.Flush(2 * time.Second)
	}, nil
}
