package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/secmon-lab/chatdesk/pkg/cli/config"
	"github.com/secmon-lab/chatdesk/pkg/service/chatbot"
	"github.com/secmon-lab/chatdesk/pkg/service/reporter"
	"github.com/secmon-lab/chatdesk/pkg/usecase"
	"github.com/secmon-lab/chatdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// DotEnvFileEnv overrides the .env file loaded at start
const DotEnvFileEnv = "CHATDESK_ENV_FILE"

// app carries the configuration shared by every subcommand
type app struct {
	version string
	in      io.Reader
	out     io.Writer

	loggerCfg  config.Logger
	profileCfg config.Profile
	apiCfg     config.API
	viewCfg    config.View
	sentryCfg  config.Sentry

	profile  *config.ProfileData
	reporter *reporter.Reporter
	registry *prometheus.Registry
}

func (a *app) flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, a.loggerCfg.Flags()...)
	flags = append(flags, a.profileCfg.Flags()...)
	flags = append(flags, a.apiCfg.Flags()...)
	flags = append(flags, a.viewCfg.Flags()...)
	flags = append(flags, a.sentryCfg.Flags()...)
	return flags
}

// newClient creates the backend client, instrumented with the app registry
func (a *app) newClient() (*chatbot.Client, error) {
	metrics, err := chatbot.NewMetrics(a.registry)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to register client metrics")
	}
	return a.apiCfg.Configure(chatbot.WithMetrics(metrics))
}

// newDashboard creates a dashboard over client with the view settings applied
func (a *app) newDashboard(client *chatbot.Client, opts ...usecase.DashboardOption) (*usecase.Dashboard, error) {
	viewOpts, err := a.viewCfg.DashboardOptions()
	if err != nil {
		return nil, err
	}

	all := append([]usecase.DashboardOption{usecase.WithReporter(a.reporter)}, viewOpts...)
	all = append(all, opts...)
	return usecase.NewDashboard(client, all...), nil
}

// loadDotEnv loads .env (or the file named by CHATDESK_ENV_FILE) into the
// process environment. Variables already set are kept.
func loadDotEnv() error {
	path := ".env"
	if v, ok := os.LookupEnv(DotEnvFileEnv); ok && v != "" {
		path = v
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}

func Run(ctx context.Context, args []string, version string) error {
	return RunWithIO(ctx, args, version, os.Stdin, os.Stdout)
}

// RunWithIO is Run with explicit terminal streams
func RunWithIO(ctx context.Context, args []string, version string, in io.Reader, out io.Writer) error {
	if err := loadDotEnv(); err != nil {
		logging.Default().Error("failed to load env file", "error", err)
		return err
	}

	a := &app{
		version:  version,
		in:       in,
		out:      out,
		registry: prometheus.NewRegistry(),
	}
	var closers []func()

	root := &cli.Command{
		Name:    "chatdesk",
		Usage:   "Admin console for the chatbot backend: chat logs, FAQs and categories",
		Version: version,
		Flags:   a.flags(),
		Reader:  in,
		Writer:  out,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			closeLogger, err := a.loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closers = append(closers, closeLogger)

			profile, err := a.profileCfg.Load()
			if err != nil {
				return ctx, err
			}
			a.profile = profile
			if err := a.apiCfg.ApplyProfile(c, profile); err != nil {
				return ctx, err
			}
			a.viewCfg.ApplyProfile(c, profile)

			rep, flush, err := a.sentryCfg.Configure(version)
			if err != nil {
				return ctx, err
			}
			a.reporter = rep
			closers = append(closers, flush)

			logging.Default().Debug("Starting chatdesk",
				"logger", a.loggerCfg,
				"profile", a.profileCfg.Path(),
				slog.GroupAttrs("api", a.apiCfg.LogAttrs()...),
				slog.GroupAttrs("view", a.viewCfg.LogAttrs()...),
				slog.GroupAttrs("sentry", a.sentryCfg.LogAttrs()...),
			)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdLogs(a),
			cmdStats(a),
			cmdFAQs(a),
			cmdCategories(a),
			cmdChat(a),
			cmdServe(a),
		},
	}

	if err := root.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
