package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpctrl "github.com/secmon-lab/chatdesk/pkg/controller/http"
	"github.com/secmon-lab/chatdesk/pkg/usecase"
	"github.com/secmon-lab/chatdesk/pkg/utils/async"
	"github.com/secmon-lab/chatdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe(a *app) *cli.Command {
	var addr string

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the local log dashboard HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "HTTP server address",
				Value:       "127.0.0.1:8080",
				Sources:     cli.EnvVars("CHATDESK_ADDR"),
				Destination: &addr,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			a.registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			client, err := a.newClient()
			if err != nil {
				return err
			}

			pageSize, err := a.viewCfg.PageSize()
			if err != nil {
				return err
			}
			loc, err := a.viewCfg.Location()
			if err != nil {
				return err
			}

			dashboard, err := a.newDashboard(client,
				usecase.WithConfirmer(httpctrl.RequestConfirmer()),
				usecase.WithStore(usecase.NewStoreWithFilters(defaultFilters(pageSize))),
			)
			if err != nil {
				return err
			}

			// failures are logged; /api/refresh retries
			async.Dispatch(ctx, dashboard.Mount)

			server := &http.Server{
				Addr: addr,
				Handler: httpctrl.New(dashboard,
					httpctrl.WithMetrics(a.registry),
					httpctrl.WithLocation(loc),
				),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "api", a.apiCfg.BaseURL())
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logging.Default().Info("Context cancelled, shutting down")
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}
