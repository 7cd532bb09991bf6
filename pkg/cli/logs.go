package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/cli/config"
	"github.com/secmon-lab/chatdesk/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdLogs(a *app) *cli.Command {
	var filterOpts filterOptions
	var showFilters bool

	flags := filterOpts.Flags()
	flags = append(flags, &cli.BoolFlag{
		Name:        "show-filters",
		Usage:       "Show the active filters above the table",
		Destination: &showFilters,
	})

	return &cli.Command{
		Name:    "logs",
		Aliases: []string{"l"},
		Usage:   "Show chat logs with stats",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			d, err := a.mountDashboard(ctx, c, &filterOpts)
			if err != nil {
				return err
			}
			if showFilters {
				d.ToggleFilters()
			}

			loc, err := a.viewCfg.Location()
			if err != nil {
				return err
			}
			renderView(a.out, d.State(), loc)
			return nil
		},
		Commands: []*cli.Command{
			cmdLogsExport(a, &filterOpts),
			cmdLogsDelete(a),
		},
	}
}

// mountDashboard creates a dashboard for the filter flags and loads it
func (a *app) mountDashboard(ctx context.Context, c *cli.Command, filterOpts *filterOptions, opts ...usecase.DashboardOption) (*usecase.Dashboard, error) {
	pageSize, err := a.viewCfg.PageSize()
	if err != nil {
		return nil, err
	}
	filters, err := filterOpts.build(c, pageSize)
	if err != nil {
		return nil, err
	}

	client, err := a.newClient()
	if err != nil {
		return nil, err
	}

	opts = append([]usecase.DashboardOption{usecase.WithStore(usecase.NewStoreWithFilters(filters))}, opts...)
	d, err := a.newDashboard(client, opts...)
	if err != nil {
		return nil, err
	}

	if err := d.Mount(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

func cmdLogsExport(a *app, filterOpts *filterOptions) *cli.Command {
	var exportCfg config.Export

	return &cli.Command{
		Name:  "export",
		Usage: "Export the current page of logs as CSV",
		Flags: exportCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			exportCfg.ApplyProfile(c, a.profile)

			writer, closer, err := exportCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closer()

			d, err := a.mountDashboard(ctx, c, filterOpts, usecase.WithExportWriter(writer))
			if err != nil {
				return err
			}

			location, err := d.Export(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "exported %d logs to %s\n", len(d.State().Logs), location)
			return nil
		},
	}
}

func cmdLogsDelete(a *app) *cli.Command {
	var assumeYes bool

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete one chat log",
		ArgsUsage: "ID",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "Do not ask for confirmation",
				Destination: &assumeYes,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := parseID(c)
			if err != nil {
				return err
			}

			pageSize, err := a.viewCfg.PageSize()
			if err != nil {
				return err
			}
			client, err := a.newClient()
			if err != nil {
				return err
			}
			d, err := a.newDashboard(client,
				usecase.WithConfirmer(confirmerFor(assumeYes, a.in, a.out)),
				usecase.WithStore(usecase.NewStoreWithFilters(defaultFilters(pageSize))),
			)
			if err != nil {
				return err
			}

			deleted, err := d.DeleteRow(ctx, id)
			if !deleted {
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, "cancelled")
				return nil
			}

			fmt.Fprintf(a.out, "log %d deleted\n", id)
			if err != nil {
				fmt.Fprintf(a.out, "failed to refresh view: %v\n", err)
				return nil
			}
			renderStats(a.out, d.State().Stats)
			return nil
		},
	}
}

func parseID(c *cli.Command) (int64, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, goerr.New("ID argument is required")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid ID", goerr.V("id", arg))
	}
	return id, nil
}
