package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func cmdStats(a *app) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show aggregate chat log stats",
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}

			stats, err := client.GetLogStats(ctx, nil)
			if err != nil {
				a.reporter.Report(ctx, err, "failed to get log stats")
				return err
			}

			renderStats(a.out, stats)
			return nil
		},
	}
}
