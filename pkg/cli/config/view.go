package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/types"
	"github.com/secmon-lab/chatdesk/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// View holds display settings of the log dashboard
type View struct {
	pageSize    int
	timezone    string
	scopedStats bool
}

// Flags returns CLI flags for view configuration
func (v *View) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "page-size",
			Usage:       "Logs per page (25, 50 or 100)",
			Category:    "View",
			Value:       int(types.DefaultPageSize),
			Sources:     cli.EnvVars("CHATDESK_PAGE_SIZE"),
			Destination: &v.pageSize,
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "IANA time zone for displayed and exported timestamps",
			Category:    "View",
			Value:       "Local",
			Sources:     cli.EnvVars("CHATDESK_TIMEZONE"),
			Destination: &v.timezone,
		},
		&cli.BoolFlag{
			Name:        "scoped-stats",
			Usage:       "Compute stats over the filtered logs instead of all logs",
			Category:    "View",
			Sources:     cli.EnvVars("CHATDESK_SCOPED_STATS"),
			Destination: &v.scopedStats,
		},
	}
}

// ApplyProfile fills flags that were not set explicitly from p
func (v *View) ApplyProfile(c *cli.Command, p *ProfileData) {
	if p == nil {
		return
	}
	if !c.IsSet("page-size") && p.View.PageSize != 0 {
		v.pageSize = p.View.PageSize
	}
	if !c.IsSet("timezone") && p.View.Timezone != "" {
		v.timezone = p.View.Timezone
	}
	if !c.IsSet("scoped-stats") && p.View.ScopedStats {
		v.scopedStats = true
	}
}

// PageSize returns the validated page size
func (v *View) PageSize() (types.PageSize, error) {
	size := types.PageSize(v.pageSize)
	if err := size.Validate(); err != nil {
		return 0, err
	}
	return size, nil
}

// Location returns the configured time zone
func (v *View) Location() (*time.Location, error) {
	if v.timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(v.timezone)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidTimezone, "failed to load timezone", goerr.V(ValueKey, v.timezone))
	}
	return loc, nil
}

// LogAttrs returns log attributes for the view configuration
func (v *View) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("page_size", v.pageSize),
		slog.String("timezone", v.timezone),
		slog.Bool("scoped_stats", v.scopedStats),
	}
}

// DashboardOptions converts the view settings into dashboard options
func (v *View) DashboardOptions() ([]usecase.DashboardOption, error) {
	loc, err := v.Location()
	if err != nil {
		return nil, err
	}

	opts := []usecase.DashboardOption{usecase.WithLocation(loc)}
	if v.scopedStats {
		opts = append(opts, usecase.WithScopedStats())
	}
	return opts, nil
}
