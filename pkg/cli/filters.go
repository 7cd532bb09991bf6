package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
	"github.com/secmon-lab/chatdesk/pkg/domain/types"
	"github.com/secmon-lab/chatdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// filterOptions holds the log filter flags shared by logs subcommands
type filterOptions struct {
	success        bool
	intent         string
	unansweredOnly bool
	fromDate       string
	toDate         string
	page           int
}

func (f *filterOptions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "success",
			Usage:       "Only successful (--success) or failed (--success=false) conversations",
			Category:    "Filters",
			Destination: &f.success,
		},
		&cli.StringFlag{
			Name:        "intent",
			Usage:       "Only conversations with this intent (faq, smalltalk, chitchat, complaint, sales, support, out_of_scope)",
			Category:    "Filters",
			Destination: &f.intent,
		},
		&cli.BoolFlag{
			Name:        "unanswered-only",
			Usage:       "Only unanswered questions",
			Category:    "Filters",
			Destination: &f.unansweredOnly,
		},
		&cli.StringFlag{
			Name:        "from",
			Usage:       "Start date (YYYY-MM-DD)",
			Category:    "Filters",
			Destination: &f.fromDate,
		},
		&cli.StringFlag{
			Name:        "to",
			Usage:       "End date (YYYY-MM-DD)",
			Category:    "Filters",
			Destination: &f.toDate,
		},
		&cli.IntFlag{
			Name:        "page",
			Usage:       "Page number",
			Category:    "Filters",
			Value:       1,
			Destination: &f.page,
		},
	}
}

// build turns the flags into filters. Unset tri-state flags are omitted.
func (f *filterOptions) build(c *cli.Command, pageSize types.PageSize) (model.LogFilters, error) {
	filters := defaultFilters(pageSize)
	filters.Page = f.page
	filters.Intent = f.intent
	filters.FromDate = f.fromDate
	filters.ToDate = f.toDate

	if c.IsSet("success") {
		filters.Success = model.Ptr(f.success)
	}
	if c.IsSet("unanswered-only") {
		filters.UnansweredOnly = model.Ptr(f.unansweredOnly)
	}

	if f.intent != "" && !types.Intent(f.intent).IsValid() {
		logging.Default().Warn("unknown intent, passing it to the backend as is", "intent", f.intent)
	}

	if err := filters.Validate(); err != nil {
		return model.LogFilters{}, goerr.Wrap(err, "invalid filter flags")
	}
	return filters, nil
}

func defaultFilters(pageSize types.PageSize) model.LogFilters {
	filters := model.DefaultLogFilters()
	filters.PageSize = pageSize
	return filters
}
