package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
	"github.com/secmon-lab/chatdesk/pkg/domain/types"
	"github.com/secmon-lab/chatdesk/pkg/usecase"
)

const (
	loadingMessage = "در حال بارگذاری..."
	emptyMessage   = "هیچ لاگی یافت نشد"
)

var (
	successColor = color.New(color.FgGreen).SprintFunc()
	failureColor = color.New(color.FgRed).SprintFunc()
	warnColor    = color.New(color.FgYellow).SprintFunc()
	infoColor    = color.New(color.FgBlue).SprintFunc()
	boldColor    = color.New(color.Bold).SprintFunc()
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

// renderStats prints the four stat cards
func renderStats(w io.Writer, stats *model.LogStats) {
	view := usecase.PresentStats(stats)
	if view == nil {
		return
	}

	table := newTable(w, []string{"کل گفت‌وگوها", "نرخ موفقیت", "سؤالات بی‌پاسخ", "نرخ بی‌پاسخی"})
	table.Append([]string{
		boldColor(view.TotalLogs),
		successColor(view.SuccessRate),
		warnColor(view.UnansweredLogs),
		infoColor(view.UnansweredRate),
	})
	table.Render()
}

// renderFilters prints the active filters and the accepted intent values
func renderFilters(w io.Writer, f model.LogFilters) {
	table := newTable(w, []string{"فیلتر", "مقدار"})
	table.Append([]string{"success", triState(f.Success)})
	table.Append([]string{"intent", orAll(f.Intent)})
	table.Append([]string{"unanswered_only", triState(f.UnansweredOnly)})
	table.Append([]string{"from_date", orAll(f.FromDate)})
	table.Append([]string{"to_date", orAll(f.ToDate)})
	table.Append([]string{"page", strconv.Itoa(f.Page)})
	table.Append([]string{"page_size", f.PageSize.String()})
	table.Render()

	intents := make([]string, 0, len(types.AllIntents()))
	for _, i := range types.AllIntents() {
		intents = append(intents, fmt.Sprintf("%s (%s)", i, i.Label()))
	}
	fmt.Fprintf(w, "intents: %s\n", strings.Join(intents, ", "))
}

// renderLogs prints the log table the way the dashboard shows it
func renderLogs(w io.Writer, state model.ViewState, loc *time.Location) {
	switch {
	case state.Loading:
		fmt.Fprintln(w, loadingMessage)
		return
	case len(state.Logs) == 0:
		fmt.Fprintln(w, emptyMessage)
		return
	}

	table := newTable(w, []string{"شناسه", "زمان", "سؤال کاربر", "پاسخ ربات", "نیت", "منبع", "اطمینان", "موفقیت"})
	for _, row := range usecase.PresentRows(state.Logs, loc) {
		status := failureColor(row.Status)
		if row.Success {
			status = successColor(row.Status)
		}
		table.Append([]string{
			strconv.FormatInt(row.ID, 10),
			strings.TrimSpace(row.Date + " " + row.Time),
			row.UserText,
			row.AIText,
			row.Intent,
			row.Source,
			row.Confidence,
			status,
		})
	}
	table.Render()
}

// renderView prints stats, the optional filter panel and the log table
func renderView(w io.Writer, state model.ViewState, loc *time.Location) {
	renderStats(w, state.Stats)
	if state.ShowFilters {
		renderFilters(w, state.Filters)
	}
	renderLogs(w, state, loc)
}

func renderFAQs(w io.Writer, faqs []model.FAQ) {
	table := newTable(w, []string{"id", "question", "category", "active"})
	for _, faq := range faqs {
		category := ""
		if faq.Category != nil {
			category = faq.Category.Name
		}
		table.Append([]string{
			strconv.FormatInt(faq.ID, 10),
			usecase.Truncate(faq.Question, usecase.TruncateLimit),
			category,
			activeLabel(faq.IsActive),
		})
	}
	table.Render()
}

func renderFAQ(w io.Writer, faq *model.FAQ) {
	table := newTable(w, []string{"field", "value"})
	table.Append([]string{"id", strconv.FormatInt(faq.ID, 10)})
	table.Append([]string{"question", faq.Question})
	table.Append([]string{"answer", faq.Answer})
	if faq.Category != nil {
		table.Append([]string{"category", faq.Category.Name})
	}
	table.Append([]string{"active", activeLabel(faq.IsActive)})
	if !faq.CreatedAt.IsZero() {
		table.Append([]string{"created_at", faq.CreatedAt.Format(time.RFC3339)})
	}
	table.Render()
}

func renderCategories(w io.Writer, categories []model.Category) {
	table := newTable(w, []string{"id", "name", "slug"})
	for _, c := range categories {
		table.Append([]string{strconv.FormatInt(c.ID, 10), c.Name, c.Slug})
	}
	table.Render()
}

func activeLabel(active bool) string {
	if active {
		return successColor("yes")
	}
	return failureColor("no")
}

func triState(b *bool) string {
	if b == nil {
		return "همه"
	}
	return strconv.FormatBool(*b)
}

func orAll(s string) string {
	if s == "" {
		return "همه"
	}
	return s
}
