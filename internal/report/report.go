// Package report renders Search Console data as plain-text reports. The
// output goes to MCP clients and piped shells, so it is unstyled text:
// pipe-separated tables with a short header block.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chris-regnier/gscctl/internal/analytics"
	"github.com/chris-regnier/gscctl/internal/gsc"
)

const (
	ruleWidth     = 80
	wideRuleWidth = 100

	// keyWidth caps dimension values in analytics tables so long queries
	// and URLs don't blow up the row.
	keyWidth        = 30
	compareKeyWidth = 20
)

func rule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("-", width))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// formatTime renders an API timestamp, or "Never" for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format("2006-01-02 15:04")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatProperties lists the caller's properties.
func FormatProperties(w io.Writer, props []gsc.Property) {
	if len(props) == 0 {
		fmt.Fprintln(w, "No Search Console properties found.")
		return
	}
	for _, p := range props {
		fmt.Fprintf(w, "- %s (%s)\n", p.SiteURL, p.PermissionLevel)
	}
}

// FormatSiteDetails renders one property.
func FormatSiteDetails(w io.Writer, p gsc.Property) {
	fmt.Fprintf(w, "Site details for %s:\n", p.SiteURL)
	rule(w, 50)
	fmt.Fprintf(w, "Permission level: %s\n", p.PermissionLevel)
}

// FormatAnalyticsTable renders dimension-keyed metric rows as a pipe table.
func FormatAnalyticsTable(w io.Writer, dims []string, rows []analytics.MetricRow) {
	header := make([]string, 0, len(dims)+4)
	for _, d := range dims {
		header = append(header, capitalize(d))
	}
	header = append(header, "Clicks", "Impressions", "CTR", "Position")
	fmt.Fprintln(w, strings.Join(header, " | "))
	rule(w, ruleWidth)

	for _, r := range rows {
		cells := make([]string, 0, len(r.Key)+4)
		for _, k := range r.Key {
			cells = append(cells, truncate(k, keyWidth))
		}
		cells = append(cells,
			fmt.Sprintf("%d", r.Clicks),
			fmt.Sprintf("%d", r.Impressions),
			fmt.Sprintf("%.2f%%", r.CTR*100),
			fmt.Sprintf("%.1f", r.Position),
		)
		fmt.Fprintln(w, strings.Join(cells, " | "))
	}
}

// PaginationHint tells the reader how to fetch the next page when the
// result filled the requested window.
func PaginationHint(w io.Writer, startRow, rowLimit int64, returned int) {
	if int64(returned) != rowLimit {
		return
	}
	fmt.Fprintln(w, "\nThere may be more results available. To see the next page, use:")
	fmt.Fprintf(w, "start_row: %d, row_limit: %d\n", startRow+rowLimit, rowLimit)
}

// FormatComparison renders ranked period-comparison rows. The percentage
// sentinel renders as N/A and is never treated as a number.
func FormatComparison(w io.Writer, siteURL string, dims []string, period1, period2 analytics.DateRange, rows []analytics.ComparisonRow) {
	fmt.Fprintf(w, "Search analytics comparison for %s:\n", siteURL)
	fmt.Fprintf(w, "Period 1: %s to %s\n", period1.StartString(), period1.EndString())
	fmt.Fprintf(w, "Period 2: %s to %s\n", period2.StartString(), period2.EndString())
	fmt.Fprintf(w, "Dimension(s): %s\n", strings.Join(dims, ","))
	fmt.Fprintf(w, "Top %d results by change in clicks:\n", len(rows))
	fmt.Fprintln(w)
	rule(w, wideRuleWidth)

	dimHeader := make([]string, 0, len(dims))
	for _, d := range dims {
		dimHeader = append(dimHeader, capitalize(d))
	}
	fmt.Fprintf(w, "%s | P1 Clicks | P2 Clicks | Change | %% | P1 Pos | P2 Pos | Pos Δ\n",
		strings.Join(dimHeader, " | "))
	rule(w, wideRuleWidth)

	for _, r := range rows {
		keyCells := make([]string, 0, len(r.Key))
		for _, k := range r.Key {
			keyCells = append(keyCells, truncate(k, compareKeyWidth))
		}
		fmt.Fprintf(w, "%s | %d | %d | %+d | %s | %.1f | %.1f | %+.1f\n",
			strings.Join(keyCells, " | "),
			r.Period1.Clicks, r.Period2.Clicks,
			r.ClickDiff, r.ClickPct,
			r.Period1.Position, r.Period2.Position, r.PositionDiff,
		)
	}
}

// FormatOverview renders totals plus an optional daily trend. totals is nil
// when the period had no data at all.
func FormatOverview(w io.Writer, siteURL string, days int, totals *analytics.MetricRow, trend []analytics.MetricRow) {
	fmt.Fprintf(w, "Performance Overview for %s (last %d days):\n", siteURL, days)
	rule(w, ruleWidth)

	if totals == nil {
		fmt.Fprintln(w, "No data available for the selected period.")
		return
	}
	fmt.Fprintf(w, "Total Clicks: %d\n", totals.Clicks)
	fmt.Fprintf(w, "Total Impressions: %d\n", totals.Impressions)
	fmt.Fprintf(w, "Average CTR: %.2f%%\n", totals.CTR*100)
	fmt.Fprintf(w, "Average Position: %.1f\n", totals.Position)

	if len(trend) == 0 {
		return
	}
	fmt.Fprintln(w, "\nDaily Trend:")
	fmt.Fprintln(w, "Date | Clicks | Impressions | CTR | Position")
	rule(w, ruleWidth)
	for _, r := range trend {
		date := r.Key.String()
		if t, err := time.Parse("2006-01-02", date); err == nil {
			date = t.Format("01/02")
		}
		fmt.Fprintf(w, "%s | %d | %d | %.2f%% | %.1f\n",
			date, r.Clicks, r.Impressions, r.CTR*100, r.Position)
	}
}
