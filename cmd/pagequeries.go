package cmd

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gscctl/internal/analytics"
	"github.com/chris-regnier/gscctl/internal/report"
)

var pageQueriesDays int

var pageQueriesCmd = &cobra.Command{
	Use:   "pagequeries <site-url> <page-url>",
	Short: "Show the queries driving traffic to one page",
	Long:  "Show the top search queries that lead to a specific page, with per-query metrics and period totals.",
	Example: `  gscctl pagequeries https://example.com/ https://example.com/blog/post
  gscctl pagequeries https://example.com/ https://example.com/blog/post --days 7`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteURL, pageURL := args[0], args[1]

		days := pageQueriesDays
		if days <= 0 {
			days = appConfig.LookbackDays
		}
		r, err := analytics.ResolveDateRange("", "", days, time.Now())
		if err != nil {
			return err
		}

		query := analytics.BuildQuery(r, analytics.QueryParams{
			Dimensions:       "query",
			RowLimit:         20,
			SortBy:           "clicks",
			SortDirection:    "descending",
			FilterDimension:  "page",
			FilterOperator:   "equals",
			FilterExpression: pageURL,
		})

		rows, err := analytics.NewEngine(api).Execute(cmd.Context(), siteURL, query)
		if err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), rows)
		}
		if len(rows) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No search data found for page %s in the last %d days.\n", pageURL, days)
			return nil
		}

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "Search queries for page %s (last %d days):\n\n", pageURL, days)
		report.FormatAnalyticsTable(&buf, query.Dimensions, rows)

		var totalClicks, totalImpressions int64
		for _, row := range rows {
			totalClicks += row.Clicks
			totalImpressions += row.Impressions
		}
		avgCTR := 0.0
		if totalImpressions > 0 {
			avgCTR = float64(totalClicks) / float64(totalImpressions) * 100
		}
		fmt.Fprintf(&buf, "--------\nTOTAL | %d | %d | %.2f%% | -\n", totalClicks, totalImpressions, avgCTR)

		_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
		return err
	},
}

func init() {
	pageQueriesCmd.Flags().IntVar(&pageQueriesDays, "days", 0, "days to look back")
	rootCmd.AddCommand(pageQueriesCmd)
}
