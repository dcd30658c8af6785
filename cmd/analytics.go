package cmd

import (
	"bytes"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gscctl/internal/analytics"
	"github.com/chris-regnier/gscctl/internal/report"
)

var (
	analyticsStart      string
	analyticsEnd        string
	analyticsDays       int
	analyticsDimensions string
	analyticsSearchType string
	analyticsRowLimit   int64
	analyticsStartRow   int64
	analyticsSortBy     string
	analyticsSortDir    string
	analyticsFilterDim  string
	analyticsFilterOp   string
	analyticsFilterExpr string
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics <site-url>",
	Short: "Query search analytics",
	Long:  "Query search analytics for a property with custom dimensions, filtering, sorting, and pagination.",
	Example: `  gscctl analytics https://example.com/
  gscctl analytics https://example.com/ --days 7 --dimensions query,page
  gscctl analytics https://example.com/ --start 2025-06-01 --end 2025-06-30 --sort-by impressions
  gscctl analytics https://example.com/ --filter-dimension query --filter-expression "golang"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteURL := args[0]

		days := analyticsDays
		if days <= 0 {
			days = appConfig.LookbackDays
		}
		dr, err := analytics.ResolveDateRange(analyticsStart, analyticsEnd, days, time.Now())
		if err != nil {
			return err
		}

		rowLimit := analyticsRowLimit
		if rowLimit <= 0 {
			rowLimit = appConfig.RowLimit
		}
		req := analytics.BuildQuery(dr, analytics.QueryParams{
			Dimensions:       analyticsDimensions,
			SearchType:       analyticsSearchType,
			RowLimit:         rowLimit,
			StartRow:         analyticsStartRow,
			SortBy:           analyticsSortBy,
			SortDirection:    analyticsSortDir,
			FilterDimension:  analyticsFilterDim,
			FilterOperator:   analyticsFilterOp,
			FilterExpression: analyticsFilterExpr,
		})

		rows, err := analytics.NewEngine(api).Execute(cmd.Context(), siteURL, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), rows)
		}

		var buf bytes.Buffer
		report.FormatAnalyticsTable(&buf, req.Dimensions, rows)
		report.PaginationHint(&buf, req.StartRow, req.RowLimit, len(rows))
		_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
		return err
	},
}

func init() {
	analyticsCmd.Flags().StringVar(&analyticsStart, "start", "", "start date (YYYY-MM-DD)")
	analyticsCmd.Flags().StringVar(&analyticsEnd, "end", "", "end date (YYYY-MM-DD)")
	analyticsCmd.Flags().IntVar(&analyticsDays, "days", 0, "days to look back when --start is omitted")
	analyticsCmd.Flags().StringVar(&analyticsDimensions, "dimensions", "query", "comma-separated dimensions")
	analyticsCmd.Flags().StringVar(&analyticsSearchType, "search-type", "web", "search type (web|image|video|news|discover)")
	analyticsCmd.Flags().Int64Var(&analyticsRowLimit, "row-limit", 0, "maximum rows to return")
	analyticsCmd.Flags().Int64Var(&analyticsStartRow, "start-row", 0, "starting row for pagination")
	analyticsCmd.Flags().StringVar(&analyticsSortBy, "sort-by", "clicks", "metric to sort by (clicks|impressions|ctr|position)")
	analyticsCmd.Flags().StringVar(&analyticsSortDir, "sort-direction", "descending", "sort direction (ascending|descending)")
	analyticsCmd.Flags().StringVar(&analyticsFilterDim, "filter-dimension", "", "dimension to filter on")
	analyticsCmd.Flags().StringVar(&analyticsFilterOp, "filter-operator", "contains", "filter operator (contains|equals|notContains|notEquals)")
	analyticsCmd.Flags().StringVar(&analyticsFilterExpr, "filter-expression", "", "filter expression value")
	rootCmd.AddCommand(analyticsCmd)
}
