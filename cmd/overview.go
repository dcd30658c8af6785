package cmd

import (
	"bytes"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gscctl/internal/analytics"
	"github.com/chris-regnier/gscctl/internal/report"
)

var overviewDays int

var overviewCmd = &cobra.Command{
	Use:   "overview <site-url>",
	Short: "Show a performance overview",
	Long:  "Show period totals and a daily trend for a property.",
	Example: `  gscctl overview https://example.com/
  gscctl overview https://example.com/ --days 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteURL := args[0]

		days := overviewDays
		if days <= 0 {
			days = appConfig.LookbackDays
		}
		r, err := analytics.ResolveDateRange("", "", days, time.Now())
		if err != nil {
			return err
		}

		engine := analytics.NewEngine(api)

		// No dimensions: the single row is the period total.
		totalRows, err := engine.Execute(cmd.Context(), siteURL, &analytics.QueryRequest{
			StartDate: r.StartString(),
			EndDate:   r.EndString(),
			RowLimit:  1,
		})
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if len(totalRows) == 0 {
			report.FormatOverview(&buf, siteURL, days, nil, nil)
			_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
			return err
		}

		trend, err := engine.Execute(cmd.Context(), siteURL, &analytics.QueryRequest{
			StartDate:  r.StartString(),
			EndDate:    r.EndString(),
			Dimensions: []string{"date"},
			RowLimit:   int64(days) + 1,
		})
		if err != nil {
			return err
		}
		sort.Slice(trend, func(i, j int) bool {
			return trend[i].Key.String() < trend[j].Key.String()
		})

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), struct {
				Totals analytics.MetricRow   `json:"totals"`
				Trend  []analytics.MetricRow `json:"trend"`
			}{totalRows[0], trend})
		}

		report.FormatOverview(&buf, siteURL, days, &totalRows[0], trend)
		_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
		return err
	},
}

func init() {
	overviewCmd.Flags().IntVar(&overviewDays, "days", 0, "days to look back")
	rootCmd.AddCommand(overviewCmd)
}
