package cmd

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chris-regnier/gscctl/internal/analytics"
	"github.com/chris-regnier/gscctl/internal/report"
)

var (
	compareP1Start    string
	compareP1End      string
	compareP2Start    string
	compareP2End      string
	compareDimensions string
	compareLimit      int
)

var compareCmd = &cobra.Command{
	Use:   "compare <site-url>",
	Short: "Compare search analytics between two periods",
	Long: "Compare search analytics between two date periods. Results are joined on the\n" +
		"chosen dimensions and sorted by the size of the click change.",
	Example: `  gscctl compare https://example.com/ \
    --p1-start 2025-06-01 --p1-end 2025-06-30 \
    --p2-start 2025-07-01 --p2-end 2025-07-31
  gscctl compare https://example.com/ --p1-start ... --dimensions query,device --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteURL := args[0]

		now := time.Now()
		p1, err := analytics.ResolveDateRange(compareP1Start, compareP1End, appConfig.LookbackDays, now)
		if err != nil {
			return fmt.Errorf("period 1: %w", err)
		}
		p2, err := analytics.ResolveDateRange(compareP2Start, compareP2End, appConfig.LookbackDays, now)
		if err != nil {
			return fmt.Errorf("period 2: %w", err)
		}

		dims := analytics.ParseDimensions(compareDimensions)
		comparator := analytics.NewComparator(analytics.NewEngine(api))
		rows, err := comparator.Compare(cmd.Context(), siteURL, dims, p1, p2, compareLimit)
		if errors.Is(err, analytics.ErrNoData) {
			fmt.Fprintf(cmd.OutOrStdout(), "No data found for either period for %s.\n", siteURL)
			return nil
		}
		if err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), rows)
		}

		var buf bytes.Buffer
		report.FormatComparison(&buf, siteURL, dims, p1, p2, rows)
		_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
		return err
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareP1Start, "p1-start", "", "period 1 start date (YYYY-MM-DD)")
	compareCmd.Flags().StringVar(&compareP1End, "p1-end", "", "period 1 end date (YYYY-MM-DD)")
	compareCmd.Flags().StringVar(&compareP2Start, "p2-start", "", "period 2 start date (YYYY-MM-DD)")
	compareCmd.Flags().StringVar(&compareP2End, "p2-end", "", "period 2 end date (YYYY-MM-DD)")
	compareCmd.Flags().StringVar(&compareDimensions, "dimensions", "query", "comma-separated dimensions to group by")
	compareCmd.Flags().IntVar(&compareLimit, "limit", 10, "number of top results to show")
	rootCmd.AddCommand(compareCmd)
}
