package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chris-regnier/gscctl/internal/gsc"
	"github.com/chris-regnier/gscctl/internal/report"
)

var inspectSummary bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <site-url> <page-url> [page-url...]",
	Short: "Inspect URLs for indexing status",
	Long: "Inspect one or more URLs in a property. A single URL gets a full report;\n" +
		"multiple URLs get brief per-URL summaries. Use --summary for an aggregated\n" +
		"indexing issue report instead.",
	Example: `  gscctl inspect https://example.com/ https://example.com/about
  gscctl inspect https://example.com/ https://example.com/a https://example.com/b
  gscctl inspect --summary https://example.com/ https://example.com/a https://example.com/b`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteURL := args[0]
		pages := args[1:]

		var buf bytes.Buffer
		switch {
		case inspectSummary:
			var summary report.IssueSummary
			for _, page := range pages {
				insp, err := api.InspectURL(cmd.Context(), siteURL, page)
				if err != nil {
					summary.AddError(page, err)
					continue
				}
				summary.Add(page, insp)
			}
			report.FormatIndexingIssues(&buf, siteURL, summary)

		case len(pages) == 1:
			insp, err := api.InspectURL(cmd.Context(), siteURL, pages[0])
			if errors.Is(err, gsc.ErrNoInspection) {
				fmt.Fprintf(cmd.OutOrStdout(), "No inspection data found for %s.\n", pages[0])
				return nil
			}
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), insp)
			}
			report.FormatInspection(&buf, pages[0], insp)

		default:
			for i, page := range pages {
				if i > 0 {
					buf.WriteString("\n")
				}
				insp, err := api.InspectURL(cmd.Context(), siteURL, page)
				if err != nil {
					fmt.Fprintf(&buf, "%s: inspection failed: %v\n", page, err)
					continue
				}
				report.FormatInspectionBrief(&buf, page, insp)
			}
		}

		_, err := io.WriteString(cmd.OutOrStdout(), buf.String())
		return err
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectSummary, "summary", false, "aggregate results into an indexing issue summary")
	rootCmd.AddCommand(inspectCmd)
}
