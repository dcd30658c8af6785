package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gscctl/internal/gsc"
	"github.com/chris-regnier/gscctl/internal/report"
)

var sitemapIndexFlag string

var sitemapsCmd = &cobra.Command{
	Use:   "sitemaps",
	Short: "Manage sitemaps",
	Long:  "List, inspect, submit, and delete sitemaps for a property.",
}

var sitemapsListCmd = &cobra.Command{
	Use:   "list <site-url>",
	Short: "List submitted sitemaps",
	Example: `  gscctl sitemaps list https://example.com/
  gscctl sitemaps list https://example.com/ --index https://example.com/sitemap_index.xml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteURL := args[0]
		maps, err := api.ListSitemaps(cmd.Context(), siteURL, sitemapIndexFlag)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), maps)
		}
		if len(maps) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No sitemaps found for %s.\n", siteURL)
			return nil
		}
		source := "all submitted sitemaps"
		if sitemapIndexFlag != "" {
			source = "child sitemaps from index: " + sitemapIndexFlag
		}
		var buf bytes.Buffer
		report.FormatSitemaps(&buf, siteURL, source, maps)
		_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
		return err
	},
}

var sitemapsShowCmd = &cobra.Command{
	Use:     "show <site-url> <sitemap-url>",
	Short:   "Show sitemap status and contents",
	Example: `  gscctl sitemaps show https://example.com/ https://example.com/sitemap.xml`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := api.GetSitemap(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), m)
		}
		var buf bytes.Buffer
		report.FormatSitemapDetails(&buf, args[1], m)
		_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
		return err
	},
}

var sitemapsSubmitCmd = &cobra.Command{
	Use:     "submit <site-url> <sitemap-url>",
	Short:   "Submit a sitemap",
	Long:    "Submit a sitemap to Search Console. Requires the full API scope.",
	Example: `  gscctl --scope full sitemaps submit https://example.com/ https://example.com/sitemap.xml`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.SubmitSitemap(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully submitted sitemap: %s\n", args[1])
		return nil
	},
}

var sitemapsDeleteCmd = &cobra.Command{
	Use:     "delete <site-url> <sitemap-url>",
	Short:   "Delete a sitemap",
	Long:    "Remove a sitemap from Search Console. Requires the full API scope.",
	Example: `  gscctl --scope full sitemaps delete https://example.com/ https://example.com/sitemap.xml`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := api.DeleteSitemap(cmd.Context(), args[0], args[1])
		if gsc.IsNotFound(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "Sitemap not found: %s. It may have already been deleted.\n", args[1])
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted sitemap: %s\n", args[1])
		return nil
	},
}

func init() {
	sitemapsListCmd.Flags().StringVar(&sitemapIndexFlag, "index", "", "sitemap index URL to list children of")
	sitemapsCmd.AddCommand(sitemapsListCmd)
	sitemapsCmd.AddCommand(sitemapsShowCmd)
	sitemapsCmd.AddCommand(sitemapsSubmitCmd)
	sitemapsCmd.AddCommand(sitemapsDeleteCmd)
	rootCmd.AddCommand(sitemapsCmd)
}
