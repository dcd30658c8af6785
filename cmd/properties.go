package cmd

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gscctl/internal/report"
)

var propertiesCmd = &cobra.Command{
	Use:   "properties [site-url]",
	Short: "List Search Console properties",
	Long:  "List all properties the service account can access, or show details for one property.",
	Example: `  gscctl properties
  gscctl properties https://example.com/
  gscctl properties sc-domain:example.com
  gscctl properties --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			p, err := api.GetSite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			var buf bytes.Buffer
			report.FormatSiteDetails(&buf, p)
			_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
			return err
		}

		props, err := api.ListSites(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), props)
		}
		var buf bytes.Buffer
		report.FormatProperties(&buf, props)
		_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
		return err
	},
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
