package cmd

import (
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/chris-regnier/gscctl/internal/mcptools"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes Search Console
tools over stdio transport. This allows MCP clients like Claude Desktop to
query your properties.

Available tools:
  - list_properties, get_site_details
  - get_search_analytics, get_advanced_search_analytics
  - compare_search_periods, get_performance_overview, get_search_by_page_query
  - inspect_url, batch_url_inspection, check_indexing_issues
  - list_sitemaps, get_sitemap_details, submit_sitemap, delete_sitemap,
    manage_sitemaps

Example usage in Claude Desktop config:
  {
    "mcpServers": {
      "gscctl": {
        "command": "/path/to/gscctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Client is already initialized in PersistentPreRunE
	if api == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(api)

	// Log to stderr (stdout is reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("Starting gscctl MCP server (stdio transport)")
	log.Printf("Scope: %s", appConfig.Scope)

	// Run server with stdio transport
	// This blocks until the transport is closed
	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
