package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/gscctl/internal/gsc"
)

// NewGSCMCPServer creates an in-memory MCP server exposing Search Console
// tools. Returns the server and a client transport for connecting to it.
func NewGSCMCPServer(api gsc.API) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(api)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered Search Console tools.
func CreateMCPServer(api gsc.API) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gscctl",
		Version: "1.0.0",
	}, nil)

	// Property tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_properties",
		Description: "List all Search Console properties accessible to the service account",
	}, ListPropertiesHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_site_details",
		Description: "Get details about a specific Search Console property",
	}, SiteDetailsHandler(api))

	// Search analytics tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_search_analytics",
		Description: "Get top search queries for a site over a recent period",
	}, SearchAnalyticsHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_advanced_search_analytics",
		Description: "Get search analytics with custom dimensions, filtering, sorting, and pagination",
	}, AdvancedSearchAnalyticsHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare_search_periods",
		Description: "Compare search analytics between two date periods",
	}, ComparePeriodsHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_performance_overview",
		Description: "Get a performance overview with totals and a daily trend",
	}, PerformanceOverviewHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_search_by_page_query",
		Description: "Get search queries that lead to a specific page",
	}, PageQueriesHandler(api))

	// URL inspection tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect_url",
		Description: "Inspect a URL for indexing status, canonical, and rich results",
	}, InspectURLHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "batch_url_inspection",
		Description: "Inspect multiple URLs (up to 10) and summarize each",
	}, BatchInspectHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_indexing_issues",
		Description: "Check a list of URLs for common indexing problems",
	}, IndexingIssuesHandler(api))

	// Sitemap tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_sitemaps",
		Description: "List submitted sitemaps or the children of a sitemap index",
	}, ListSitemapsHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_sitemap_details",
		Description: "Get status, errors, and content breakdown for a sitemap",
	}, SitemapDetailsHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "submit_sitemap",
		Description: "Submit a sitemap to Search Console",
	}, SubmitSitemapHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_sitemap",
		Description: "Remove a sitemap from Search Console",
	}, DeleteSitemapHandler(api))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "manage_sitemaps",
		Description: "All-in-one sitemap management: list, details, submit, or delete",
	}, ManageSitemapsHandler(api))

	return server
}
