package mcptools

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/gscctl/internal/gsc"
	"github.com/chris-regnier/gscctl/internal/report"
)

// ListSitemapsHandler returns the handler for the list_sitemaps MCP tool.
func ListSitemapsHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input ListSitemapsInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListSitemapsInput) (*mcp.CallToolResult, ReportOutput, error) {
		return listSitemaps(ctx, api, input.SiteURL, input.SitemapIndex)
	}
}

func listSitemaps(ctx context.Context, api gsc.API, siteURL, sitemapIndex string) (*mcp.CallToolResult, ReportOutput, error) {
	maps, err := api.ListSitemaps(ctx, siteURL, sitemapIndex)
	if err != nil {
		return nil, ReportOutput{}, err
	}
	if len(maps) == 0 {
		msg := fmt.Sprintf("No sitemaps found for %s.", siteURL)
		if sitemapIndex != "" {
			msg = fmt.Sprintf("No sitemaps found for %s in index %s.", siteURL, sitemapIndex)
		}
		return nil, ReportOutput{Report: msg}, nil
	}

	source := "all submitted sitemaps"
	if sitemapIndex != "" {
		source = "child sitemaps from index: " + sitemapIndex
	}

	var buf bytes.Buffer
	report.FormatSitemaps(&buf, siteURL, source, maps)
	return nil, ReportOutput{Report: buf.String()}, nil
}

// SitemapDetailsHandler returns the handler for the get_sitemap_details MCP tool.
func SitemapDetailsHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input SitemapDetailsInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SitemapDetailsInput) (*mcp.CallToolResult, ReportOutput, error) {
		return sitemapDetails(ctx, api, input.SiteURL, input.SitemapURL)
	}
}

func sitemapDetails(ctx context.Context, api gsc.API, siteURL, sitemapURL string) (*mcp.CallToolResult, ReportOutput, error) {
	m, err := api.GetSitemap(ctx, siteURL, sitemapURL)
	if err != nil {
		return nil, ReportOutput{}, err
	}

	var buf bytes.Buffer
	report.FormatSitemapDetails(&buf, sitemapURL, m)
	return nil, ReportOutput{Report: buf.String()}, nil
}

// SubmitSitemapHandler returns the handler for the submit_sitemap MCP tool.
func SubmitSitemapHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input SubmitSitemapInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SubmitSitemapInput) (*mcp.CallToolResult, ReportOutput, error) {
		return submitSitemap(ctx, api, input.SiteURL, input.SitemapURL)
	}
}

func submitSitemap(ctx context.Context, api gsc.API, siteURL, sitemapURL string) (*mcp.CallToolResult, ReportOutput, error) {
	if err := api.SubmitSitemap(ctx, siteURL, sitemapURL); err != nil {
		return nil, ReportOutput{}, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Successfully submitted sitemap: %s\n", sitemapURL)

	// Confirmation details are best-effort: the submission already
	// succeeded even if the follow-up read fails.
	if m, err := api.GetSitemap(ctx, siteURL, sitemapURL); err == nil {
		if !m.LastSubmitted.IsZero() {
			fmt.Fprintf(&buf, "Submission time: %s\n", m.LastSubmitted.Format("2006-01-02 15:04"))
		}
		status := "Processing started"
		if m.IsPending {
			status = "Pending processing"
		}
		fmt.Fprintf(&buf, "Status: %s\n", status)
		fmt.Fprintln(&buf, "\nNote: Google may take some time to process the sitemap. Check back later for full details.")
	} else {
		fmt.Fprintln(&buf, "\nGoogle will queue it for processing.")
	}
	return nil, ReportOutput{Report: buf.String()}, nil
}

// DeleteSitemapHandler returns the handler for the delete_sitemap MCP tool.
func DeleteSitemapHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input DeleteSitemapInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteSitemapInput) (*mcp.CallToolResult, ReportOutput, error) {
		return deleteSitemap(ctx, api, input.SiteURL, input.SitemapURL)
	}
}

func deleteSitemap(ctx context.Context, api gsc.API, siteURL, sitemapURL string) (*mcp.CallToolResult, ReportOutput, error) {
	// Check existence first so a stale path gets a friendly answer rather
	// than a raw 404.
	if _, err := api.GetSitemap(ctx, siteURL, sitemapURL); err != nil {
		if gsc.IsNotFound(err) {
			return nil, ReportOutput{Report: fmt.Sprintf(
				"Sitemap not found: %s. It may have already been deleted or was never submitted.", sitemapURL)}, nil
		}
		return nil, ReportOutput{}, err
	}

	if err := api.DeleteSitemap(ctx, siteURL, sitemapURL); err != nil {
		return nil, ReportOutput{}, err
	}
	return nil, ReportOutput{Report: fmt.Sprintf(
		"Successfully deleted sitemap: %s\n\nNote: This only removes the sitemap from Search Console. Any URLs already indexed will remain in Google's index.",
		sitemapURL)}, nil
}

// ManageSitemapsHandler returns the handler for the manage_sitemaps MCP
// tool, an all-in-one dispatcher over the other sitemap operations.
func ManageSitemapsHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input ManageSitemapsInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ManageSitemapsInput) (*mcp.CallToolResult, ReportOutput, error) {
		action := strings.ToLower(strings.TrimSpace(input.Action))

		switch action {
		case "details", "submit", "delete":
			if input.SitemapURL == "" {
				return nil, ReportOutput{}, fmt.Errorf("the %s action requires a sitemap_url parameter", action)
			}
		case "list":
		default:
			return nil, ReportOutput{}, fmt.Errorf("invalid action %q: use one of list, details, submit, delete", input.Action)
		}

		switch action {
		case "list":
			return listSitemaps(ctx, api, input.SiteURL, input.SitemapIndex)
		case "details":
			return sitemapDetails(ctx, api, input.SiteURL, input.SitemapURL)
		case "submit":
			return submitSitemap(ctx, api, input.SiteURL, input.SitemapURL)
		default:
			return deleteSitemap(ctx, api, input.SiteURL, input.SitemapURL)
		}
	}
}
