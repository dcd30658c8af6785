package mcptools

import (
	"bytes"
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/gscctl/internal/gsc"
	"github.com/chris-regnier/gscctl/internal/report"
)

// ListPropertiesHandler returns the handler for the list_properties MCP tool.
func ListPropertiesHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input ListPropertiesInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListPropertiesInput) (*mcp.CallToolResult, ReportOutput, error) {
		props, err := api.ListSites(ctx)
		if err != nil {
			return nil, ReportOutput{}, err
		}

		var buf bytes.Buffer
		report.FormatProperties(&buf, props)
		return nil, ReportOutput{Report: buf.String()}, nil
	}
}

// SiteDetailsHandler returns the handler for the get_site_details MCP tool.
func SiteDetailsHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input SiteDetailsInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SiteDetailsInput) (*mcp.CallToolResult, ReportOutput, error) {
		prop, err := api.GetSite(ctx, input.SiteURL)
		if err != nil {
			return nil, ReportOutput{}, err
		}

		var buf bytes.Buffer
		report.FormatSiteDetails(&buf, prop)
		return nil, ReportOutput{Report: buf.String()}, nil
	}
}
