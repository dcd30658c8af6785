package mcptools

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/gscctl/internal/gsc"
	"github.com/chris-regnier/gscctl/internal/report"
)

// InspectURLHandler returns the handler for the inspect_url MCP tool.
func InspectURLHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input InspectURLInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input InspectURLInput) (*mcp.CallToolResult, ReportOutput, error) {
		insp, err := api.InspectURL(ctx, input.SiteURL, input.PageURL)
		if errors.Is(err, gsc.ErrNoInspection) {
			return nil, ReportOutput{Report: fmt.Sprintf("No inspection data found for %s.", input.PageURL)}, nil
		}
		if err != nil {
			return nil, ReportOutput{}, err
		}

		var buf bytes.Buffer
		report.FormatInspection(&buf, input.PageURL, insp)
		return nil, ReportOutput{Report: buf.String()}, nil
	}
}

// BatchInspectHandler returns the handler for the batch_url_inspection MCP
// tool. URLs are inspected sequentially; a failure on one URL is recorded
// in the report and does not abort the rest of the batch.
func BatchInspectHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input BatchInspectInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input BatchInspectInput) (*mcp.CallToolResult, ReportOutput, error) {
		urls, err := parseBatch(input.URLs)
		if err != nil {
			return nil, ReportOutput{}, err
		}

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "Batch URL Inspection Results for %s:\n\n", input.SiteURL)
		for _, pageURL := range urls {
			insp, err := api.InspectURL(ctx, input.SiteURL, pageURL)
			switch {
			case errors.Is(err, gsc.ErrNoInspection):
				fmt.Fprintf(&buf, "%s: No inspection data found\n", pageURL)
			case err != nil:
				fmt.Fprintf(&buf, "%s: Error - %v\n", pageURL, err)
			default:
				report.FormatInspectionBrief(&buf, pageURL, insp)
			}
		}
		return nil, ReportOutput{Report: buf.String()}, nil
	}
}

// IndexingIssuesHandler returns the handler for the check_indexing_issues
// MCP tool: the batch inspection results bucketed by problem category.
func IndexingIssuesHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input IndexingIssuesInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input IndexingIssuesInput) (*mcp.CallToolResult, ReportOutput, error) {
		urls, err := parseBatch(input.URLs)
		if err != nil {
			return nil, ReportOutput{}, err
		}

		var summary report.IssueSummary
		for _, pageURL := range urls {
			insp, err := api.InspectURL(ctx, input.SiteURL, pageURL)
			if err != nil {
				summary.AddError(pageURL, err)
				continue
			}
			summary.Add(pageURL, insp)
		}

		var buf bytes.Buffer
		report.FormatIndexingIssues(&buf, input.SiteURL, summary)
		return nil, ReportOutput{Report: buf.String()}, nil
	}
}

// parseBatch splits and bounds a one-URL-per-line inspection batch.
func parseBatch(raw string) ([]string, error) {
	urls := splitURLs(raw)
	if len(urls) == 0 {
		return nil, fmt.Errorf("no URLs provided for inspection")
	}
	if len(urls) > maxInspectionBatch {
		return nil, fmt.Errorf(
			"too many URLs provided (%d): limit to %d per batch to avoid API quota issues",
			len(urls), maxInspectionBatch)
	}
	return urls, nil
}
