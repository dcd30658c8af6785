package mcptools

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/gscctl/internal/analytics"
	"github.com/chris-regnier/gscctl/internal/gsc"
	"github.com/chris-regnier/gscctl/internal/report"
)

// SearchAnalyticsHandler returns the handler for the get_search_analytics
// MCP tool: top rows for a trailing window, grouped by the given dimensions.
func SearchAnalyticsHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input SearchAnalyticsInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchAnalyticsInput) (*mcp.CallToolResult, ReportOutput, error) {
		days := input.Days
		if days <= 0 {
			days = defaultLookbackDays
		}
		r, err := analytics.ResolveDateRange("", "", days, time.Now())
		if err != nil {
			return nil, ReportOutput{}, err
		}

		query := analytics.BuildQuery(r, analytics.QueryParams{
			Dimensions: orDefault(input.Dimensions, defaultDimensions),
			RowLimit:   20, // top 20 results
		})

		rows, err := analytics.NewEngine(api).Execute(ctx, input.SiteURL, query)
		if err != nil {
			return nil, ReportOutput{}, err
		}
		if len(rows) == 0 {
			return nil, ReportOutput{Report: fmt.Sprintf(
				"No search analytics data found for %s in the last %d days.", input.SiteURL, days)}, nil
		}

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "Search analytics for %s (last %d days):\n\n", input.SiteURL, days)
		report.FormatAnalyticsTable(&buf, query.Dimensions, rows)
		return nil, ReportOutput{Report: buf.String()}, nil
	}
}

// AdvancedSearchAnalyticsHandler returns the handler for the
// get_advanced_search_analytics MCP tool, exposing the full query surface:
// explicit dates, search type, sorting, filtering and pagination.
func AdvancedSearchAnalyticsHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input AdvancedSearchAnalyticsInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AdvancedSearchAnalyticsInput) (*mcp.CallToolResult, ReportOutput, error) {
		r, err := analytics.ResolveDateRange(input.StartDate, input.EndDate, defaultLookbackDays, time.Now())
		if err != nil {
			return nil, ReportOutput{}, err
		}

		query := analytics.BuildQuery(r, analytics.QueryParams{
			Dimensions:       orDefault(input.Dimensions, defaultDimensions),
			SearchType:       orDefault(input.SearchType, "WEB"),
			RowLimit:         input.RowLimit,
			StartRow:         input.StartRow,
			SortBy:           orDefault(input.SortBy, "clicks"),
			SortDirection:    orDefault(input.SortDirection, "descending"),
			FilterDimension:  input.FilterDimension,
			FilterOperator:   input.FilterOperator,
			FilterExpression: input.FilterExpression,
		})

		rows, err := analytics.NewEngine(api).Execute(ctx, input.SiteURL, query)
		if err != nil {
			return nil, ReportOutput{}, err
		}
		if len(rows) == 0 {
			var buf bytes.Buffer
			fmt.Fprintf(&buf, "No search analytics data found for %s with the specified parameters.\n\n", input.SiteURL)
			fmt.Fprintf(&buf, "Parameters used:\n")
			fmt.Fprintf(&buf, "- Date range: %s to %s\n", query.StartDate, query.EndDate)
			fmt.Fprintf(&buf, "- Dimensions: %s\n", orDefault(input.Dimensions, defaultDimensions))
			fmt.Fprintf(&buf, "- Search type: %s\n", query.SearchType)
			if query.Filter != nil {
				fmt.Fprintf(&buf, "- Filter: %s %s %q\n", query.Filter.Dimension, query.Filter.Operator, query.Filter.Expression)
			} else {
				fmt.Fprintln(&buf, "- No filter applied")
			}
			return nil, ReportOutput{Report: buf.String()}, nil
		}

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "Search analytics for %s:\n", input.SiteURL)
		fmt.Fprintf(&buf, "Date range: %s to %s\n", query.StartDate, query.EndDate)
		fmt.Fprintf(&buf, "Search type: %s\n", query.SearchType)
		if query.Filter != nil {
			fmt.Fprintf(&buf, "Filter: %s %s %q\n", query.Filter.Dimension, query.Filter.Operator, query.Filter.Expression)
		}
		fmt.Fprintf(&buf, "Showing rows %d to %d\n\n", query.StartRow+1, query.StartRow+int64(len(rows)))
		report.FormatAnalyticsTable(&buf, query.Dimensions, rows)
		report.PaginationHint(&buf, query.StartRow, query.RowLimit, len(rows))
		return nil, ReportOutput{Report: buf.String()}, nil
	}
}

// PerformanceOverviewHandler returns the handler for the
// get_performance_overview MCP tool: period totals plus a daily trend.
func PerformanceOverviewHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input PerformanceOverviewInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input PerformanceOverviewInput) (*mcp.CallToolResult, ReportOutput, error) {
		days := input.Days
		if days <= 0 {
			days = defaultLookbackDays
		}
		r, err := analytics.ResolveDateRange("", "", days, time.Now())
		if err != nil {
			return nil, ReportOutput{}, err
		}

		engine := analytics.NewEngine(api)

		// No dimensions: the single row is the period total.
		totalRows, err := engine.Execute(ctx, input.SiteURL, &analytics.QueryRequest{
			StartDate: r.StartString(),
			EndDate:   r.EndString(),
			RowLimit:  1,
		})
		if err != nil {
			return nil, ReportOutput{}, err
		}

		var buf bytes.Buffer
		if len(totalRows) == 0 {
			report.FormatOverview(&buf, input.SiteURL, days, nil, nil)
			return nil, ReportOutput{Report: buf.String()}, nil
		}

		trend, err := engine.Execute(ctx, input.SiteURL, &analytics.QueryRequest{
			StartDate:  r.StartString(),
			EndDate:    r.EndString(),
			Dimensions: []string{"date"},
			RowLimit:   int64(days) + 1,
		})
		if err != nil {
			return nil, ReportOutput{}, err
		}
		// The trend comes back in click order; re-sort by date for display.
		sort.Slice(trend, func(i, j int) bool {
			return trend[i].Key.String() < trend[j].Key.String()
		})

		report.FormatOverview(&buf, input.SiteURL, days, &totalRows[0], trend)
		return nil, ReportOutput{Report: buf.String()}, nil
	}
}

// PageQueriesHandler returns the handler for the get_search_by_page_query
// MCP tool: the top queries driving traffic to one page.
func PageQueriesHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input PageQueriesInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input PageQueriesInput) (*mcp.CallToolResult, ReportOutput, error) {
		days := input.Days
		if days <= 0 {
			days = defaultLookbackDays
		}
		r, err := analytics.ResolveDateRange("", "", days, time.Now())
		if err != nil {
			return nil, ReportOutput{}, err
		}

		query := analytics.BuildQuery(r, analytics.QueryParams{
			Dimensions:       "query",
			RowLimit:         20,
			SortBy:           "clicks",
			SortDirection:    "descending",
			FilterDimension:  "page",
			FilterOperator:   "equals",
			FilterExpression: input.PageURL,
		})

		rows, err := analytics.NewEngine(api).Execute(ctx, input.SiteURL, query)
		if err != nil {
			return nil, ReportOutput{}, err
		}
		if len(rows) == 0 {
			return nil, ReportOutput{Report: fmt.Sprintf(
				"No search data found for page %s in the last %d days.", input.PageURL, days)}, nil
		}

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "Search queries for page %s (last %d days):\n\n", input.PageURL, days)
		report.FormatAnalyticsTable(&buf, query.Dimensions, rows)

		var totalClicks, totalImpressions int64
		for _, row := range rows {
			totalClicks += row.Clicks
			totalImpressions += row.Impressions
		}
		avgCTR := 0.0
		if totalImpressions > 0 {
			avgCTR = float64(totalClicks) / float64(totalImpressions) * 100
		}
		fmt.Fprintf(&buf, "--------\nTOTAL | %d | %d | %.2f%% | -\n", totalClicks, totalImpressions, avgCTR)

		return nil, ReportOutput{Report: buf.String()}, nil
	}
}
