package mcptools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/gscctl/internal/analytics"
	"github.com/chris-regnier/gscctl/internal/gsc"
	"github.com/chris-regnier/gscctl/internal/report"
)

const defaultCompareLimit = 10

// ComparePeriodsHandler returns the handler for the compare_search_periods
// MCP tool: it queries two date windows with the same dimensions and ranks
// the joined rows by absolute click change.
func ComparePeriodsHandler(api gsc.API) func(ctx context.Context, req *mcp.CallToolRequest, input ComparePeriodsInput) (*mcp.CallToolResult, ReportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ComparePeriodsInput) (*mcp.CallToolResult, ReportOutput, error) {
		if input.Period1Start == "" || input.Period1End == "" || input.Period2Start == "" || input.Period2End == "" {
			return nil, ReportOutput{}, fmt.Errorf(
				"period1_start, period1_end, period2_start and period2_end are all required (YYYY-MM-DD)")
		}

		// Each period is validated on its own; the two may overlap or be
		// given in either chronological order.
		now := time.Now()
		period1, err := analytics.ResolveDateRange(input.Period1Start, input.Period1End, 0, now)
		if err != nil {
			return nil, ReportOutput{}, err
		}
		period2, err := analytics.ResolveDateRange(input.Period2Start, input.Period2End, 0, now)
		if err != nil {
			return nil, ReportOutput{}, err
		}

		dims := analytics.ParseDimensions(orDefault(input.Dimensions, defaultDimensions))
		limit := input.Limit
		if limit <= 0 {
			limit = defaultCompareLimit
		}

		comparator := analytics.NewComparator(analytics.NewEngine(api))
		rows, err := comparator.Compare(ctx, input.SiteURL, dims, period1, period2, limit)
		if errors.Is(err, analytics.ErrNoData) {
			return nil, ReportOutput{Report: fmt.Sprintf(
				"No data found for either period for %s.", input.SiteURL)}, nil
		}
		if err != nil {
			return nil, ReportOutput{}, err
		}

		var buf bytes.Buffer
		report.FormatComparison(&buf, input.SiteURL, dims, period1, period2, rows)
		return nil, ReportOutput{Report: buf.String()}, nil
	}
}
