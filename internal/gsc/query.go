package gsc

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
	searchconsole "google.golang.org/api/searchconsole/v1"

	"github.com/chris-regnier/gscctl/internal/analytics"
)

// Query implements analytics.QueryService against the live API.
func (c *Client) Query(ctx context.Context, siteURL string, req *analytics.QueryRequest) ([]analytics.MetricRow, error) {
	c.log.Debug("search analytics query",
		zap.String("site", siteURL),
		zap.String("start", req.StartDate),
		zap.String("end", req.EndDate),
		zap.Strings("dimensions", req.Dimensions),
		zap.Int64("row_limit", req.RowLimit))

	resp, err := c.svc.Searchanalytics.Query(siteURL, buildAPIRequest(req)).Context(ctx).Do()
	if err != nil {
		return nil, apiError("search analytics query", err)
	}

	rows := make([]analytics.MetricRow, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		rows = append(rows, analytics.MetricRow{
			Key:         analytics.DimensionKey(r.Keys),
			Clicks:      int64(math.Round(r.Clicks)),
			Impressions: int64(math.Round(r.Impressions)),
			CTR:         r.Ctr,
			Position:    r.Position,
		})
	}

	// The v1 API has no order-by parameter; rows arrive sorted by clicks
	// descending. An explicit order clause is applied here so callers see
	// the ordering they asked for.
	if req.Order != nil {
		sortRows(rows, req.Order)
	}
	return rows, nil
}

func buildAPIRequest(req *analytics.QueryRequest) *searchconsole.SearchAnalyticsQueryRequest {
	body := &searchconsole.SearchAnalyticsQueryRequest{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Dimensions: req.Dimensions,
		RowLimit:   req.RowLimit,
		StartRow:   req.StartRow,
	}
	if req.SearchType != "" {
		// The wire enum is lowercase ("web", "discover", ...).
		body.Type = strings.ToLower(req.SearchType)
	}
	if req.Filter != nil {
		body.DimensionFilterGroups = []*searchconsole.ApiDimensionFilterGroup{{
			Filters: []*searchconsole.ApiDimensionFilter{{
				Dimension:  req.Filter.Dimension,
				Operator:   req.Filter.Operator,
				Expression: req.Filter.Expression,
			}},
		}}
	}
	return body
}

func sortRows(rows []analytics.MetricRow, order *analytics.OrderClause) {
	metric := func(r analytics.MetricRow) float64 {
		switch order.Metric {
		case "CLICK_COUNT":
			return float64(r.Clicks)
		case "IMPRESSION_COUNT":
			return float64(r.Impressions)
		case "CTR":
			return r.CTR
		case "POSITION":
			return r.Position
		}
		return 0
	}
	ascending := strings.EqualFold(order.Direction, "ascending")
	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return metric(rows[i]) < metric(rows[j])
		}
		return metric(rows[i]) > metric(rows[j])
	})
}
