package analytics

import "strings"

// sortMetrics maps caller-facing metric names to the API's order-by names.
// A name outside this table silently drops the sort clause.
var sortMetrics = map[string]string{
	"clicks":      "CLICK_COUNT",
	"impressions": "IMPRESSION_COUNT",
	"ctr":         "CTR",
	"position":    "POSITION",
}

// QueryParams carries the raw, caller-supplied query parameters before any
// normalization.
type QueryParams struct {
	Dimensions string // comma-separated dimension names
	SearchType string
	RowLimit   int64
	StartRow   int64

	SortBy        string
	SortDirection string

	FilterDimension  string
	FilterOperator   string
	FilterExpression string
}

// BuildQuery assembles a QueryRequest from raw parameters.
//
// Leniencies match the upstream API's permissive behavior: the row limit is
// silently clamped to MaxRowLimit, the search type is uppercased but not
// validated, an unknown sort metric drops the order clause, and a filter
// missing its dimension or expression is omitted.
func BuildQuery(r DateRange, p QueryParams) *QueryRequest {
	limit := p.RowLimit
	if limit <= 0 {
		limit = DefaultRowLimit
	}
	if limit > MaxRowLimit {
		limit = MaxRowLimit
	}

	req := &QueryRequest{
		StartDate:  r.StartString(),
		EndDate:    r.EndString(),
		Dimensions: ParseDimensions(p.Dimensions),
		SearchType: strings.ToUpper(p.SearchType),
		RowLimit:   limit,
		StartRow:   p.StartRow,
	}

	if metric, ok := sortMetrics[p.SortBy]; ok {
		dir := strings.ToLower(p.SortDirection)
		if dir == "" {
			dir = "descending"
		}
		req.Order = &OrderClause{Metric: metric, Direction: dir}
	}

	if p.FilterDimension != "" && p.FilterExpression != "" {
		op := p.FilterOperator
		if op == "" {
			op = "contains"
		}
		req.Filter = &FilterClause{
			Dimension:  p.FilterDimension,
			Operator:   op,
			Expression: p.FilterExpression,
		}
	}

	return req
}

// ParseDimensions splits a comma-separated dimension list, trimming
// whitespace around each name. Order and duplicates are preserved; blank
// segments are dropped.
func ParseDimensions(s string) []string {
	var dims []string
	for _, part := range strings.Split(s, ",") {
		if d := strings.TrimSpace(part); d != "" {
			dims = append(dims, d)
		}
	}
	return dims
}
