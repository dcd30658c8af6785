package analytics

import (
	"reflect"
	"testing"
	"time"
)

func testRange(t *testing.T) DateRange {
	t.Helper()
	return DateRange{
		Start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildQuery_RowLimitClamped(t *testing.T) {
	for _, limit := range []int64{25001, 100000, 1 << 40} {
		req := BuildQuery(testRange(t), QueryParams{Dimensions: "query", RowLimit: limit})
		if req.RowLimit != MaxRowLimit {
			t.Errorf("RowLimit(%d) = %d, want %d", limit, req.RowLimit, MaxRowLimit)
		}
	}
}

func TestBuildQuery_RowLimitDefaulted(t *testing.T) {
	req := BuildQuery(testRange(t), QueryParams{Dimensions: "query"})
	if req.RowLimit != DefaultRowLimit {
		t.Errorf("RowLimit = %d, want default %d", req.RowLimit, DefaultRowLimit)
	}
}

func TestBuildQuery_RowLimitInRangeKept(t *testing.T) {
	req := BuildQuery(testRange(t), QueryParams{Dimensions: "query", RowLimit: 25000, StartRow: 50})
	if req.RowLimit != 25000 {
		t.Errorf("RowLimit = %d, want 25000", req.RowLimit)
	}
	if req.StartRow != 50 {
		t.Errorf("StartRow = %d, want 50 passed through", req.StartRow)
	}
}

func TestBuildQuery_SortMetricMapping(t *testing.T) {
	want := map[string]string{
		"clicks":      "CLICK_COUNT",
		"impressions": "IMPRESSION_COUNT",
		"ctr":         "CTR",
		"position":    "POSITION",
	}
	for name, metric := range want {
		req := BuildQuery(testRange(t), QueryParams{Dimensions: "query", SortBy: name, SortDirection: "ASCENDING"})
		if req.Order == nil {
			t.Fatalf("sort by %q: no order clause", name)
		}
		if req.Order.Metric != metric {
			t.Errorf("sort by %q: metric = %q, want %q", name, req.Order.Metric, metric)
		}
		if req.Order.Direction != "ascending" {
			t.Errorf("sort by %q: direction = %q, want lowercased", name, req.Order.Direction)
		}
	}
}

func TestBuildQuery_UnknownSortMetricOmitted(t *testing.T) {
	for _, name := range []string{"views", "CLICKS", "rank", ""} {
		req := BuildQuery(testRange(t), QueryParams{Dimensions: "query", SortBy: name})
		if req.Order != nil {
			t.Errorf("sort by %q: expected order clause omitted, got %+v", name, req.Order)
		}
	}
}

func TestBuildQuery_SearchTypeUppercasedNotValidated(t *testing.T) {
	req := BuildQuery(testRange(t), QueryParams{Dimensions: "query", SearchType: "discover"})
	if req.SearchType != "DISCOVER" {
		t.Errorf("SearchType = %q, want DISCOVER", req.SearchType)
	}
	// Unknown values pass through, matching permissive upstream behavior.
	req = BuildQuery(testRange(t), QueryParams{Dimensions: "query", SearchType: "shopping"})
	if req.SearchType != "SHOPPING" {
		t.Errorf("SearchType = %q, want SHOPPING passed through", req.SearchType)
	}
}

func TestBuildQuery_FilterRequiresDimensionAndExpression(t *testing.T) {
	req := BuildQuery(testRange(t), QueryParams{
		Dimensions:       "query",
		FilterDimension:  "page",
		FilterOperator:   "equals",
		FilterExpression: "https://example.com/pricing",
	})
	want := &FilterClause{Dimension: "page", Operator: "equals", Expression: "https://example.com/pricing"}
	if !reflect.DeepEqual(req.Filter, want) {
		t.Errorf("Filter = %+v, want %+v", req.Filter, want)
	}

	req = BuildQuery(testRange(t), QueryParams{Dimensions: "query", FilterDimension: "page"})
	if req.Filter != nil {
		t.Errorf("filter without expression should be omitted, got %+v", req.Filter)
	}
	req = BuildQuery(testRange(t), QueryParams{Dimensions: "query", FilterExpression: "foo"})
	if req.Filter != nil {
		t.Errorf("filter without dimension should be omitted, got %+v", req.Filter)
	}
}

func TestBuildQuery_DatesFromRange(t *testing.T) {
	req := BuildQuery(testRange(t), QueryParams{Dimensions: "query"})
	if req.StartDate != "2026-08-01" || req.EndDate != "2026-08-28" {
		t.Errorf("dates = %s..%s, want 2026-08-01..2026-08-28", req.StartDate, req.EndDate)
	}
}

func TestParseDimensions(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"query", []string{"query"}},
		{"query, page", []string{"query", "page"}},
		{" query ,page,device ", []string{"query", "page", "device"}},
		{"query,query", []string{"query", "query"}}, // duplicates preserved
		{"query,,page", []string{"query", "page"}},
	}
	for _, c := range cases {
		if got := ParseDimensions(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseDimensions(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
