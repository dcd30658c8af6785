package gsc

import (
	"testing"
	"time"

	"github.com/chris-regnier/gscctl/internal/analytics"
)

func TestBuildAPIRequest_FieldMapping(t *testing.T) {
	req := &analytics.QueryRequest{
		StartDate:  "2026-08-01",
		EndDate:    "2026-08-28",
		Dimensions: []string{"query", "page"},
		SearchType: "DISCOVER",
		RowLimit:   500,
		StartRow:   100,
		Filter: &analytics.FilterClause{
			Dimension:  "country",
			Operator:   "equals",
			Expression: "usa",
		},
	}

	body := buildAPIRequest(req)
	if body.StartDate != "2026-08-01" || body.EndDate != "2026-08-28" {
		t.Errorf("dates = %s..%s", body.StartDate, body.EndDate)
	}
	if body.Type != "discover" {
		t.Errorf("Type = %q, want lowercase wire enum", body.Type)
	}
	if body.RowLimit != 500 || body.StartRow != 100 {
		t.Errorf("pagination = limit %d start %d", body.RowLimit, body.StartRow)
	}
	if len(body.DimensionFilterGroups) != 1 || len(body.DimensionFilterGroups[0].Filters) != 1 {
		t.Fatalf("expected exactly one filter group with one condition, got %+v", body.DimensionFilterGroups)
	}
	f := body.DimensionFilterGroups[0].Filters[0]
	if f.Dimension != "country" || f.Operator != "equals" || f.Expression != "usa" {
		t.Errorf("filter = %+v", f)
	}
}

func TestBuildAPIRequest_OmitsOptionalClauses(t *testing.T) {
	body := buildAPIRequest(&analytics.QueryRequest{
		StartDate:  "2026-08-01",
		EndDate:    "2026-08-28",
		Dimensions: []string{"query"},
		RowLimit:   20,
	})
	if body.Type != "" {
		t.Errorf("Type = %q, want empty", body.Type)
	}
	if body.DimensionFilterGroups != nil {
		t.Errorf("DimensionFilterGroups = %+v, want nil", body.DimensionFilterGroups)
	}
}

func TestSortRows(t *testing.T) {
	rows := func() []analytics.MetricRow {
		return []analytics.MetricRow{
			{Key: analytics.DimensionKey{"a"}, Clicks: 5, Position: 2.0},
			{Key: analytics.DimensionKey{"b"}, Clicks: 20, Position: 9.5},
			{Key: analytics.DimensionKey{"c"}, Clicks: 10, Position: 4.1},
		}
	}

	byClicks := rows()
	sortRows(byClicks, &analytics.OrderClause{Metric: "CLICK_COUNT", Direction: "descending"})
	if byClicks[0].Clicks != 20 || byClicks[2].Clicks != 5 {
		t.Errorf("descending clicks order wrong: %+v", byClicks)
	}

	byPosition := rows()
	sortRows(byPosition, &analytics.OrderClause{Metric: "POSITION", Direction: "ascending"})
	if byPosition[0].Position != 2.0 || byPosition[2].Position != 9.5 {
		t.Errorf("ascending position order wrong: %+v", byPosition)
	}
}

func TestParseTimestamp(t *testing.T) {
	got := parseTimestamp("2026-08-15T10:30:00Z")
	want := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseTimestamp = %v, want %v", got, want)
	}
	if !parseTimestamp("").IsZero() {
		t.Error("empty timestamp should be zero time")
	}
	if !parseTimestamp("Never").IsZero() {
		t.Error("malformed timestamp should be zero time")
	}
}
