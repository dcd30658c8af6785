package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chris-regnier/gscctl/internal/analytics"
)

func TestPageQueriesRendersTableWithTotals(t *testing.T) {
	stub := &stubAPI{
		queryRows: []analytics.MetricRow{
			{Key: analytics.DimensionKey{"go tutorial"}, Clicks: 60, Impressions: 600, CTR: 0.1, Position: 3.5},
			{Key: analytics.DimensionKey{"golang guide"}, Clicks: 40, Impressions: 400, CTR: 0.1, Position: 6.0},
		},
	}
	setupTestEnv(t, stub)
	pageQueriesDays = 0

	var buf bytes.Buffer
	pageQueriesCmd.SetOut(&buf)
	args := []string{"https://example.com/", "https://example.com/blog/post"}
	if err := pageQueriesCmd.RunE(pageQueriesCmd, args); err != nil {
		t.Fatalf("pagequeries: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "go tutorial") || !strings.Contains(got, "golang guide") {
		t.Errorf("expected query rows in output:\n%s", got)
	}
	if !strings.Contains(got, "TOTAL | 100 | 1000 | 10.00%") {
		t.Errorf("expected totals row in output:\n%s", got)
	}

	q := stub.lastQuery
	if q == nil || q.Filter == nil {
		t.Fatal("expected a page filter on the query")
	}
	if q.Filter.Dimension != "page" || q.Filter.Operator != "equals" || q.Filter.Expression != args[1] {
		t.Errorf("unexpected filter: %+v", q.Filter)
	}
}

func TestPageQueriesNoData(t *testing.T) {
	setupTestEnv(t, &stubAPI{rows: map[string][]analytics.MetricRow{}})
	pageQueriesDays = 7

	var buf bytes.Buffer
	pageQueriesCmd.SetOut(&buf)
	err := pageQueriesCmd.RunE(pageQueriesCmd, []string{"https://example.com/", "https://example.com/missing"})
	if err != nil {
		t.Fatalf("pagequeries: %v", err)
	}

	if !strings.Contains(buf.String(), "No search data found for page https://example.com/missing in the last 7 days.") {
		t.Errorf("expected no-data message, got:\n%s", buf.String())
	}
}
