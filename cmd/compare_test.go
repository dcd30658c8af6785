package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/chris-regnier/gscctl/internal/analytics"
)

func TestCompareNoData(t *testing.T) {
	setupTestEnv(t, &stubAPI{rows: map[string][]analytics.MetricRow{}})
	compareP1Start, compareP1End = "2025-06-01", "2025-06-30"
	compareP2Start, compareP2End = "2025-07-01", "2025-07-31"
	compareDimensions, compareLimit = "query", 10

	var buf bytes.Buffer
	compareCmd.SetOut(&buf)
	compareCmd.SetContext(context.Background())
	if err := compareCmd.RunE(compareCmd, []string{"https://example.com/"}); err != nil {
		t.Fatalf("compare: %v", err)
	}

	if !strings.Contains(buf.String(), "No data found for either period") {
		t.Errorf("expected no-data message, got:\n%s", buf.String())
	}
}

func TestCompareRendersDeltas(t *testing.T) {
	setupTestEnv(t, &stubAPI{
		rows: map[string][]analytics.MetricRow{
			"2025-06-01..2025-06-30": {
				{Key: analytics.DimensionKey{"widgets"}, Clicks: 40, Impressions: 400, CTR: 0.1, Position: 5},
			},
			"2025-07-01..2025-07-31": {
				{Key: analytics.DimensionKey{"widgets"}, Clicks: 60, Impressions: 500, CTR: 0.12, Position: 4},
			},
		},
	})
	compareP1Start, compareP1End = "2025-06-01", "2025-06-30"
	compareP2Start, compareP2End = "2025-07-01", "2025-07-31"
	compareDimensions, compareLimit = "query", 10

	var buf bytes.Buffer
	compareCmd.SetOut(&buf)
	compareCmd.SetContext(context.Background())
	if err := compareCmd.RunE(compareCmd, []string{"https://example.com/"}); err != nil {
		t.Fatalf("compare: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "widgets") {
		t.Errorf("expected dimension key in output:\n%s", got)
	}
	if !strings.Contains(got, "+20") {
		t.Errorf("expected click delta in output:\n%s", got)
	}
	if !strings.Contains(got, "+50.0%") {
		t.Errorf("expected click percentage in output:\n%s", got)
	}
}
