package analytics

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// comparisonFetchLimit is the per-period row cap used when joining two
// periods. It is deliberately larger than any display limit so keys present
// in only one period are still captured before the join.
const comparisonFetchLimit = 1000

// Comparator joins and diffs two independently queried periods.
type Comparator struct {
	engine *Engine
}

func NewComparator(engine *Engine) *Comparator {
	return &Comparator{engine: engine}
}

// Compare queries both periods with the same dimensions, outer-joins the
// two row sets on dimension key, and ranks the joined rows by absolute
// click change, descending. Tie order among equal magnitudes is
// unspecified. The result is truncated to limit rows when limit > 0.
//
// The periods may overlap or be given in either chronological order: the
// comparison answers "how did the metrics change between these windows"
// with no assumption about which window comes first. Both queries must
// succeed; there is no single-period fallback. When neither period has any
// rows, Compare returns ErrNoData.
func (c *Comparator) Compare(ctx context.Context, siteURL string, dimensions []string, period1, period2 DateRange, limit int) ([]ComparisonRow, error) {
	periods := [2]DateRange{period1, period2}

	// The two reads are independent, so issue them concurrently. Results
	// are only combined after both complete; either failure fails the
	// whole comparison.
	var results [2][]MetricRow
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range periods {
		g.Go(func() error {
			rows, err := c.engine.Execute(gctx, siteURL, &QueryRequest{
				StartDate:  p.StartString(),
				EndDate:    p.EndString(),
				Dimensions: dimensions,
				RowLimit:   comparisonFetchLimit,
			})
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(results[0]) == 0 && len(results[1]) == 0 {
		return nil, ErrNoData
	}

	p1 := indexByKey(results[0])
	p2 := indexByKey(results[1])

	seen := make(map[string]struct{}, len(p1)+len(p2))
	rows := make([]ComparisonRow, 0, len(p1)+len(p2))
	join := func(key DimensionKey) {
		mk := key.mapKey()
		if _, ok := seen[mk]; ok {
			return
		}
		seen[mk] = struct{}{}
		rows = append(rows, diffRow(key, p1[mk], p2[mk]))
	}
	for _, r := range results[0] {
		join(r.Key)
	}
	for _, r := range results[1] {
		join(r.Key)
	}

	sort.Slice(rows, func(i, j int) bool {
		return abs64(rows[i].ClickDiff) > abs64(rows[j].ClickDiff)
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func indexByKey(rows []MetricRow) map[string]MetricRow {
	m := make(map[string]MetricRow, len(rows))
	for _, r := range rows {
		m[r.Key.mapKey()] = r
	}
	return m
}

// diffRow computes the per-key deltas between two period rows. A side
// missing the key passes the zero row.
func diffRow(key DimensionKey, p1, p2 MetricRow) ComparisonRow {
	p1.Key = key
	p2.Key = key
	row := ComparisonRow{
		Key:     key,
		Period1: p1,
		Period2: p2,

		ClickDiff:      p2.Clicks - p1.Clicks,
		ImpressionDiff: p2.Impressions - p1.Impressions,
		CTRDiff:        p2.CTR - p1.CTR,
		// Lower position is better, so improvement is p1 minus p2.
		PositionDiff: p1.Position - p2.Position,
	}
	row.ClickPct = pctChange(row.ClickDiff, p1.Clicks)
	row.ImpressionPct = pctChange(row.ImpressionDiff, p1.Impressions)
	return row
}

// pctChange returns diff as a percentage of base, or the undefined sentinel
// when the baseline is zero.
func pctChange(diff, base int64) PctChange {
	if base <= 0 {
		return PctChange{}
	}
	return PctChange{Valid: true, Value: float64(diff) / float64(base) * 100}
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
