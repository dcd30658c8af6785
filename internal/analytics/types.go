// Package analytics builds search analytics queries and joins result sets
// across time periods. It talks to Search Console only through the
// QueryService capability, so everything here is pure data plumbing.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// MaxRowLimit is the API ceiling on rows per query. Larger requests
	// are clamped, never rejected.
	MaxRowLimit = 25000

	// DefaultRowLimit is used when the caller does not ask for a limit.
	DefaultRowLimit = 1000

	dateLayout = "2006-01-02"
)

// DimensionKey is the ordered tuple of dimension values identifying one
// analytics row. Its arity matches the requested dimensions for the query
// that produced it; an empty component is a valid value, not an absence.
type DimensionKey []string

func (k DimensionKey) String() string { return strings.Join(k, " | ") }

// mapKey returns a comparable form of the key for joining result sets.
// The unit separator cannot occur in dimension values, so tuples collide
// only when they are equal element-wise.
func (k DimensionKey) mapKey() string { return strings.Join(k, "\x1f") }

// MetricRow is one dimension-keyed row of search analytics metrics.
// Immutable once returned by the engine.
type MetricRow struct {
	Key         DimensionKey
	Clicks      int64
	Impressions int64
	CTR         float64 // fraction in [0,1]
	Position    float64 // average rank, lower is better
}

// DateRange is a concrete inclusive calendar-date range with Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) StartString() string { return r.Start.Format(dateLayout) }
func (r DateRange) EndString() string   { return r.End.Format(dateLayout) }

// OrderClause asks the service to sort rows by one metric.
type OrderClause struct {
	Metric    string // CLICK_COUNT, IMPRESSION_COUNT, CTR or POSITION
	Direction string // "ascending" or "descending"
}

// FilterClause is a single dimension filter condition. Exactly one filter
// group with one condition is supported, matching the tool surface.
type FilterClause struct {
	Dimension  string
	Operator   string
	Expression string
}

// QueryRequest describes one search analytics query. Built by BuildQuery,
// constructed fresh per call and treated as immutable afterwards.
type QueryRequest struct {
	StartDate  string
	EndDate    string
	Dimensions []string
	SearchType string
	RowLimit   int64
	StartRow   int64
	Order      *OrderClause
	Filter     *FilterClause
}

// QueryService is the remote search analytics capability the engine runs
// against. Implemented by the gsc client; tests substitute fakes.
type QueryService interface {
	Query(ctx context.Context, siteURL string, req *QueryRequest) ([]MetricRow, error)
}

// PctChange is a percentage delta relative to a period-1 baseline. Valid is
// false when the baseline was zero and the change is undefined; callers
// render that distinctly (see String) and must not compare it numerically
// with defined values.
type PctChange struct {
	Valid bool
	Value float64
}

func (p PctChange) String() string {
	if !p.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%+.1f%%", p.Value)
}

// ComparisonRow joins one key's metrics across two compared periods. A
// period that lacked the key contributes a zero row, so appearances and
// disappearances show up as extreme changes rather than gaps.
type ComparisonRow struct {
	Key     DimensionKey
	Period1 MetricRow
	Period2 MetricRow

	ClickDiff      int64
	ClickPct       PctChange
	ImpressionDiff int64
	ImpressionPct  PctChange
	CTRDiff        float64

	// PositionDiff is period 1 minus period 2: positive means the ranking
	// improved, moving to a numerically lower position.
	PositionDiff float64
}

// ErrNoData reports that neither compared period returned any rows. It is a
// terminal condition, not a failure: callers report "no data" instead of an
// empty comparison.
var ErrNoData = errors.New("no data for either period")

// InvalidDateError reports a malformed date input or an inverted range.
type InvalidDateError struct {
	Input  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Input, e.Reason)
}

// QueryServiceError wraps a failure surfaced by the QueryService. The
// service's own detail is carried verbatim; nothing is retried or
// suppressed on the way up.
type QueryServiceError struct {
	Site string
	Err  error
}

func (e *QueryServiceError) Error() string {
	return fmt.Sprintf("search analytics query for %s: %v", e.Site, e.Err)
}

func (e *QueryServiceError) Unwrap() error { return e.Err }
