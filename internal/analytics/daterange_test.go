package analytics

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

func TestResolveDateRange_Defaults(t *testing.T) {
	r, err := ResolveDateRange("", "", 28, testNow)
	if err != nil {
		t.Fatalf("ResolveDateRange: %v", err)
	}
	if got := r.EndString(); got != "2026-08-30" {
		t.Errorf("end = %s, want today 2026-08-30", got)
	}
	if got := r.StartString(); got != "2026-08-02" {
		t.Errorf("start = %s, want 28 days back 2026-08-02", got)
	}
}

func TestResolveDateRange_ExplicitDates(t *testing.T) {
	r, err := ResolveDateRange("2026-01-01", "2026-01-31", 28, testNow)
	if err != nil {
		t.Fatalf("ResolveDateRange: %v", err)
	}
	if r.StartString() != "2026-01-01" || r.EndString() != "2026-01-31" {
		t.Errorf("got %s..%s, want 2026-01-01..2026-01-31", r.StartString(), r.EndString())
	}
}

func TestResolveDateRange_SingleDay(t *testing.T) {
	r, err := ResolveDateRange("2026-03-15", "2026-03-15", 28, testNow)
	if err != nil {
		t.Fatalf("single-day range should be valid: %v", err)
	}
	if !r.Start.Equal(r.End) {
		t.Errorf("start %v != end %v", r.Start, r.End)
	}
}

func TestResolveDateRange_Inverted(t *testing.T) {
	_, err := ResolveDateRange("2026-03-16", "2026-03-15", 28, testNow)
	var derr *InvalidDateError
	if !errors.As(err, &derr) {
		t.Fatalf("got %v, want *InvalidDateError", err)
	}
}

func TestResolveDateRange_Malformed(t *testing.T) {
	for _, input := range []string{"31/01/2026", "2026-13-99", "yesterday"} {
		_, err := ResolveDateRange(input, "", 28, testNow)
		var derr *InvalidDateError
		if !errors.As(err, &derr) {
			t.Errorf("start=%q: got %v, want *InvalidDateError", input, err)
		}
		_, err = ResolveDateRange("", input, 28, testNow)
		if !errors.As(err, &derr) {
			t.Errorf("end=%q: got %v, want *InvalidDateError", input, err)
		}
	}
}

func TestResolveDateRange_EndBeforeDefaultStart(t *testing.T) {
	// An explicit end far in the past plus default lookback still gives a
	// valid trailing window ending on that date.
	r, err := ResolveDateRange("", "2020-06-10", 7, testNow)
	if err != nil {
		t.Fatalf("ResolveDateRange: %v", err)
	}
	if r.StartString() != "2020-06-03" {
		t.Errorf("start = %s, want 2020-06-03", r.StartString())
	}
}
