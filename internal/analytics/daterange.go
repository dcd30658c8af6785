package analytics

import "time"

// ResolveDateRange normalizes optional ISO date strings into a concrete
// range. An empty end defaults to now's calendar date; an empty start
// defaults to end minus lookbackDays. The caller supplies now so the
// trailing-window default stays testable.
func ResolveDateRange(start, end string, lookbackDays int, now time.Time) (DateRange, error) {
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if end != "" {
		t, err := time.Parse(dateLayout, end)
		if err != nil {
			return DateRange{}, &InvalidDateError{Input: end, Reason: "use YYYY-MM-DD"}
		}
		endDate = t
	}

	startDate := endDate.AddDate(0, 0, -lookbackDays)
	if start != "" {
		t, err := time.Parse(dateLayout, start)
		if err != nil {
			return DateRange{}, &InvalidDateError{Input: start, Reason: "use YYYY-MM-DD"}
		}
		startDate = t
	}

	if startDate.After(endDate) {
		return DateRange{}, &InvalidDateError{
			Input:  startDate.Format(dateLayout),
			Reason: "start date is after end date " + endDate.Format(dateLayout),
		}
	}

	return DateRange{Start: startDate, End: endDate}, nil
}
