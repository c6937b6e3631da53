package subscriptions

import "github.com/tiffinmate/tiffinmate/internal/dates"

// scheduleDates expands [start, end] into one entry per calendar day,
// both endpoints included. AddDays walks calendar days, so month and DST
// boundaries cannot shift the sequence.
func scheduleDates(start, end dates.Date) []dates.Date {
	if end.Before(start) {
		return nil
	}

	days := start.DaysUntil(end) + 1
	result := make([]dates.Date, 0, days)
	for d := start; !d.After(end); d = d.AddDays(1) {
		result = append(result, d)
	}
	return result
}
