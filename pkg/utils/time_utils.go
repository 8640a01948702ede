package utils

import (
	"time"
)

// DateLayout is the date format Cost Explorer expects for time periods
const DateLayout = "2006-01-02"

// CostWindow returns the [start, end) dates covering the previous UTC calendar day.
// Cost Explorer treats End as exclusive, so end is today's date.
func CostWindow(now time.Time) (start, end string) {
	utc := now.UTC()
	today := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	return yesterday.Format(DateLayout), today.Format(DateLayout)
}
