package utils

import (
	"fmt"
	"time"
)

////////////////////////////////////////////////////////////////////////////////

// TimeRange represents an inclusive time window for post retrieval
type TimeRange struct {
	Begin time.Time
	End   time.Time
}

// BeginUnix returns the window start as Unix seconds
func (tr TimeRange) BeginUnix() int64 {
	return tr.Begin.Unix()
}

// EndUnix returns the window end as Unix seconds
func (tr TimeRange) EndUnix() int64 {
	return tr.End.Unix()
}

////////////////////////////////////////////////////////////////////////////////

// YearWindow returns the retrieval window for the given year.
// For past years the window covers the full year. For the current year it
// ends at 23:59:59 of yesterday, so a still-mutating "today" never shows up
// in the aggregates.
func YearWindow(year int, now time.Time) TimeRange {
	begin := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())

	if year == now.Year() {
		yesterday := now.AddDate(0, 0, -1)
		end := time.Date(
			yesterday.Year(), yesterday.Month(), yesterday.Day(),
			23, 59, 59, 0, now.Location(),
		)
		return TimeRange{Begin: begin, End: end}
	}

	end := time.Date(year, time.December, 31, 23, 59, 59, 0, now.Location())
	return TimeRange{Begin: begin, End: end}
}

// DayWindow returns the [00:00:00, 23:59:59] window of the given day
func DayWindow(day time.Time) TimeRange {
	begin := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
	return TimeRange{Begin: begin, End: end}
}

////////////////////////////////////////////////////////////////////////////////

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(value string) (time.Time, error) {
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return day, nil
}
