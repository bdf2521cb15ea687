package filter

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days in UTC.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange parses "YYYY-MM-DD..YYYY-MM-DD". Month and day must be
// zero-padded. An inverted range is accepted and simply contains no day.
func ParseDateRange(s string) (DateRange, bool) {
	parts := strings.Split(s, "..")
	if len(parts) != 2 {
		return DateRange{}, false
	}
	start, err := time.Parse(dateLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return DateRange{}, false
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return DateRange{}, false
	}
	return DateRange{Start: start, End: end}, true
}

// Contains reports whether the UTC calendar day of t lies within the range.
func (r DateRange) Contains(t time.Time) bool {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(r.Start) && !day.After(r.End)
}

func (r DateRange) String() string {
	return r.Start.Format(dateLayout) + ".." + r.End.Format(dateLayout)
}
