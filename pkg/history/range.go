package history

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a date string is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ErrHalfOpenRange is returned when only one of the two range bounds is set.
var ErrHalfOpenRange = errors.New("start and end date must both be set")

// DateRange bounds a commit walk by author date. The zero value is unbounded
// and contains every instant.
type DateRange struct {
	start   time.Time
	end     time.Time // Exclusive upper bound.
	bounded bool
}

// ParseDateRange parses a pair of YYYY-MM-DD bounds. Both bounds empty means
// unbounded; setting exactly one is ErrHalfOpenRange. The end date is
// inclusive: a range of one day covers that whole day. Dates are read as UTC
// calendar days.
func ParseDateRange(start, end string) (DateRange, error) {
	if start == "" && end == "" {
		return DateRange{}, nil
	}

	if start == "" || end == "" {
		return DateRange{}, ErrHalfOpenRange
	}

	startTime, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("start date %q: %w", start, ErrInvalidDate)
	}

	endTime, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("end date %q: %w", end, ErrInvalidDate)
	}

	if endTime.Before(startTime) {
		return DateRange{}, fmt.Errorf("end date %s before start date %s: %w", end, start, ErrInvalidDate)
	}

	return DateRange{
		start:   startTime,
		end:     endTime.AddDate(0, 0, 1),
		bounded: true,
	}, nil
}

// IsBounded reports whether the range actually constrains dates.
func (r DateRange) IsBounded() bool {
	return r.bounded
}

// Contains reports whether the instant falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if !r.bounded {
		return true
	}

	utc := t.UTC()

	return !utc.Before(r.start) && utc.Before(r.end)
}
