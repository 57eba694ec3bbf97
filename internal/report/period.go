package report

import (
	"errors"
	"time"
)

// ErrInvalidPeriod signals an unknown period token or a custom period with
// missing bounds; handlers surface it as a 400.
var ErrInvalidPeriod = errors.New("invalid period / missing custom dates")

// Range is an inclusive [Start, End] window in local time.
type Range struct {
	Start time.Time
	End   time.Time
}

const dateLayout = "2006-01-02"

// ResolvePeriod maps a period token (or explicit custom bounds) to a concrete
// inclusive range. Start is start-of-day and End is end-of-day, except ytd
// whose end is the current instant. The clock is passed in so callers and
// tests control "now".
func ResolvePeriod(period Period, from, to string, now time.Time) (Range, error) {
	year, month, _ := now.Date()
	loc := now.Location()

	switch period {
	case PeriodThisMonth:
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		return Range{Start: start, End: endOfDay(lastDayOfMonth(year, month, loc))}, nil

	case PeriodLastMonth:
		// Day-0 normalization rolls the year back at January.
		prev := time.Date(year, month-1, 1, 0, 0, 0, 0, loc)
		return Range{
			Start: prev,
			End:   endOfDay(lastDayOfMonth(prev.Year(), prev.Month(), loc)),
		}, nil

	case PeriodThisQuarter:
		qStart := quarterStartMonth(month)
		start := time.Date(year, qStart, 1, 0, 0, 0, 0, loc)
		return Range{Start: start, End: endOfDay(lastDayOfMonth(year, qStart+2, loc))}, nil

	case PeriodLastQuarter:
		qStart := quarterStartMonth(month) - 3
		start := time.Date(year, qStart, 1, 0, 0, 0, 0, loc)
		return Range{
			Start: start,
			End:   endOfDay(lastDayOfMonth(start.Year(), start.Month()+2, loc)),
		}, nil

	case PeriodYTD:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return Range{Start: start, End: now}, nil

	case PeriodCustom:
		if from == "" || to == "" {
			return Range{}, ErrInvalidPeriod
		}
		start, err := time.ParseInLocation(dateLayout, from, loc)
		if err != nil {
			return Range{}, ErrInvalidPeriod
		}
		end, err := time.ParseInLocation(dateLayout, to, loc)
		if err != nil {
			return Range{}, ErrInvalidPeriod
		}
		return Range{Start: start, End: endOfDay(end)}, nil

	default:
		return Range{}, ErrInvalidPeriod
	}
}

// quarterStartMonth returns the first month of the quarter containing m.
func quarterStartMonth(m time.Month) time.Month {
	return time.Month((int(m)-1)/3*3 + 1)
}

// lastDayOfMonth relies on day-0 normalization of the following month.
func lastDayOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
}

// endOfDay is 23:59:59.999 local time, inclusive for downstream queries.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
