package report

import (
	"errors"
	"testing"
	"time"
)

func mustResolve(t *testing.T, period Period, from, to string, now time.Time) Range {
	t.Helper()
	r, err := ResolvePeriod(period, from, to, now)
	if err != nil {
		t.Fatalf("ResolvePeriod(%s) failed: %v", period, err)
	}
	return r
}

func TestResolvePeriodThisMonth(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)
	r := mustResolve(t, PeriodThisMonth, "", "", now)

	want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	if !r.Start.Equal(want) {
		t.Errorf("start = %v, want %v", r.Start, want)
	}
	wantEnd := time.Date(2025, time.March, 31, 23, 59, 59, 999_000_000, time.Local)
	if !r.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", r.End, wantEnd)
	}
}

func TestResolvePeriodLastMonthYearRollback(t *testing.T) {
	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.Local)
	r := mustResolve(t, PeriodLastMonth, "", "", now)

	if r.Start.Year() != 2024 || r.Start.Month() != time.December || r.Start.Day() != 1 {
		t.Errorf("start = %v, want 2024-12-01", r.Start)
	}
	if r.End.Year() != 2024 || r.End.Month() != time.December || r.End.Day() != 31 {
		t.Errorf("end = %v, want 2024-12-31", r.End)
	}
}

func TestResolvePeriodQuarters(t *testing.T) {
	// May sits in Q2 (Apr-Jun); last quarter is Q1 (Jan-Mar).
	now := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.Local)

	thisQ := mustResolve(t, PeriodThisQuarter, "", "", now)
	if thisQ.Start.Month() != time.April || thisQ.Start.Day() != 1 {
		t.Errorf("this_quarter start = %v, want Apr 1", thisQ.Start)
	}
	if thisQ.End.Month() != time.June || thisQ.End.Day() != 30 {
		t.Errorf("this_quarter end = %v, want Jun 30", thisQ.End)
	}

	lastQ := mustResolve(t, PeriodLastQuarter, "", "", now)
	if lastQ.Start.Month() != time.January || lastQ.Start.Day() != 1 {
		t.Errorf("last_quarter start = %v, want Jan 1", lastQ.Start)
	}
	if lastQ.End.Month() != time.March || lastQ.End.Day() != 31 {
		t.Errorf("last_quarter end = %v, want Mar 31", lastQ.End)
	}
}

func TestResolvePeriodLastQuarterYearRollback(t *testing.T) {
	// February sits in Q1; last quarter is Q4 of the prior year.
	now := time.Date(2025, time.February, 5, 0, 0, 0, 0, time.Local)
	r := mustResolve(t, PeriodLastQuarter, "", "", now)

	if r.Start.Year() != 2024 || r.Start.Month() != time.October {
		t.Errorf("start = %v, want 2024-10-01", r.Start)
	}
	if r.End.Year() != 2024 || r.End.Month() != time.December || r.End.Day() != 31 {
		t.Errorf("end = %v, want 2024-12-31", r.End)
	}
}

func TestResolvePeriodYTDEndsAtNow(t *testing.T) {
	now := time.Date(2025, time.August, 30, 11, 45, 12, 0, time.Local)
	r := mustResolve(t, PeriodYTD, "", "", now)

	if r.Start.Month() != time.January || r.Start.Day() != 1 || r.Start.Hour() != 0 {
		t.Errorf("start = %v, want Jan 1 00:00", r.Start)
	}
	if !r.End.Equal(now) {
		t.Errorf("end = %v, want exactly now (%v)", r.End, now)
	}
}

func TestResolvePeriodCustomSingleDay(t *testing.T) {
	now := time.Now()
	r := mustResolve(t, PeriodCustom, "2025-06-10", "2025-06-10", now)

	if r.Start.After(r.End) {
		t.Fatalf("start %v after end %v", r.Start, r.End)
	}
	if h, m, s := r.Start.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("start time-of-day = %02d:%02d:%02d, want midnight", h, m, s)
	}
	if h, m, s := r.End.Clock(); h != 23 || m != 59 || s != 59 {
		t.Errorf("end time-of-day = %02d:%02d:%02d, want 23:59:59", h, m, s)
	}
	if r.End.Nanosecond() != 999_000_000 {
		t.Errorf("end nanoseconds = %d, want 999ms", r.End.Nanosecond())
	}
}

func TestResolvePeriodInvalid(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		period Period
		from   string
		to     string
	}{
		{"unknown token", Period("fortnight"), "", ""},
		{"custom without from", PeriodCustom, "", "2025-01-31"},
		{"custom without to", PeriodCustom, "2025-01-01", ""},
		{"custom malformed from", PeriodCustom, "01/01/2025", "2025-01-31"},
		{"custom malformed to", PeriodCustom, "2025-01-01", "Jan 31"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolvePeriod(tc.period, tc.from, tc.to, now)
			if !errors.Is(err, ErrInvalidPeriod) {
				t.Errorf("err = %v, want ErrInvalidPeriod", err)
			}
		})
	}
}

func TestResolvePeriodStartNeverAfterEnd(t *testing.T) {
	now := time.Date(2025, time.July, 4, 16, 0, 0, 0, time.Local)
	for _, p := range []Period{PeriodThisMonth, PeriodLastMonth, PeriodThisQuarter, PeriodLastQuarter, PeriodYTD} {
		r := mustResolve(t, p, "", "", now)
		if r.Start.After(r.End) {
			t.Errorf("%s: start %v after end %v", p, r.Start, r.End)
		}
		if h, m, s := r.Start.Clock(); h != 0 || m != 0 || s != 0 {
			t.Errorf("%s: start time-of-day = %02d:%02d:%02d, want midnight", p, h, m, s)
		}
	}
}
