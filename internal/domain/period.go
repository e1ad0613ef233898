package domain

import "time"

// Period is a half-open time window [Start, End). Either bound may be
// absent, which leaves the window open on that side. The zero Period
// matches all time.
type Period struct {
	Start    time.Time
	End      time.Time
	HasStart bool
	HasEnd   bool
}

// AllTime returns the unbounded period.
func AllTime() Period {
	return Period{}
}

// PeriodFromRange builds a period from optional explicit bounds. A nil bound
// leaves that side open.
func PeriodFromRange(start, end *time.Time) Period {
	var p Period
	if start != nil {
		p.Start = *start
		p.HasStart = true
	}
	if end != nil {
		p.End = *end
		p.HasEnd = true
	}
	return p
}

// PeriodFromMonth returns the calendar month [first day, first day of next
// month) in UTC.
func PeriodFromMonth(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Start:    start,
		End:      start.AddDate(0, 1, 0),
		HasStart: true,
		HasEnd:   true,
	}
}

// PeriodFromYear returns the calendar year [Jan 1, next Jan 1) in UTC.
func PeriodFromYear(year int) Period {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Start:    start,
		End:      start.AddDate(1, 0, 0),
		HasStart: true,
		HasEnd:   true,
	}
}

// Validate rejects windows that end before they start.
func (p Period) Validate() error {
	if p.HasStart && p.HasEnd && p.End.Before(p.Start) {
		return ErrInvalidPeriod
	}
	return nil
}

// IsZero reports whether the period is unbounded on both sides.
func (p Period) IsZero() bool {
	return !p.HasStart && !p.HasEnd
}

// Contains reports whether t falls inside the half-open window.
func (p Period) Contains(t time.Time) bool {
	if p.HasStart && t.Before(p.Start) {
		return false
	}
	if p.HasEnd && !t.Before(p.End) {
		return false
	}
	return true
}
