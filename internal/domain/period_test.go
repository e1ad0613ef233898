package domain

import (
	"testing"
	"time"
)

func TestPeriodFromMonth(t *testing.T) {
	p := PeriodFromMonth(2024, time.February)

	if !p.Start.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %v", p.Start)
	}
	// Leap year: February has 29 days, window ends March 1.
	if !p.End.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end: %v", p.End)
	}
}

func TestPeriodContainsHalfOpen(t *testing.T) {
	p := PeriodFromMonth(2024, time.June)

	tests := []struct {
		at   time.Time
		want bool
	}{
		{time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC), true},
		{time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2024, time.May, 31, 23, 59, 59, 0, time.UTC), false},
	}

	for _, tt := range tests {
		if got := p.Contains(tt.at); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestPeriodOpenEnded(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	p := PeriodFromRange(&start, nil)

	if !p.Contains(time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)) {
		t.Error("open-ended period must contain far future")
	}
	if p.Contains(start.Add(-time.Second)) {
		t.Error("period must not contain instants before start")
	}
}

func TestPeriodValidate(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)

	if err := PeriodFromRange(&start, &end).Validate(); err != ErrInvalidPeriod {
		t.Errorf("got %v, want ErrInvalidPeriod", err)
	}
	if err := AllTime().Validate(); err != nil {
		t.Errorf("all-time period must validate, got %v", err)
	}
}
