package domain

import (
	"fmt"
	"time"

	dErrors "realestate/pkg/domain-errors"
)

const maxPeriodYears = 100

// Period is a closed date range [start, end].
// Invariant: both bounds set, start <= end, at most 100 calendar years apart.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	var v dErrors.Validation
	v.Check(!start.IsZero(), "start date is required")
	v.Check(!end.IsZero(), "end date is required")
	v.Check(!start.After(end), "start date must not be after end date")
	v.Check(end.Year()-start.Year() <= maxPeriodYears,
		fmt.Sprintf("period must not exceed %d years", maxPeriodYears))
	if err := v.Err(); err != nil {
		return Period{}, err
	}
	return Period{start: start, end: end}, nil
}

// MustPeriod panics on invalid input. Use only in tests and fixtures.
func MustPeriod(start, end time.Time) Period {
	p, err := NewPeriod(start, end)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Period) Start() time.Time { return p.start }

func (p Period) End() time.Time { return p.end }

func (p Period) IsZero() bool { return p.start.IsZero() && p.end.IsZero() }

func (p Period) Duration() time.Duration { return p.end.Sub(p.start) }

// Contains reports whether t falls within the period, bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && !t.After(p.end)
}

// Overlaps reports whether the two periods share at least one instant.
func (p Period) Overlaps(other Period) bool {
	return !p.end.Before(other.start) && !other.end.Before(p.start)
}

func (p Period) Equal(other Period) bool {
	return p.start.Equal(other.start) && p.end.Equal(other.end)
}

func (p Period) String() string {
	return fmt.Sprintf("Период с %s по %s", p.start.Format("02.01.2006"), p.end.Format("02.01.2006"))
}
