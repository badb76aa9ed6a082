package ics

import (
	"time"
)

// Period is a PERIOD value (RFC 5545 section 3.3.9): a start paired with
// either an explicit end or a positive duration.
type Period struct {
	start       time.Time
	end         time.Time
	duration    Duration
	explicitEnd bool
}

// NewPeriod returns a period with an explicit end, which must be strictly
// after start.
func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, invalid("period", "period end must be after its start")
	}
	return Period{start: start, end: end, explicitEnd: true}, nil
}

// NewPeriodOfDuration returns a period of length d starting at start.
func NewPeriodOfDuration(start time.Time, d Duration) (Period, error) {
	if err := d.Validate(); err != nil {
		return Period{}, err
	}
	if d.Negative || d.IsZero() {
		return Period{}, invalid("period", "period duration must be positive")
	}
	return Period{start: start, duration: d}, nil
}

// IsZero reports whether p was not built by NewPeriod or
// NewPeriodOfDuration.
func (p Period) IsZero() bool {
	return !p.explicitEnd && p.duration.IsZero()
}

func (p Period) Start() time.Time {
	return p.start
}

// End returns the explicit end or start plus the duration.
func (p Period) End() time.Time {
	if p.explicitEnd {
		return p.end
	}
	return p.start.Add(p.duration.TimeDuration())
}

// String renders the period with UTC timestamps.
func (p Period) String() string {
	return p.format(TimeZoneIdentifier{})
}

func (p Period) format(tzid TimeZoneIdentifier) string {
	s := formatDateTime(p.start, ValueDataTypeDateTime, tzid) + "/"
	if p.explicitEnd {
		return s + formatDateTime(p.end, ValueDataTypeDateTime, tzid)
	}
	return s + p.duration.String()
}
