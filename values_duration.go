package ics

import (
	"strconv"
	"strings"
	"time"
)

// Duration is a DURATION value (RFC 5545 section 3.3.6). Weeks cannot be
// combined with the other units.
type Duration struct {
	Negative bool
	Weeks    int
	Days     int
	Hours    int
	Minutes  int
	Seconds  int
}

// DurationOfWeeks returns a duration of w weeks.
func DurationOfWeeks(w int) (Duration, error) {
	d := Duration{Weeks: w}
	if err := d.Validate(); err != nil {
		return Duration{}, err
	}
	return d, nil
}

// NewDuration returns a duration built from days and a time part.
func NewDuration(days, hours, minutes, seconds int) (Duration, error) {
	d := Duration{Days: days, Hours: hours, Minutes: minutes, Seconds: seconds}
	if err := d.Validate(); err != nil {
		return Duration{}, err
	}
	return d, nil
}

// DurationOf converts d, truncated to whole seconds. Whole days are
// expressed as days, never as weeks.
func DurationOf(d time.Duration) Duration {
	r := Duration{}
	if d < 0 {
		r.Negative = true
		d = -d
	}
	total := int64(d / time.Second)
	r.Days = int(total / 86400)
	r.Hours = int(total % 86400 / 3600)
	r.Minutes = int(total % 3600 / 60)
	r.Seconds = int(total % 60)
	return r
}

// Negate returns the duration with the opposite sign.
func (d Duration) Negate() Duration {
	d.Negative = !d.Negative
	return d
}

// Validate rejects negative components and weeks mixed with other units.
func (d Duration) Validate() error {
	if d.Weeks < 0 || d.Days < 0 || d.Hours < 0 || d.Minutes < 0 || d.Seconds < 0 {
		return invalid("duration", "duration components must be non-negative; use Negative for a negative duration")
	}
	if d.Weeks > 0 && (d.Days > 0 || d.Hours > 0 || d.Minutes > 0 || d.Seconds > 0) {
		return invalid("duration", "duration weeks must not be combined with days or time")
	}
	return nil
}

// IsZero reports whether every component is zero.
func (d Duration) IsZero() bool {
	return d.Weeks == 0 && d.Days == 0 && d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0
}

// TimeDuration returns the exact length of d, counting a day as 24 hours.
func (d Duration) TimeDuration() time.Duration {
	r := time.Duration(d.Weeks)*7*24*time.Hour +
		time.Duration(d.Days)*24*time.Hour +
		time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second
	if d.Negative {
		return -r
	}
	return r
}

// String renders the duration following the dur-value grammar. A time part
// always keeps the H, M, S sequence contiguous, so an hour and a second
// without minutes render as "PT1H0M5S".
func (d Duration) String() string {
	b := &strings.Builder{}
	if d.Negative && !d.IsZero() {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	if d.Weeks > 0 {
		b.WriteString(strconv.Itoa(d.Weeks))
		b.WriteByte('W')
		return b.String()
	}
	if d.Days > 0 {
		b.WriteString(strconv.Itoa(d.Days))
		b.WriteByte('D')
	}
	if d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0 {
		if d.Days == 0 {
			b.WriteString("T0S")
		}
		return b.String()
	}
	b.WriteByte('T')
	switch {
	case d.Hours > 0:
		b.WriteString(strconv.Itoa(d.Hours))
		b.WriteByte('H')
		if d.Minutes > 0 || d.Seconds > 0 {
			b.WriteString(strconv.Itoa(d.Minutes))
			b.WriteByte('M')
		}
		if d.Seconds > 0 {
			b.WriteString(strconv.Itoa(d.Seconds))
			b.WriteByte('S')
		}
	case d.Minutes > 0:
		b.WriteString(strconv.Itoa(d.Minutes))
		b.WriteByte('M')
		if d.Seconds > 0 {
			b.WriteString(strconv.Itoa(d.Seconds))
			b.WriteByte('S')
		}
	default:
		b.WriteString(strconv.Itoa(d.Seconds))
		b.WriteByte('S')
	}
	return b.String()
}
