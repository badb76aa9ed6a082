package ics

import (
	"fmt"
	"time"
)

// Sign is the sign of a UTC offset or duration.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// UtcOffset is a UTC-OFFSET value (RFC 5545 section 3.3.14).
type UtcOffset struct {
	Sign       Sign
	Hours      int
	Minutes    int
	Seconds    int
	HasSeconds bool
}

// NewUtcOffset returns an offset without a seconds component.
func NewUtcOffset(sign Sign, hours, minutes int) (UtcOffset, error) {
	o := UtcOffset{Sign: sign, Hours: hours, Minutes: minutes}
	if err := o.Validate(); err != nil {
		return UtcOffset{}, err
	}
	return o, nil
}

// NewUtcOffsetWithSeconds returns an offset rendered as (+|-)HHMMSS.
func NewUtcOffsetWithSeconds(sign Sign, hours, minutes, seconds int) (UtcOffset, error) {
	o := UtcOffset{Sign: sign, Hours: hours, Minutes: minutes, Seconds: seconds, HasSeconds: true}
	if err := o.Validate(); err != nil {
		return UtcOffset{}, err
	}
	return o, nil
}

// UtcOffsetOf returns the offset of loc at instant t. Seconds are only
// carried when the zone offset is not a whole minute.
func UtcOffsetOf(loc *time.Location, t time.Time) (UtcOffset, error) {
	_, offset := t.In(loc).Zone()
	sign := Positive
	if offset < 0 {
		sign = Negative
		offset = -offset
	}
	hours, minutes, seconds := offset/3600, offset%3600/60, offset%60
	if seconds != 0 {
		return NewUtcOffsetWithSeconds(sign, hours, minutes, seconds)
	}
	return NewUtcOffset(sign, hours, minutes)
}

// Validate checks the component ranges. A zero offset must be positive:
// RFC 5545 reserves "-0000" and "-000000".
func (o UtcOffset) Validate() error {
	if o.Sign != Positive && o.Sign != Negative {
		return invalid("utcOffset", "utc offset sign must be positive or negative")
	}
	if o.Hours < 0 || o.Hours > 12 {
		return invalid("utcOffset", "utc offset hour must be between 0 and 12, got %d", o.Hours)
	}
	if o.Minutes < 0 || o.Minutes > 59 {
		return invalid("utcOffset", "utc offset minute must be between 0 and 59, got %d", o.Minutes)
	}
	if o.Seconds < 0 || o.Seconds > 59 {
		return invalid("utcOffset", "utc offset second must be between 0 and 59, got %d", o.Seconds)
	}
	if !o.HasSeconds && o.Seconds != 0 {
		return invalid("utcOffset", "utc offset seconds set without HasSeconds")
	}
	if o.Sign == Negative && o.Hours == 0 && o.Minutes == 0 && o.Seconds == 0 {
		return invalid("utcOffset", "a zero utc offset must not be negative")
	}
	return nil
}

func (o UtcOffset) String() string {
	sign := "+"
	if o.Sign == Negative {
		sign = "-"
	}
	if o.HasSeconds {
		return fmt.Sprintf("%s%02d%02d%02d", sign, o.Hours, o.Minutes, o.Seconds)
	}
	return fmt.Sprintf("%s%02d%02d", sign, o.Hours, o.Minutes)
}
