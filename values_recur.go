package ics

import (
	"strconv"
	"strings"
	"time"
)

// Frequency is the FREQ rule part of a recurrence rule.
type Frequency string

const (
	FrequencySecondly Frequency = "SECONDLY"
	FrequencyMinutely Frequency = "MINUTELY"
	FrequencyHourly   Frequency = "HOURLY"
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyYearly   Frequency = "YEARLY"
)

func (f Frequency) valid() bool {
	switch f {
	case FrequencySecondly, FrequencyMinutely, FrequencyHourly, FrequencyDaily,
		FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

var weekdayCodes = [...]string{
	time.Sunday:    "SU",
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
}

func weekdayCode(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return weekdayCodes[d]
}

// WeekdayNum is a BYDAY entry: a day of the week with an optional ordinal,
// e.g. "-1FR" for the last Friday. An Ordinal of zero means every such day.
type WeekdayNum struct {
	Ordinal int
	Weekday time.Weekday
}

// Every returns a weekday without an ordinal.
func Every(day time.Weekday) WeekdayNum {
	return WeekdayNum{Weekday: day}
}

// NewWeekdayNum returns the ordinal-th occurrence of day. The ordinal must be
// within -53..53 and must not be zero.
func NewWeekdayNum(ordinal int, day time.Weekday) (WeekdayNum, error) {
	if ordinal == 0 {
		return WeekdayNum{}, invalid("weekdayNum", "weekday ordinal must not be zero")
	}
	w := WeekdayNum{Ordinal: ordinal, Weekday: day}
	if err := w.Validate(); err != nil {
		return WeekdayNum{}, err
	}
	return w, nil
}

func (w WeekdayNum) Validate() error {
	if weekdayCode(w.Weekday) == "" {
		return invalid("weekdayNum", "unknown weekday %d", int(w.Weekday))
	}
	if w.Ordinal < -53 || w.Ordinal > 53 {
		return invalid("weekdayNum", "weekday ordinal must be between -53 and 53, got %d", w.Ordinal)
	}
	return nil
}

func (w WeekdayNum) String() string {
	switch {
	case w.Ordinal > 0:
		return "+" + strconv.Itoa(w.Ordinal) + weekdayCode(w.Weekday)
	case w.Ordinal < 0:
		return strconv.Itoa(w.Ordinal) + weekdayCode(w.Weekday)
	}
	return weekdayCode(w.Weekday)
}

// Recurrence is a RECUR value (RFC 5545 section 3.3.10). Zero or nil fields
// are omitted.
type Recurrence struct {
	Frequency Frequency
	// Until is rendered in UTC, or as a DATE when UntilDate is set.
	Until      time.Time
	UntilDate  bool
	Count      int
	Interval   int
	BySecond   []int
	ByMinute   []int
	ByHour     []int
	ByDay      []WeekdayNum
	ByMonthDay []int
	ByYearDay  []int
	ByWeekNo   []int
	ByMonth    []int
	BySetPos   []int
	WeekStart  *time.Weekday
}

// Validate checks the structural shape of the rule: a known frequency,
// UNTIL and COUNT not both set, and every BYxxx entry within its range.
func (r Recurrence) Validate() error {
	if !r.Frequency.valid() {
		return invalid("recur", "recurrence frequency is required, got %q", string(r.Frequency))
	}
	if !r.Until.IsZero() && r.Count != 0 {
		return invalid("recur", "recurrence until and count must not both be set")
	}
	if r.Count < 0 {
		return invalid("recur", "recurrence count must be positive, got %d", r.Count)
	}
	if r.Interval < 0 {
		return invalid("recur", "recurrence interval must be positive, got %d", r.Interval)
	}
	checks := []struct {
		name     string
		values   []int
		min, max int
		signed   bool
	}{
		{"BYSECOND", r.BySecond, 0, 60, false},
		{"BYMINUTE", r.ByMinute, 0, 59, false},
		{"BYHOUR", r.ByHour, 0, 23, false},
		{"BYMONTHDAY", r.ByMonthDay, 1, 31, true},
		{"BYYEARDAY", r.ByYearDay, 1, 366, true},
		{"BYWEEKNO", r.ByWeekNo, 1, 53, true},
		{"BYMONTH", r.ByMonth, 1, 12, false},
		{"BYSETPOS", r.BySetPos, 1, 366, true},
	}
	for _, c := range checks {
		for _, v := range c.values {
			abs := v
			if c.signed && v < 0 {
				abs = -v
			}
			if abs < c.min || abs > c.max {
				return invalid("recur", "recurrence %s value %d out of range", c.name, v)
			}
		}
	}
	for _, d := range r.ByDay {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	if r.WeekStart != nil && weekdayCode(*r.WeekStart) == "" {
		return invalid("recur", "unknown week start %d", int(*r.WeekStart))
	}
	return nil
}

func (r Recurrence) String() string {
	parts := []string{"FREQ=" + string(r.Frequency)}
	if !r.Until.IsZero() {
		if r.UntilDate {
			parts = append(parts, "UNTIL="+r.Until.Format(icalDateFormatLocal))
		} else {
			parts = append(parts, "UNTIL="+formatUTC(r.Until))
		}
	}
	if r.Count > 0 {
		parts = append(parts, "COUNT="+strconv.Itoa(r.Count))
	}
	if r.Interval > 0 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(r.Interval))
	}
	parts = appendIntRulePart(parts, "BYSECOND", r.BySecond)
	parts = appendIntRulePart(parts, "BYMINUTE", r.ByMinute)
	parts = appendIntRulePart(parts, "BYHOUR", r.ByHour)
	if len(r.ByDay) > 0 {
		days := make([]string, len(r.ByDay))
		for i, d := range r.ByDay {
			days[i] = d.String()
		}
		parts = append(parts, "BYDAY="+strings.Join(days, ","))
	}
	parts = appendIntRulePart(parts, "BYMONTHDAY", r.ByMonthDay)
	parts = appendIntRulePart(parts, "BYYEARDAY", r.ByYearDay)
	parts = appendIntRulePart(parts, "BYWEEKNO", r.ByWeekNo)
	parts = appendIntRulePart(parts, "BYMONTH", r.ByMonth)
	parts = appendIntRulePart(parts, "BYSETPOS", r.BySetPos)
	if r.WeekStart != nil {
		parts = append(parts, "WKST="+weekdayCode(*r.WeekStart))
	}
	return strings.Join(parts, ";")
}

func appendIntRulePart(parts []string, name string, values []int) []string {
	if len(values) == 0 {
		return parts
	}
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return append(parts, name+"="+strings.Join(s, ","))
}
