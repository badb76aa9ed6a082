package ics

import (
	"reflect"
	"slices"
)

// Component is a BEGIN/END block. To determine what this is use a type
// switch on each of:
//   - *Event
//   - *Todo
//   - *Journal
//   - *FreeBusy
//   - *TimeZone
//   - *Observance
//   - *AudioAlarm, *DisplayAlarm, *EmailAlarm
//
// Formatted renders the block with the default serialization options and
// without a trailing newline.
type Component interface {
	Type() ComponentType
	Formatted() string
	compose(c *composer)
}

// CalendarComponent is a component that may appear directly inside a
// VCALENDAR.
type CalendarComponent interface {
	Component
	calendarComponent()
}

var (
	_ CalendarComponent = (*Event)(nil)
	_ CalendarComponent = (*Todo)(nil)
	_ CalendarComponent = (*Journal)(nil)
	_ CalendarComponent = (*FreeBusy)(nil)
	_ CalendarComponent = (*TimeZone)(nil)
	_ Component         = (*Observance)(nil)
	_ Component         = (*Calendar)(nil)
	_ Alarm             = (*AudioAlarm)(nil)
	_ Alarm             = (*DisplayAlarm)(nil)
	_ Alarm             = (*EmailAlarm)(nil)
)

// isNilComponent reports whether cmp is nil or holds a nil pointer.
func isNilComponent(cmp Component) bool {
	if cmp == nil {
		return true
	}
	v := reflect.ValueOf(cmp)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// compactComponents returns a copy of cs without nil entries.
func compactComponents[C Component](cs []C) []C {
	return slices.DeleteFunc(slices.Clone(cs), func(cmp C) bool { return isNilComponent(cmp) })
}

func formatComponent(cmp Component) string {
	c := newComposer(nil)
	cmp.compose(c)
	return c.String()
}

func requireField(component ComponentType, field string, present bool) error {
	if present {
		return nil
	}
	return invalid(field, "%s requires %s", component, field)
}

// checkStatus rejects STATUS values that RFC 5545 does not define for the
// component.
func checkStatus(component ComponentType, status *Status, allowed ...ObjectStatus) error {
	if status == nil || slices.Contains(allowed, status.Value()) {
		return nil
	}
	return invalid("status", "status %s is not allowed in %s", status.Value(), component)
}

// checkEndBound applies the DTEND/DUE rules shared by VEVENT and VTODO: the
// end excludes a duration, matches the value type of the start and falls
// strictly after it. With a DATE start, a duration must be whole days or
// weeks.
func checkEndBound(endField string, start *DateTimeStart, end *zonedDateTime, duration *DurationProperty) error {
	if end != nil && duration != nil {
		return invalid(endField, "%s and duration must not both be set", endField)
	}
	if start == nil {
		return nil
	}
	if end != nil {
		if end.IsDate() != start.IsDate() {
			return invalid(endField, "%s must have the same value type as dtstart", endField)
		}
		if !end.Time().After(start.Time()) {
			return invalid(endField, "%s must be later than dtstart", endField)
		}
	}
	if duration != nil && start.IsDate() {
		d := duration.Value()
		if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
			return invalid("duration", "duration must be whole days or weeks when dtstart is a DATE")
		}
	}
	return nil
}
