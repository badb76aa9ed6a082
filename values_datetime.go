package ics

import (
	"strings"
	"time"
)

const (
	icalTimestampFormatUtc   = "20060102T150405Z"
	icalTimestampFormatLocal = "20060102T150405"
	icalDateFormatLocal      = "20060102"
)

// formatDateTime renders t as a DATE or DATE-TIME value. A DATE value type
// emits only the date portion. Otherwise a time zone identifier selects the
// local form in that zone, and without one the UTC form is used.
func formatDateTime(t time.Time, valueType ValueDataType, tzid TimeZoneIdentifier) string {
	switch {
	case valueType == ValueDataTypeDate:
		if tzid.Location != nil {
			t = t.In(tzid.Location)
		}
		return t.Format(icalDateFormatLocal)
	case tzid.Location != nil:
		return t.In(tzid.Location).Format(icalTimestampFormatLocal)
	default:
		return formatUTC(t)
	}
}

func formatUTC(t time.Time) string {
	return t.UTC().Format(icalTimestampFormatUtc)
}

// formatLocal renders the wall clock of t in its own location, without a
// UTC designator.
func formatLocal(t time.Time) string {
	return t.Format(icalTimestampFormatLocal)
}

func formatDateTimes(ts []time.Time, valueType ValueDataType, tzid TimeZoneIdentifier) string {
	values := make([]string, len(ts))
	for i, t := range ts {
		values[i] = formatDateTime(t, valueType, tzid)
	}
	return strings.Join(values, ",")
}

// checkDateTimeValueType accepts an unset, DATE or DATE-TIME value type and
// rejects a TZID combined with DATE.
func checkDateTimeValueType(field string, valueType ValueDataType, tzid TimeZoneIdentifier, allowed ...ValueDataType) error {
	if valueType != "" {
		accepted := append([]ValueDataType{ValueDataTypeDate, ValueDataTypeDateTime}, allowed...)
		names := make([]string, len(accepted))
		ok := false
		for i, a := range accepted {
			names[i] = string(a)
			if valueType == a {
				ok = true
			}
		}
		if !ok {
			return invalid(field, "%s value type must be one of %s, got %s", field, strings.Join(names, ", "), valueType)
		}
	}
	if valueType == ValueDataTypeDate && tzid.Location != nil {
		return invalid(field, "%s must not carry a TZID when the value type is DATE", field)
	}
	return nil
}
