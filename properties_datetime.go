package ics

import (
	"slices"
	"strings"
	"time"
)

// zonedDateTime is the shared shape of DTSTART, DTEND, DUE and
// RECURRENCE-ID: a DATE or DATE-TIME value with optional VALUE and TZID
// parameters, emitted in that order.
type zonedDateTime struct {
	valueType ValueDataType
	tzid      TimeZoneIdentifier
	value     time.Time
}

func newZonedDateTime(field string, valueType ValueDataType, tzid TimeZoneIdentifier, value time.Time) (zonedDateTime, error) {
	if err := checkDateTimeValueType(field, valueType, tzid); err != nil {
		return zonedDateTime{}, err
	}
	return zonedDateTime{valueType: valueType, tzid: tzid, value: value}, nil
}

func (z zonedDateTime) format(name PropertyName, extra ...Parameter) string {
	params := append([]Parameter{z.valueType, z.tzid}, extra...)
	return formatProperty(name, formatDateTime(z.value, z.valueType, z.tzid), params...)
}

// Time returns the instant the property was built with.
func (z zonedDateTime) Time() time.Time {
	return z.value
}

// IsDate reports whether the value is rendered as a DATE.
func (z zonedDateTime) IsDate() bool {
	return z.valueType == ValueDataTypeDate
}

// DateTimeCompleted is the COMPLETED property (section 3.8.2.1), always UTC.
type DateTimeCompleted struct {
	value time.Time
}

type DateTimeCompletedBuilder struct{}

func NewDateTimeCompletedBuilder() *DateTimeCompletedBuilder {
	return &DateTimeCompletedBuilder{}
}

func (b *DateTimeCompletedBuilder) Build(value time.Time) *DateTimeCompleted {
	return &DateTimeCompleted{value: value}
}

func (p *DateTimeCompleted) Name() PropertyName {
	return PropertyCompleted
}

func (p *DateTimeCompleted) Formatted() string {
	return formatProperty(PropertyCompleted, formatUTC(p.value))
}

// DateTimeEnd is the DTEND property (section 3.8.2.2).
type DateTimeEnd struct {
	zonedDateTime
}

type DateTimeEndBuilder struct {
	valueType ValueDataType
	tzid      TimeZoneIdentifier
}

func NewDateTimeEndBuilder() *DateTimeEndBuilder {
	return &DateTimeEndBuilder{}
}

func (b *DateTimeEndBuilder) WithValueDataType(valueType ValueDataType) *DateTimeEndBuilder {
	b.valueType = valueType
	return b
}

func (b *DateTimeEndBuilder) WithTimeZoneIdentifier(tzid TimeZoneIdentifier) *DateTimeEndBuilder {
	b.tzid = tzid
	return b
}

func (b *DateTimeEndBuilder) Build(value time.Time) (*DateTimeEnd, error) {
	z, err := newZonedDateTime("dtend", b.valueType, b.tzid, value)
	if err != nil {
		return nil, err
	}
	return &DateTimeEnd{z}, nil
}

func (p *DateTimeEnd) Name() PropertyName {
	return PropertyDtend
}

func (p *DateTimeEnd) Formatted() string {
	return p.format(PropertyDtend)
}

// DateTimeDue is the DUE property (section 3.8.2.3).
type DateTimeDue struct {
	zonedDateTime
}

type DateTimeDueBuilder struct {
	valueType ValueDataType
	tzid      TimeZoneIdentifier
}

func NewDateTimeDueBuilder() *DateTimeDueBuilder {
	return &DateTimeDueBuilder{}
}

func (b *DateTimeDueBuilder) WithValueDataType(valueType ValueDataType) *DateTimeDueBuilder {
	b.valueType = valueType
	return b
}

func (b *DateTimeDueBuilder) WithTimeZoneIdentifier(tzid TimeZoneIdentifier) *DateTimeDueBuilder {
	b.tzid = tzid
	return b
}

func (b *DateTimeDueBuilder) Build(value time.Time) (*DateTimeDue, error) {
	z, err := newZonedDateTime("due", b.valueType, b.tzid, value)
	if err != nil {
		return nil, err
	}
	return &DateTimeDue{z}, nil
}

func (p *DateTimeDue) Name() PropertyName {
	return PropertyDue
}

func (p *DateTimeDue) Formatted() string {
	return p.format(PropertyDue)
}

// DateTimeStart is the DTSTART property (section 3.8.2.4).
type DateTimeStart struct {
	zonedDateTime
}

type DateTimeStartBuilder struct {
	valueType ValueDataType
	tzid      TimeZoneIdentifier
}

func NewDateTimeStartBuilder() *DateTimeStartBuilder {
	return &DateTimeStartBuilder{}
}

func (b *DateTimeStartBuilder) WithValueDataType(valueType ValueDataType) *DateTimeStartBuilder {
	b.valueType = valueType
	return b
}

func (b *DateTimeStartBuilder) WithTimeZoneIdentifier(tzid TimeZoneIdentifier) *DateTimeStartBuilder {
	b.tzid = tzid
	return b
}

func (b *DateTimeStartBuilder) Build(value time.Time) (*DateTimeStart, error) {
	z, err := newZonedDateTime("dtstart", b.valueType, b.tzid, value)
	if err != nil {
		return nil, err
	}
	return &DateTimeStart{z}, nil
}

func (p *DateTimeStart) Name() PropertyName {
	return PropertyDtstart
}

func (p *DateTimeStart) Formatted() string {
	return p.format(PropertyDtstart)
}

// DurationProperty is the DURATION property (section 3.8.2.5).
type DurationProperty struct {
	value Duration
}

type DurationPropertyBuilder struct{}

func NewDurationPropertyBuilder() *DurationPropertyBuilder {
	return &DurationPropertyBuilder{}
}

// Build rejects negative durations.
func (b *DurationPropertyBuilder) Build(value Duration) (*DurationProperty, error) {
	if err := value.Validate(); err != nil {
		return nil, err
	}
	if value.Negative {
		return nil, invalid("duration", "duration must not be negative")
	}
	return &DurationProperty{value: value}, nil
}

func (p *DurationProperty) Value() Duration {
	return p.value
}

func (p *DurationProperty) Name() PropertyName {
	return PropertyDuration
}

func (p *DurationProperty) Formatted() string {
	return formatProperty(PropertyDuration, p.value.String())
}

// FreeBusyTime is the FREEBUSY property (section 3.8.2.6): one or more
// periods, always in UTC.
type FreeBusyTime struct {
	fbType  FreeBusyTimeType
	periods []Period
}

type FreeBusyTimeBuilder struct {
	fbType FreeBusyTimeType
}

func NewFreeBusyTimeBuilder() *FreeBusyTimeBuilder {
	return &FreeBusyTimeBuilder{}
}

func (b *FreeBusyTimeBuilder) WithFreeBusyTimeType(fbType FreeBusyTimeType) *FreeBusyTimeBuilder {
	b.fbType = fbType
	return b
}

func (b *FreeBusyTimeBuilder) Build(periods ...Period) (*FreeBusyTime, error) {
	if len(periods) == 0 {
		return nil, invalid("freebusy", "at least one free/busy period is required")
	}
	if slices.ContainsFunc(periods, Period.IsZero) {
		return nil, invalid("freebusy", "free/busy periods must be built with NewPeriod or NewPeriodOfDuration")
	}
	values := make([]Period, len(periods))
	copy(values, periods)
	return &FreeBusyTime{fbType: b.fbType, periods: values}, nil
}

func (p *FreeBusyTime) Name() PropertyName {
	return PropertyFreebusy
}

func (p *FreeBusyTime) Formatted() string {
	values := make([]string, len(p.periods))
	for i, period := range p.periods {
		values[i] = period.String()
	}
	return formatProperty(PropertyFreebusy, strings.Join(values, ","), p.fbType)
}

// TimeTransparency is the TRANSP property (section 3.8.2.7).
type TimeTransparency struct {
	value Transparency
}

type TimeTransparencyBuilder struct{}

func NewTimeTransparencyBuilder() *TimeTransparencyBuilder {
	return &TimeTransparencyBuilder{}
}

func (b *TimeTransparencyBuilder) Build(value Transparency) (*TimeTransparency, error) {
	if value == "" {
		return nil, invalid("transp", "transparency is required")
	}
	return &TimeTransparency{value: value}, nil
}

func (p *TimeTransparency) Name() PropertyName {
	return PropertyTransp
}

func (p *TimeTransparency) Formatted() string {
	return formatProperty(PropertyTransp, string(p.value))
}
