package ics

import (
	"slices"
	"strings"
)

// TimeZone is a VTIMEZONE (RFC 5545 section 3.6.5). It needs a TZID and at
// least one STANDARD or DAYLIGHT observance, which are emitted after its
// own properties in insertion order.
type TimeZone struct {
	tzid         *TimeZoneIdentifierProperty
	lastModified *LastModified
	tzurl        *TimeZoneUrl
	experimental []*ExperimentalProperty
	observances  []*Observance
}

type TimeZoneBuilder struct {
	tz TimeZone
}

func NewTimeZoneBuilder() *TimeZoneBuilder {
	return &TimeZoneBuilder{}
}

func (b *TimeZoneBuilder) WithTimeZoneIdentifier(p *TimeZoneIdentifierProperty) *TimeZoneBuilder {
	b.tz.tzid = p
	return b
}

func (b *TimeZoneBuilder) WithLastModified(p *LastModified) *TimeZoneBuilder {
	b.tz.lastModified = p
	return b
}

func (b *TimeZoneBuilder) WithTimeZoneUrl(p *TimeZoneUrl) *TimeZoneBuilder {
	b.tz.tzurl = p
	return b
}

func (b *TimeZoneBuilder) AddExperimentalProperties(ps ...*ExperimentalProperty) *TimeZoneBuilder {
	b.tz.experimental = append(b.tz.experimental, ps...)
	return b
}

func (b *TimeZoneBuilder) AddObservances(os ...*Observance) *TimeZoneBuilder {
	b.tz.observances = append(b.tz.observances, os...)
	return b
}

func (b *TimeZoneBuilder) Build() (*TimeZone, error) {
	tz := b.tz
	if err := requireField(ComponentVTimezone, "tzid", tz.tzid != nil); err != nil {
		return nil, err
	}
	tz.observances = slices.DeleteFunc(slices.Clone(tz.observances), func(o *Observance) bool { return o == nil })
	if len(tz.observances) == 0 {
		return nil, invalid("observance", "%s requires at least one %s or %s", ComponentVTimezone, ComponentStandard, ComponentDaylight)
	}
	tz.experimental = slices.Clone(tz.experimental)
	return &tz, nil
}

// Identifier returns the TZID value that TZID parameters should refer to.
func (tz *TimeZone) Identifier() string {
	return tz.tzid.Value()
}

func (tz *TimeZone) Observances() []*Observance {
	return slices.Clone(tz.observances)
}

func (tz *TimeZone) Type() ComponentType {
	return ComponentVTimezone
}

func (tz *TimeZone) Formatted() string {
	return formatComponent(tz)
}

func (tz *TimeZone) calendarComponent() {}

func (tz *TimeZone) compose(c *composer) {
	c.begin(ComponentVTimezone)
	optional(c, tz.tzid)
	optional(c, tz.lastModified)
	optional(c, tz.tzurl)
	repeated(c, tz.experimental)
	nested(c, tz.observances)
	c.end(ComponentVTimezone)
}

// Observance is a STANDARD or DAYLIGHT sub-component of a VTIMEZONE. Its
// DTSTART and RDATE values are local times, so they are written as the wall
// clock of the value's own location with no TZID and no UTC designator.
// Properties are emitted in the order DTSTART, TZOFFSETTO, TZOFFSETFROM,
// RRULE, then COMMENT, RDATE, TZNAME and the X- properties.
type Observance struct {
	kind            ComponentType
	dateTimeStart   *DateTimeStart
	offsetTo        *TimeZoneOffsetTo
	offsetFrom      *TimeZoneOffsetFrom
	recurrenceRule  *RecurrenceRule
	comments        []*Comment
	recurrenceDates []*RecurrenceDateTimes
	names           []*TimeZoneName
	experimental    []*ExperimentalProperty
}

type ObservanceBuilder struct {
	o Observance
}

// NewStandardBuilder starts a STANDARD observance.
func NewStandardBuilder() *ObservanceBuilder {
	return &ObservanceBuilder{o: Observance{kind: ComponentStandard}}
}

// NewDaylightBuilder starts a DAYLIGHT observance.
func NewDaylightBuilder() *ObservanceBuilder {
	return &ObservanceBuilder{o: Observance{kind: ComponentDaylight}}
}

func (b *ObservanceBuilder) WithDateTimeStart(p *DateTimeStart) *ObservanceBuilder {
	b.o.dateTimeStart = p
	return b
}

func (b *ObservanceBuilder) WithTimeZoneOffsetTo(p *TimeZoneOffsetTo) *ObservanceBuilder {
	b.o.offsetTo = p
	return b
}

func (b *ObservanceBuilder) WithTimeZoneOffsetFrom(p *TimeZoneOffsetFrom) *ObservanceBuilder {
	b.o.offsetFrom = p
	return b
}

func (b *ObservanceBuilder) WithRecurrenceRule(p *RecurrenceRule) *ObservanceBuilder {
	b.o.recurrenceRule = p
	return b
}

func (b *ObservanceBuilder) AddComments(ps ...*Comment) *ObservanceBuilder {
	b.o.comments = append(b.o.comments, ps...)
	return b
}

func (b *ObservanceBuilder) AddRecurrenceDateTimes(ps ...*RecurrenceDateTimes) *ObservanceBuilder {
	b.o.recurrenceDates = append(b.o.recurrenceDates, ps...)
	return b
}

func (b *ObservanceBuilder) AddTimeZoneNames(ps ...*TimeZoneName) *ObservanceBuilder {
	b.o.names = append(b.o.names, ps...)
	return b
}

func (b *ObservanceBuilder) AddExperimentalProperties(ps ...*ExperimentalProperty) *ObservanceBuilder {
	b.o.experimental = append(b.o.experimental, ps...)
	return b
}

// Build requires DTSTART, TZOFFSETTO and TZOFFSETFROM. DTSTART and RDATE
// must be plain DATE-TIME values without a TZID.
func (b *ObservanceBuilder) Build() (*Observance, error) {
	o := b.o
	if err := requireField(o.kind, "dtstart", o.dateTimeStart != nil); err != nil {
		return nil, err
	}
	if err := requireField(o.kind, "tzoffsetto", o.offsetTo != nil); err != nil {
		return nil, err
	}
	if err := requireField(o.kind, "tzoffsetfrom", o.offsetFrom != nil); err != nil {
		return nil, err
	}
	if o.dateTimeStart.IsDate() || o.dateTimeStart.tzid.Location != nil {
		return nil, invalid("dtstart", "%s dtstart must be a local date-time without a TZID", o.kind)
	}
	for _, rd := range o.recurrenceDates {
		if rd != nil && ((rd.valueType != "" && rd.valueType != ValueDataTypeDateTime) || rd.tzid.Location != nil) {
			return nil, invalid("rdate", "%s rdate must be local date-times without a TZID", o.kind)
		}
	}
	o.comments = slices.Clone(o.comments)
	o.recurrenceDates = slices.Clone(o.recurrenceDates)
	o.names = slices.Clone(o.names)
	o.experimental = slices.Clone(o.experimental)
	return &o, nil
}

func (o *Observance) Type() ComponentType {
	return o.kind
}

func (o *Observance) Formatted() string {
	return formatComponent(o)
}

func (o *Observance) compose(c *composer) {
	c.begin(o.kind)
	c.line(formatProperty(PropertyDtstart, formatLocal(o.dateTimeStart.Time())))
	optional(c, o.offsetTo)
	optional(c, o.offsetFrom)
	optional(c, o.recurrenceRule)
	repeated(c, o.comments)
	for _, rd := range o.recurrenceDates {
		if rd == nil {
			continue
		}
		values := make([]string, len(rd.dates))
		for i, t := range rd.dates {
			values[i] = formatLocal(t)
		}
		c.line(formatProperty(PropertyRdate, strings.Join(values, ",")))
	}
	repeated(c, o.names)
	repeated(c, o.experimental)
	c.end(o.kind)
}
