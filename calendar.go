package ics

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
)

// Calendar represents a VCALENDAR object. RFC 5545 section 3.6 says:
// "A 'VCALENDAR' object MUST include the 'PRODID' and 'VERSION' properties" and
// it must contain at least one component such as VEVENT. Properties are
// emitted in the order PRODID, VERSION, CALSCALE, METHOD, X-, followed by
// the components in insertion order.
type Calendar struct {
	productIdentifier *ProductIdentifier
	version           *Version
	calendarScale     *CalendarScale
	method            *Method
	experimental      []*ExperimentalProperty
	components        []CalendarComponent
}

type CalendarBuilder struct {
	cal Calendar
}

func NewCalendarBuilder() *CalendarBuilder {
	return &CalendarBuilder{}
}

// NewCalendarFor returns a builder with VERSION set to "2.0" as defined in
// RFC 5545 section 3.7.4 and PRODID populated from service per section
// 3.7.3.
func NewCalendarFor(service string) (*CalendarBuilder, error) {
	prodID, err := NewProductIdentifierBuilder().Build("-//" + service + "//icskit ics//EN")
	if err != nil {
		return nil, err
	}
	version, err := NewVersionBuilder().Build(DefaultVersion)
	if err != nil {
		return nil, err
	}
	return NewCalendarBuilder().WithProductIdentifier(prodID).WithVersion(version), nil
}

func (b *CalendarBuilder) WithProductIdentifier(p *ProductIdentifier) *CalendarBuilder {
	b.cal.productIdentifier = p
	return b
}

func (b *CalendarBuilder) WithVersion(p *Version) *CalendarBuilder {
	b.cal.version = p
	return b
}

func (b *CalendarBuilder) WithCalendarScale(p *CalendarScale) *CalendarBuilder {
	b.cal.calendarScale = p
	return b
}

func (b *CalendarBuilder) WithMethod(p *Method) *CalendarBuilder {
	b.cal.method = p
	return b
}

func (b *CalendarBuilder) AddExperimentalProperties(ps ...*ExperimentalProperty) *CalendarBuilder {
	b.cal.experimental = append(b.cal.experimental, ps...)
	return b
}

func (b *CalendarBuilder) AddComponents(cs ...CalendarComponent) *CalendarBuilder {
	b.cal.components = append(b.cal.components, cs...)
	return b
}

func (b *CalendarBuilder) Build() (*Calendar, error) {
	cal := b.cal
	if err := requireField(ComponentVCalendar, "prodid", cal.productIdentifier != nil); err != nil {
		return nil, err
	}
	if err := requireField(ComponentVCalendar, "version", cal.version != nil); err != nil {
		return nil, err
	}
	cal.components = compactComponents(cal.components)
	if len(cal.components) == 0 {
		return nil, invalid("components", "%s requires at least one component", ComponentVCalendar)
	}
	cal.experimental = slices.Clone(cal.experimental)
	return &cal, nil
}

func (cal *Calendar) Components() []CalendarComponent {
	return slices.Clone(cal.components)
}

func (cal *Calendar) Events() (r []*Event) {
	r = []*Event{}
	for i := range cal.components {
		switch event := cal.components[i].(type) {
		case *Event:
			r = append(r, event)
		}
	}
	return
}

func (cal *Calendar) Type() ComponentType {
	return ComponentVCalendar
}

// Formatted renders the calendar with the default options and without a
// trailing newline. Use Serialize for a complete file.
func (cal *Calendar) Formatted() string {
	return formatComponent(cal)
}

func (cal *Calendar) compose(c *composer) {
	c.begin(ComponentVCalendar)
	optional(c, cal.productIdentifier)
	optional(c, cal.version)
	optional(c, cal.calendarScale)
	optional(c, cal.method)
	repeated(c, cal.experimental)
	nested(c, cal.components)
	c.end(ComponentVCalendar)
}

// Serialize returns the calendar as a complete iCalendar stream, every line
// terminated. It accepts the same options as SerializeTo and returns the
// empty string when they are invalid.
func (cal *Calendar) Serialize(ops ...any) string {
	b := &strings.Builder{}
	// We are intentionally ignoring the return value. _ used to communicate this to lint.
	_ = cal.SerializeTo(b, ops...)
	return b.String()
}

type WithLineLength int
type WithNewLine string

func (cal *Calendar) SerializeTo(w io.Writer, ops ...any) error {
	serializeConfig, err := parseSerializeOps(ops)
	if err != nil {
		return err
	}
	c := newComposer(serializeConfig)
	cal.compose(c)
	_, err = io.WriteString(w, c.String()+serializeConfig.NewLine)
	return err
}

// SerializationConfiguration controls how calendars are written out.
// MaxLength is the octet length at which lines are folded, 75 as required
// by RFC 5545 section 3.1; values below 2 disable folding. NewLine selects
// the line termination sequence.
type SerializationConfiguration struct {
	MaxLength int
	NewLine   string
}

// parseSerializeOps interprets the optional arguments provided to Serialize or
// SerializeTo.  It accepts WithLineLength, WithNewLine or a
// *SerializationConfiguration.  Unsupported types return an error.
func parseSerializeOps(ops []any) (*SerializationConfiguration, error) {
	serializeConfig := defaultSerializationOptions()
	for opi, op := range ops {
		switch op := op.(type) {
		case WithLineLength:
			serializeConfig.MaxLength = int(op)
		case WithNewLine:
			serializeConfig.NewLine = string(op)
		case *SerializationConfiguration:
			if op == nil {
				return nil, fmt.Errorf("op %d: nil serialization configuration", opi)
			}
			return op, nil
		case error:
			return nil, op
		default:
			return nil, fmt.Errorf("unknown op %d of type %s", opi, reflect.TypeOf(op))
		}
	}
	return serializeConfig, nil
}

// defaultSerializationOptions returns the default values used for calendar
// serialization: 75 octet lines terminated by CRLF.
func defaultSerializationOptions() *SerializationConfiguration {
	return &SerializationConfiguration{
		MaxLength: 75,
		NewLine:   string(NewLine),
	}
}
