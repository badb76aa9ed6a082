package ics

import (
	"slices"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// ExceptionDateTimes is the EXDATE property (section 3.8.5.1).
type ExceptionDateTimes struct {
	valueType ValueDataType
	tzid      TimeZoneIdentifier
	values    []time.Time
}

type ExceptionDateTimesBuilder struct {
	valueType ValueDataType
	tzid      TimeZoneIdentifier
}

func NewExceptionDateTimesBuilder() *ExceptionDateTimesBuilder {
	return &ExceptionDateTimesBuilder{}
}

func (b *ExceptionDateTimesBuilder) WithValueDataType(valueType ValueDataType) *ExceptionDateTimesBuilder {
	b.valueType = valueType
	return b
}

func (b *ExceptionDateTimesBuilder) WithTimeZoneIdentifier(tzid TimeZoneIdentifier) *ExceptionDateTimesBuilder {
	b.tzid = tzid
	return b
}

func (b *ExceptionDateTimesBuilder) Build(values ...time.Time) (*ExceptionDateTimes, error) {
	if err := checkDateTimeValueType("exdate", b.valueType, b.tzid); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, invalid("exdate", "at least one exception date is required")
	}
	ts := make([]time.Time, len(values))
	copy(ts, values)
	return &ExceptionDateTimes{valueType: b.valueType, tzid: b.tzid, values: ts}, nil
}

func (p *ExceptionDateTimes) Name() PropertyName {
	return PropertyExdate
}

func (p *ExceptionDateTimes) Formatted() string {
	return formatProperty(PropertyExdate, formatDateTimes(p.values, p.valueType, p.tzid), p.valueType, p.tzid)
}

// RecurrenceDateTimes is the RDATE property (section 3.8.5.2). It holds
// either dates and date-times, or periods when built with VALUE=PERIOD.
type RecurrenceDateTimes struct {
	valueType ValueDataType
	tzid      TimeZoneIdentifier
	dates     []time.Time
	periods   []Period
}

type RecurrenceDateTimesBuilder struct {
	valueType ValueDataType
	tzid      TimeZoneIdentifier
}

func NewRecurrenceDateTimesBuilder() *RecurrenceDateTimesBuilder {
	return &RecurrenceDateTimesBuilder{}
}

func (b *RecurrenceDateTimesBuilder) WithValueDataType(valueType ValueDataType) *RecurrenceDateTimesBuilder {
	b.valueType = valueType
	return b
}

func (b *RecurrenceDateTimesBuilder) WithTimeZoneIdentifier(tzid TimeZoneIdentifier) *RecurrenceDateTimesBuilder {
	b.tzid = tzid
	return b
}

func (b *RecurrenceDateTimesBuilder) BuildDates(values ...time.Time) (*RecurrenceDateTimes, error) {
	if err := checkDateTimeValueType("rdate", b.valueType, b.tzid); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, invalid("rdate", "at least one recurrence date is required")
	}
	ts := make([]time.Time, len(values))
	copy(ts, values)
	return &RecurrenceDateTimes{valueType: b.valueType, tzid: b.tzid, dates: ts}, nil
}

// BuildPeriods always emits VALUE=PERIOD, whatever value type was set.
func (b *RecurrenceDateTimesBuilder) BuildPeriods(values ...Period) (*RecurrenceDateTimes, error) {
	if err := checkDateTimeValueType("rdate", b.valueType, b.tzid, ValueDataTypePeriod); err != nil {
		return nil, err
	}
	if b.valueType == ValueDataTypeDate {
		return nil, invalid("rdate", "rdate periods cannot have a DATE value type")
	}
	if len(values) == 0 {
		return nil, invalid("rdate", "at least one recurrence period is required")
	}
	if slices.ContainsFunc(values, Period.IsZero) {
		return nil, invalid("rdate", "rdate periods must be built with NewPeriod or NewPeriodOfDuration")
	}
	ps := make([]Period, len(values))
	copy(ps, values)
	return &RecurrenceDateTimes{valueType: ValueDataTypePeriod, tzid: b.tzid, periods: ps}, nil
}

func (p *RecurrenceDateTimes) Name() PropertyName {
	return PropertyRdate
}

func (p *RecurrenceDateTimes) Formatted() string {
	if p.valueType == ValueDataTypePeriod {
		values := make([]string, len(p.periods))
		for i, period := range p.periods {
			values[i] = period.format(p.tzid)
		}
		return formatProperty(PropertyRdate, strings.Join(values, ","), p.valueType, p.tzid)
	}
	return formatProperty(PropertyRdate, formatDateTimes(p.dates, p.valueType, p.tzid), p.valueType, p.tzid)
}

// RecurrenceRule is the RRULE property (section 3.8.5.3).
type RecurrenceRule struct {
	value string
}

type RecurrenceRuleBuilder struct{}

func NewRecurrenceRuleBuilder() *RecurrenceRuleBuilder {
	return &RecurrenceRuleBuilder{}
}

func (b *RecurrenceRuleBuilder) Build(value Recurrence) (*RecurrenceRule, error) {
	if err := value.Validate(); err != nil {
		return nil, err
	}
	return &RecurrenceRule{value: value.String()}, nil
}

// BuildRaw accepts a rule already in its textual form, such as
// "FREQ=WEEKLY;BYDAY=MO,WE". An "RRULE:" prefix is stripped.
func (b *RecurrenceRuleBuilder) BuildRaw(value string) (*RecurrenceRule, error) {
	value = strings.TrimPrefix(strings.TrimSpace(value), string(PropertyRrule)+":")
	if value == "" {
		return nil, invalid("rrule", "recurrence rule must not be blank")
	}
	if _, err := rrule.StrToROption(value); err != nil {
		return nil, invalid("rrule", "recurrence rule %q is not valid: %v", value, err)
	}
	return &RecurrenceRule{value: value}, nil
}

func (p *RecurrenceRule) Value() string {
	return p.value
}

func (p *RecurrenceRule) Name() PropertyName {
	return PropertyRrule
}

func (p *RecurrenceRule) Formatted() string {
	return formatProperty(PropertyRrule, p.value)
}
