package ics

import (
	"strconv"
	"time"
)

// Action is the ACTION property of a VALARM (section 3.8.6.1).
type Action struct {
	value AlarmAction
}

type ActionBuilder struct{}

func NewActionBuilder() *ActionBuilder {
	return &ActionBuilder{}
}

func (b *ActionBuilder) Build(value AlarmAction) (*Action, error) {
	switch value {
	case AlarmActionAudio, AlarmActionDisplay, AlarmActionEmail:
		return &Action{value: value}, nil
	}
	return nil, invalid("action", "unknown alarm action %q", string(value))
}

func (p *Action) Value() AlarmAction {
	return p.value
}

func (p *Action) Name() PropertyName {
	return PropertyAction
}

func (p *Action) Formatted() string {
	return formatProperty(PropertyAction, string(p.value))
}

// RepeatCount is the REPEAT property (section 3.8.6.2).
type RepeatCount struct {
	value int
}

type RepeatCountBuilder struct{}

func NewRepeatCountBuilder() *RepeatCountBuilder {
	return &RepeatCountBuilder{}
}

func (b *RepeatCountBuilder) Build(value int) (*RepeatCount, error) {
	if value < 0 {
		return nil, invalid("repeat", "Repeat Count is a non-negative integer, got %d", value)
	}
	return &RepeatCount{value: value}, nil
}

func (p *RepeatCount) Name() PropertyName {
	return PropertyRepeat
}

func (p *RepeatCount) Formatted() string {
	return formatProperty(PropertyRepeat, strconv.Itoa(p.value))
}

// Trigger is the TRIGGER property (section 3.8.6.3). A relative trigger is
// a signed duration from the start or end of the owning component; an
// absolute trigger is a UTC date-time.
type Trigger struct {
	related  AlarmTriggerRelationship
	relative Duration
	absolute time.Time
	isAbs    bool
}

type TriggerBuilder struct {
	related AlarmTriggerRelationship
}

func NewTriggerBuilder() *TriggerBuilder {
	return &TriggerBuilder{}
}

// WithRelated anchors a relative trigger. It is ignored by BuildAbsolute.
func (b *TriggerBuilder) WithRelated(related AlarmTriggerRelationship) *TriggerBuilder {
	b.related = related
	return b
}

func (b *TriggerBuilder) BuildRelative(offset Duration) (*Trigger, error) {
	if err := offset.Validate(); err != nil {
		return nil, err
	}
	return &Trigger{related: b.related, relative: offset}, nil
}

func (b *TriggerBuilder) BuildAbsolute(at time.Time) *Trigger {
	return &Trigger{absolute: at, isAbs: true}
}

// IsAbsolute reports whether the trigger was built from a date-time.
func (p *Trigger) IsAbsolute() bool {
	return p.isAbs
}

func (p *Trigger) Name() PropertyName {
	return PropertyTrigger
}

func (p *Trigger) Formatted() string {
	if p.isAbs {
		return formatProperty(PropertyTrigger, formatUTC(p.absolute), ValueDataTypeDateTime)
	}
	return formatProperty(PropertyTrigger, p.relative.String(), p.related)
}
