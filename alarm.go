package ics

import (
	"slices"
)

// Alarm is a VALARM (RFC 5545 section 3.6.6). Each action has its own type:
// *AudioAlarm, *DisplayAlarm or *EmailAlarm.
type Alarm interface {
	Component
	Action() AlarmAction
}

// alarmTiming holds TRIGGER and the optional DURATION/REPEAT pair shared by
// every alarm.
type alarmTiming struct {
	trigger  *Trigger
	duration *DurationProperty
	repeat   *RepeatCount
}

func (t alarmTiming) validate() error {
	if err := requireField(ComponentVAlarm, "trigger", t.trigger != nil); err != nil {
		return err
	}
	if (t.duration == nil) != (t.repeat == nil) {
		return invalid("repeat", "alarm duration and repeat must both be set or both be absent")
	}
	return nil
}

func composeAlarmHead(c *composer, action AlarmAction, t alarmTiming) {
	c.begin(ComponentVAlarm)
	c.line((&Action{value: action}).Formatted())
	optional(c, t.trigger)
}

func composeAlarmRepeat(c *composer, t alarmTiming) {
	optional(c, t.duration)
	optional(c, t.repeat)
}

// AudioAlarm plays a sound, optionally the one given by a single ATTACH.
// Properties are emitted in the order ACTION, TRIGGER, DURATION, REPEAT,
// ATTACH, X-.
type AudioAlarm struct {
	alarmTiming
	attachment   *Attachment
	experimental []*ExperimentalProperty
}

type AudioAlarmBuilder struct {
	a AudioAlarm
}

func NewAudioAlarmBuilder() *AudioAlarmBuilder {
	return &AudioAlarmBuilder{}
}

func (b *AudioAlarmBuilder) WithTrigger(p *Trigger) *AudioAlarmBuilder {
	b.a.trigger = p
	return b
}

func (b *AudioAlarmBuilder) WithDuration(p *DurationProperty) *AudioAlarmBuilder {
	b.a.duration = p
	return b
}

func (b *AudioAlarmBuilder) WithRepeatCount(p *RepeatCount) *AudioAlarmBuilder {
	b.a.repeat = p
	return b
}

func (b *AudioAlarmBuilder) WithAttachment(p *Attachment) *AudioAlarmBuilder {
	b.a.attachment = p
	return b
}

func (b *AudioAlarmBuilder) AddExperimentalProperties(ps ...*ExperimentalProperty) *AudioAlarmBuilder {
	b.a.experimental = append(b.a.experimental, ps...)
	return b
}

func (b *AudioAlarmBuilder) Build() (*AudioAlarm, error) {
	a := b.a
	if err := a.validate(); err != nil {
		return nil, err
	}
	a.experimental = slices.Clone(a.experimental)
	return &a, nil
}

func (a *AudioAlarm) Action() AlarmAction {
	return AlarmActionAudio
}

func (a *AudioAlarm) Type() ComponentType {
	return ComponentVAlarm
}

func (a *AudioAlarm) Formatted() string {
	return formatComponent(a)
}

func (a *AudioAlarm) compose(c *composer) {
	composeAlarmHead(c, AlarmActionAudio, a.alarmTiming)
	composeAlarmRepeat(c, a.alarmTiming)
	optional(c, a.attachment)
	repeated(c, a.experimental)
	c.end(ComponentVAlarm)
}

// DisplayAlarm shows its DESCRIPTION. Properties are emitted in the order
// ACTION, TRIGGER, DESCRIPTION, DURATION, REPEAT, X-.
type DisplayAlarm struct {
	alarmTiming
	description  *Description
	experimental []*ExperimentalProperty
}

type DisplayAlarmBuilder struct {
	a DisplayAlarm
}

func NewDisplayAlarmBuilder() *DisplayAlarmBuilder {
	return &DisplayAlarmBuilder{}
}

func (b *DisplayAlarmBuilder) WithTrigger(p *Trigger) *DisplayAlarmBuilder {
	b.a.trigger = p
	return b
}

func (b *DisplayAlarmBuilder) WithDescription(p *Description) *DisplayAlarmBuilder {
	b.a.description = p
	return b
}

func (b *DisplayAlarmBuilder) WithDuration(p *DurationProperty) *DisplayAlarmBuilder {
	b.a.duration = p
	return b
}

func (b *DisplayAlarmBuilder) WithRepeatCount(p *RepeatCount) *DisplayAlarmBuilder {
	b.a.repeat = p
	return b
}

func (b *DisplayAlarmBuilder) AddExperimentalProperties(ps ...*ExperimentalProperty) *DisplayAlarmBuilder {
	b.a.experimental = append(b.a.experimental, ps...)
	return b
}

func (b *DisplayAlarmBuilder) Build() (*DisplayAlarm, error) {
	a := b.a
	if err := a.validate(); err != nil {
		return nil, err
	}
	if err := requireField(ComponentVAlarm, "description", a.description != nil); err != nil {
		return nil, err
	}
	a.experimental = slices.Clone(a.experimental)
	return &a, nil
}

func (a *DisplayAlarm) Action() AlarmAction {
	return AlarmActionDisplay
}

func (a *DisplayAlarm) Type() ComponentType {
	return ComponentVAlarm
}

func (a *DisplayAlarm) Formatted() string {
	return formatComponent(a)
}

func (a *DisplayAlarm) compose(c *composer) {
	composeAlarmHead(c, AlarmActionDisplay, a.alarmTiming)
	optional(c, a.description)
	composeAlarmRepeat(c, a.alarmTiming)
	repeated(c, a.experimental)
	c.end(ComponentVAlarm)
}

// EmailAlarm sends a message with SUMMARY as subject and DESCRIPTION as
// body to every ATTENDEE. Properties are emitted in the order ACTION,
// TRIGGER, DESCRIPTION, SUMMARY, DURATION, REPEAT, ATTENDEE, ATTACH, X-.
type EmailAlarm struct {
	alarmTiming
	description  *Description
	summary      *Summary
	attendees    []*Attendee
	attachments  []*Attachment
	experimental []*ExperimentalProperty
}

type EmailAlarmBuilder struct {
	a EmailAlarm
}

func NewEmailAlarmBuilder() *EmailAlarmBuilder {
	return &EmailAlarmBuilder{}
}

func (b *EmailAlarmBuilder) WithTrigger(p *Trigger) *EmailAlarmBuilder {
	b.a.trigger = p
	return b
}

func (b *EmailAlarmBuilder) WithDescription(p *Description) *EmailAlarmBuilder {
	b.a.description = p
	return b
}

func (b *EmailAlarmBuilder) WithSummary(p *Summary) *EmailAlarmBuilder {
	b.a.summary = p
	return b
}

func (b *EmailAlarmBuilder) WithDuration(p *DurationProperty) *EmailAlarmBuilder {
	b.a.duration = p
	return b
}

func (b *EmailAlarmBuilder) WithRepeatCount(p *RepeatCount) *EmailAlarmBuilder {
	b.a.repeat = p
	return b
}

func (b *EmailAlarmBuilder) AddAttendees(ps ...*Attendee) *EmailAlarmBuilder {
	b.a.attendees = append(b.a.attendees, ps...)
	return b
}

func (b *EmailAlarmBuilder) AddAttachments(ps ...*Attachment) *EmailAlarmBuilder {
	b.a.attachments = append(b.a.attachments, ps...)
	return b
}

func (b *EmailAlarmBuilder) AddExperimentalProperties(ps ...*ExperimentalProperty) *EmailAlarmBuilder {
	b.a.experimental = append(b.a.experimental, ps...)
	return b
}

func (b *EmailAlarmBuilder) Build() (*EmailAlarm, error) {
	a := b.a
	if err := a.validate(); err != nil {
		return nil, err
	}
	if err := requireField(ComponentVAlarm, "description", a.description != nil); err != nil {
		return nil, err
	}
	if err := requireField(ComponentVAlarm, "summary", a.summary != nil); err != nil {
		return nil, err
	}
	a.attendees = slices.DeleteFunc(slices.Clone(a.attendees), func(p *Attendee) bool { return p == nil })
	if len(a.attendees) == 0 {
		return nil, invalid("attendee", "%s with action %s requires at least one attendee", ComponentVAlarm, AlarmActionEmail)
	}
	a.attachments = slices.Clone(a.attachments)
	a.experimental = slices.Clone(a.experimental)
	return &a, nil
}

func (a *EmailAlarm) Action() AlarmAction {
	return AlarmActionEmail
}

func (a *EmailAlarm) Type() ComponentType {
	return ComponentVAlarm
}

func (a *EmailAlarm) Formatted() string {
	return formatComponent(a)
}

func (a *EmailAlarm) compose(c *composer) {
	composeAlarmHead(c, AlarmActionEmail, a.alarmTiming)
	optional(c, a.description)
	optional(c, a.summary)
	composeAlarmRepeat(c, a.alarmTiming)
	repeated(c, a.attendees)
	repeated(c, a.attachments)
	repeated(c, a.experimental)
	c.end(ComponentVAlarm)
}
