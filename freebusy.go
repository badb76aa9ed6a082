package ics

import (
	"slices"
)

// FreeBusy is a VFREEBUSY (RFC 5545 section 3.6.4). Properties are emitted
// in the order DTSTAMP, UID, CONTACT, DTSTART, DTEND, ORGANIZER, URL,
// then ATTENDEE, COMMENT, FREEBUSY, REQUEST-STATUS and the X- properties,
// each exactly once.
type FreeBusy struct {
	dateTimeStamp    *DateTimeStamp
	uniqueIdentifier *UniqueIdentifier
	contact          *Contact
	dateTimeStart    *DateTimeStart
	dateTimeEnd      *DateTimeEnd
	organiser        *Organiser
	url              *UniformResourceLocator
	attendees        []*Attendee
	comments         []*Comment
	freeBusyTimes    []*FreeBusyTime
	requestStatuses  []*RequestStatus
	experimental     []*ExperimentalProperty
}

type FreeBusyBuilder struct {
	f FreeBusy
}

func NewFreeBusyBuilder() *FreeBusyBuilder {
	return &FreeBusyBuilder{}
}

func (b *FreeBusyBuilder) WithDateTimeStamp(p *DateTimeStamp) *FreeBusyBuilder {
	b.f.dateTimeStamp = p
	return b
}

func (b *FreeBusyBuilder) WithUniqueIdentifier(p *UniqueIdentifier) *FreeBusyBuilder {
	b.f.uniqueIdentifier = p
	return b
}

func (b *FreeBusyBuilder) WithContact(p *Contact) *FreeBusyBuilder {
	b.f.contact = p
	return b
}

// WithDateTimeStart sets the start of the covered range, which must be a
// UTC date-time.
func (b *FreeBusyBuilder) WithDateTimeStart(p *DateTimeStart) *FreeBusyBuilder {
	b.f.dateTimeStart = p
	return b
}

// WithDateTimeEnd sets the end of the covered range, which must be a UTC
// date-time.
func (b *FreeBusyBuilder) WithDateTimeEnd(p *DateTimeEnd) *FreeBusyBuilder {
	b.f.dateTimeEnd = p
	return b
}

func (b *FreeBusyBuilder) WithOrganiser(p *Organiser) *FreeBusyBuilder {
	b.f.organiser = p
	return b
}

func (b *FreeBusyBuilder) WithUniformResourceLocator(p *UniformResourceLocator) *FreeBusyBuilder {
	b.f.url = p
	return b
}

func (b *FreeBusyBuilder) AddAttendees(ps ...*Attendee) *FreeBusyBuilder {
	b.f.attendees = append(b.f.attendees, ps...)
	return b
}

func (b *FreeBusyBuilder) AddComments(ps ...*Comment) *FreeBusyBuilder {
	b.f.comments = append(b.f.comments, ps...)
	return b
}

func (b *FreeBusyBuilder) AddFreeBusyTimes(ps ...*FreeBusyTime) *FreeBusyBuilder {
	b.f.freeBusyTimes = append(b.f.freeBusyTimes, ps...)
	return b
}

func (b *FreeBusyBuilder) AddRequestStatuses(ps ...*RequestStatus) *FreeBusyBuilder {
	b.f.requestStatuses = append(b.f.requestStatuses, ps...)
	return b
}

func (b *FreeBusyBuilder) AddExperimentalProperties(ps ...*ExperimentalProperty) *FreeBusyBuilder {
	b.f.experimental = append(b.f.experimental, ps...)
	return b
}

func (b *FreeBusyBuilder) Build() (*FreeBusy, error) {
	f := b.f
	if err := requireField(ComponentVFreeBusy, "dtstamp", f.dateTimeStamp != nil); err != nil {
		return nil, err
	}
	if err := requireField(ComponentVFreeBusy, "uid", f.uniqueIdentifier != nil); err != nil {
		return nil, err
	}
	if f.dateTimeStart != nil && !isUTCDateTime(f.dateTimeStart.zonedDateTime) {
		return nil, invalid("dtstart", "%s dtstart must be a UTC date-time", ComponentVFreeBusy)
	}
	var end *zonedDateTime
	if f.dateTimeEnd != nil {
		if !isUTCDateTime(f.dateTimeEnd.zonedDateTime) {
			return nil, invalid("dtend", "%s dtend must be a UTC date-time", ComponentVFreeBusy)
		}
		end = &f.dateTimeEnd.zonedDateTime
	}
	if err := checkEndBound("dtend", f.dateTimeStart, end, nil); err != nil {
		return nil, err
	}
	f.attendees = slices.Clone(f.attendees)
	f.comments = slices.Clone(f.comments)
	f.freeBusyTimes = slices.Clone(f.freeBusyTimes)
	f.requestStatuses = slices.Clone(f.requestStatuses)
	f.experimental = slices.Clone(f.experimental)
	return &f, nil
}

func isUTCDateTime(z zonedDateTime) bool {
	return !z.IsDate() && z.tzid.Location == nil
}

func (f *FreeBusy) UniqueIdentifier() *UniqueIdentifier {
	return f.uniqueIdentifier
}

func (f *FreeBusy) Type() ComponentType {
	return ComponentVFreeBusy
}

func (f *FreeBusy) Formatted() string {
	return formatComponent(f)
}

func (f *FreeBusy) calendarComponent() {}

func (f *FreeBusy) compose(c *composer) {
	c.begin(ComponentVFreeBusy)
	optional(c, f.dateTimeStamp)
	optional(c, f.uniqueIdentifier)
	optional(c, f.contact)
	optional(c, f.dateTimeStart)
	optional(c, f.dateTimeEnd)
	optional(c, f.organiser)
	optional(c, f.url)
	repeated(c, f.attendees)
	repeated(c, f.comments)
	repeated(c, f.freeBusyTimes)
	repeated(c, f.requestStatuses)
	repeated(c, f.experimental)
	c.end(ComponentVFreeBusy)
}
