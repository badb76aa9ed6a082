package ics

import (
	"slices"
)

// Event is a VEVENT (RFC 5545 section 3.6.1). Properties are emitted in
// the order DTSTAMP, UID, DTSTART, CLASS, CREATED, DESCRIPTION, GEO,
// LAST-MODIFIED, LOCATION, ORGANIZER, PRIORITY, SEQUENCE, STATUS, SUMMARY,
// TRANSP, URL, RECURRENCE-ID, RRULE, DTEND, DURATION, followed by ATTACH,
// ATTENDEE, CATEGORIES, COMMENT, CONTACT, EXDATE, REQUEST-STATUS,
// RELATED-TO, RESOURCES, RDATE, the X- properties and finally the alarms.
type Event struct {
	dateTimeStamp    *DateTimeStamp
	uniqueIdentifier *UniqueIdentifier
	dateTimeStart    *DateTimeStart
	classification   *AccessClassification
	created          *DateTimeCreated
	description      *Description
	geo              *GeographicPosition
	lastModified     *LastModified
	location         *Location
	organiser        *Organiser
	priority         *Priority
	sequence         *SequenceNumber
	status           *Status
	summary          *Summary
	transparency     *TimeTransparency
	url              *UniformResourceLocator
	recurrenceId     *RecurrenceId
	recurrenceRule   *RecurrenceRule
	dateTimeEnd      *DateTimeEnd
	duration         *DurationProperty
	attachments      []*Attachment
	attendees        []*Attendee
	categories       []*Categories
	comments         []*Comment
	contacts         []*Contact
	exceptionDates   []*ExceptionDateTimes
	requestStatuses  []*RequestStatus
	relatedTo        []*RelatedTo
	resources        []*Resources
	recurrenceDates  []*RecurrenceDateTimes
	experimental     []*ExperimentalProperty
	alarms           []Alarm
}

type EventBuilder struct {
	e Event
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{}
}

func (b *EventBuilder) WithDateTimeStamp(p *DateTimeStamp) *EventBuilder {
	b.e.dateTimeStamp = p
	return b
}

func (b *EventBuilder) WithUniqueIdentifier(p *UniqueIdentifier) *EventBuilder {
	b.e.uniqueIdentifier = p
	return b
}

func (b *EventBuilder) WithDateTimeStart(p *DateTimeStart) *EventBuilder {
	b.e.dateTimeStart = p
	return b
}

func (b *EventBuilder) WithClassification(p *AccessClassification) *EventBuilder {
	b.e.classification = p
	return b
}

func (b *EventBuilder) WithDateTimeCreated(p *DateTimeCreated) *EventBuilder {
	b.e.created = p
	return b
}

func (b *EventBuilder) WithDescription(p *Description) *EventBuilder {
	b.e.description = p
	return b
}

func (b *EventBuilder) WithGeographicPosition(p *GeographicPosition) *EventBuilder {
	b.e.geo = p
	return b
}

func (b *EventBuilder) WithLastModified(p *LastModified) *EventBuilder {
	b.e.lastModified = p
	return b
}

func (b *EventBuilder) WithLocation(p *Location) *EventBuilder {
	b.e.location = p
	return b
}

func (b *EventBuilder) WithOrganiser(p *Organiser) *EventBuilder {
	b.e.organiser = p
	return b
}

func (b *EventBuilder) WithPriority(p *Priority) *EventBuilder {
	b.e.priority = p
	return b
}

func (b *EventBuilder) WithSequenceNumber(p *SequenceNumber) *EventBuilder {
	b.e.sequence = p
	return b
}

func (b *EventBuilder) WithStatus(p *Status) *EventBuilder {
	b.e.status = p
	return b
}

func (b *EventBuilder) WithSummary(p *Summary) *EventBuilder {
	b.e.summary = p
	return b
}

func (b *EventBuilder) WithTimeTransparency(p *TimeTransparency) *EventBuilder {
	b.e.transparency = p
	return b
}

func (b *EventBuilder) WithUniformResourceLocator(p *UniformResourceLocator) *EventBuilder {
	b.e.url = p
	return b
}

func (b *EventBuilder) WithRecurrenceId(p *RecurrenceId) *EventBuilder {
	b.e.recurrenceId = p
	return b
}

func (b *EventBuilder) WithRecurrenceRule(p *RecurrenceRule) *EventBuilder {
	b.e.recurrenceRule = p
	return b
}

func (b *EventBuilder) WithDateTimeEnd(p *DateTimeEnd) *EventBuilder {
	b.e.dateTimeEnd = p
	return b
}

func (b *EventBuilder) WithDuration(p *DurationProperty) *EventBuilder {
	b.e.duration = p
	return b
}

func (b *EventBuilder) AddAttachments(ps ...*Attachment) *EventBuilder {
	b.e.attachments = append(b.e.attachments, ps...)
	return b
}

func (b *EventBuilder) AddAttendees(ps ...*Attendee) *EventBuilder {
	b.e.attendees = append(b.e.attendees, ps...)
	return b
}

func (b *EventBuilder) AddCategories(ps ...*Categories) *EventBuilder {
	b.e.categories = append(b.e.categories, ps...)
	return b
}

func (b *EventBuilder) AddComments(ps ...*Comment) *EventBuilder {
	b.e.comments = append(b.e.comments, ps...)
	return b
}

func (b *EventBuilder) AddContacts(ps ...*Contact) *EventBuilder {
	b.e.contacts = append(b.e.contacts, ps...)
	return b
}

func (b *EventBuilder) AddExceptionDateTimes(ps ...*ExceptionDateTimes) *EventBuilder {
	b.e.exceptionDates = append(b.e.exceptionDates, ps...)
	return b
}

func (b *EventBuilder) AddRequestStatuses(ps ...*RequestStatus) *EventBuilder {
	b.e.requestStatuses = append(b.e.requestStatuses, ps...)
	return b
}

func (b *EventBuilder) AddRelatedTo(ps ...*RelatedTo) *EventBuilder {
	b.e.relatedTo = append(b.e.relatedTo, ps...)
	return b
}

func (b *EventBuilder) AddResources(ps ...*Resources) *EventBuilder {
	b.e.resources = append(b.e.resources, ps...)
	return b
}

func (b *EventBuilder) AddRecurrenceDateTimes(ps ...*RecurrenceDateTimes) *EventBuilder {
	b.e.recurrenceDates = append(b.e.recurrenceDates, ps...)
	return b
}

func (b *EventBuilder) AddExperimentalProperties(ps ...*ExperimentalProperty) *EventBuilder {
	b.e.experimental = append(b.e.experimental, ps...)
	return b
}

func (b *EventBuilder) AddAlarms(alarms ...Alarm) *EventBuilder {
	b.e.alarms = append(b.e.alarms, alarms...)
	return b
}

// Build validates the event. DTSTAMP and UID are required, and DTEND and
// DURATION are mutually exclusive.
func (b *EventBuilder) Build() (*Event, error) {
	e := b.e
	if err := requireField(ComponentVEvent, "dtstamp", e.dateTimeStamp != nil); err != nil {
		return nil, err
	}
	if err := requireField(ComponentVEvent, "uid", e.uniqueIdentifier != nil); err != nil {
		return nil, err
	}
	var end *zonedDateTime
	if e.dateTimeEnd != nil {
		end = &e.dateTimeEnd.zonedDateTime
	}
	if err := checkEndBound("dtend", e.dateTimeStart, end, e.duration); err != nil {
		return nil, err
	}
	if err := checkStatus(ComponentVEvent, e.status, ObjectStatusTentative, ObjectStatusConfirmed, ObjectStatusCancelled); err != nil {
		return nil, err
	}
	e.attachments = slices.Clone(e.attachments)
	e.attendees = slices.Clone(e.attendees)
	e.categories = slices.Clone(e.categories)
	e.comments = slices.Clone(e.comments)
	e.contacts = slices.Clone(e.contacts)
	e.exceptionDates = slices.Clone(e.exceptionDates)
	e.requestStatuses = slices.Clone(e.requestStatuses)
	e.relatedTo = slices.Clone(e.relatedTo)
	e.resources = slices.Clone(e.resources)
	e.recurrenceDates = slices.Clone(e.recurrenceDates)
	e.experimental = slices.Clone(e.experimental)
	e.alarms = compactComponents(e.alarms)
	return &e, nil
}

func (e *Event) UniqueIdentifier() *UniqueIdentifier {
	return e.uniqueIdentifier
}

func (e *Event) Alarms() []Alarm {
	return slices.Clone(e.alarms)
}

func (e *Event) Type() ComponentType {
	return ComponentVEvent
}

func (e *Event) Formatted() string {
	return formatComponent(e)
}

func (e *Event) calendarComponent() {}

func (e *Event) compose(c *composer) {
	c.begin(ComponentVEvent)
	optional(c, e.dateTimeStamp)
	optional(c, e.uniqueIdentifier)
	optional(c, e.dateTimeStart)
	optional(c, e.classification)
	optional(c, e.created)
	optional(c, e.description)
	optional(c, e.geo)
	optional(c, e.lastModified)
	optional(c, e.location)
	optional(c, e.organiser)
	optional(c, e.priority)
	optional(c, e.sequence)
	optional(c, e.status)
	optional(c, e.summary)
	optional(c, e.transparency)
	optional(c, e.url)
	optional(c, e.recurrenceId)
	optional(c, e.recurrenceRule)
	optional(c, e.dateTimeEnd)
	optional(c, e.duration)
	repeated(c, e.attachments)
	repeated(c, e.attendees)
	repeated(c, e.categories)
	repeated(c, e.comments)
	repeated(c, e.contacts)
	repeated(c, e.exceptionDates)
	repeated(c, e.requestStatuses)
	repeated(c, e.relatedTo)
	repeated(c, e.resources)
	repeated(c, e.recurrenceDates)
	repeated(c, e.experimental)
	nested(c, e.alarms)
	c.end(ComponentVEvent)
}
