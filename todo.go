package ics

import (
	"slices"
)

// Todo is a VTODO (RFC 5545 section 3.6.2). Properties are emitted in the
// order DTSTAMP, UID, CLASS, COMPLETED, CREATED, DESCRIPTION, DTSTART, GEO,
// LAST-MODIFIED, LOCATION, ORGANIZER, PERCENT-COMPLETE, PRIORITY,
// RECURRENCE-ID, SEQUENCE, STATUS, SUMMARY, URL, RRULE, DUE, DURATION,
// followed by the repeatable properties in the same order as Event.
type Todo struct {
	dateTimeStamp    *DateTimeStamp
	uniqueIdentifier *UniqueIdentifier
	classification   *AccessClassification
	completed        *DateTimeCompleted
	created          *DateTimeCreated
	description      *Description
	dateTimeStart    *DateTimeStart
	geo              *GeographicPosition
	lastModified     *LastModified
	location         *Location
	organiser        *Organiser
	percentComplete  *PercentComplete
	priority         *Priority
	recurrenceId     *RecurrenceId
	sequence         *SequenceNumber
	status           *Status
	summary          *Summary
	url              *UniformResourceLocator
	recurrenceRule   *RecurrenceRule
	due              *DateTimeDue
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

type TodoBuilder struct {
	t Todo
}

func NewTodoBuilder() *TodoBuilder {
	return &TodoBuilder{}
}

func (b *TodoBuilder) WithDateTimeStamp(p *DateTimeStamp) *TodoBuilder {
	b.t.dateTimeStamp = p
	return b
}

func (b *TodoBuilder) WithUniqueIdentifier(p *UniqueIdentifier) *TodoBuilder {
	b.t.uniqueIdentifier = p
	return b
}

func (b *TodoBuilder) WithClassification(p *AccessClassification) *TodoBuilder {
	b.t.classification = p
	return b
}

func (b *TodoBuilder) WithDateTimeCompleted(p *DateTimeCompleted) *TodoBuilder {
	b.t.completed = p
	return b
}

func (b *TodoBuilder) WithDateTimeCreated(p *DateTimeCreated) *TodoBuilder {
	b.t.created = p
	return b
}

func (b *TodoBuilder) WithDescription(p *Description) *TodoBuilder {
	b.t.description = p
	return b
}

func (b *TodoBuilder) WithDateTimeStart(p *DateTimeStart) *TodoBuilder {
	b.t.dateTimeStart = p
	return b
}

func (b *TodoBuilder) WithGeographicPosition(p *GeographicPosition) *TodoBuilder {
	b.t.geo = p
	return b
}

func (b *TodoBuilder) WithLastModified(p *LastModified) *TodoBuilder {
	b.t.lastModified = p
	return b
}

func (b *TodoBuilder) WithLocation(p *Location) *TodoBuilder {
	b.t.location = p
	return b
}

func (b *TodoBuilder) WithOrganiser(p *Organiser) *TodoBuilder {
	b.t.organiser = p
	return b
}

func (b *TodoBuilder) WithPercentComplete(p *PercentComplete) *TodoBuilder {
	b.t.percentComplete = p
	return b
}

func (b *TodoBuilder) WithPriority(p *Priority) *TodoBuilder {
	b.t.priority = p
	return b
}

func (b *TodoBuilder) WithRecurrenceId(p *RecurrenceId) *TodoBuilder {
	b.t.recurrenceId = p
	return b
}

func (b *TodoBuilder) WithSequenceNumber(p *SequenceNumber) *TodoBuilder {
	b.t.sequence = p
	return b
}

func (b *TodoBuilder) WithStatus(p *Status) *TodoBuilder {
	b.t.status = p
	return b
}

func (b *TodoBuilder) WithSummary(p *Summary) *TodoBuilder {
	b.t.summary = p
	return b
}

func (b *TodoBuilder) WithUniformResourceLocator(p *UniformResourceLocator) *TodoBuilder {
	b.t.url = p
	return b
}

func (b *TodoBuilder) WithRecurrenceRule(p *RecurrenceRule) *TodoBuilder {
	b.t.recurrenceRule = p
	return b
}

func (b *TodoBuilder) WithDateTimeDue(p *DateTimeDue) *TodoBuilder {
	b.t.due = p
	return b
}

func (b *TodoBuilder) WithDuration(p *DurationProperty) *TodoBuilder {
	b.t.duration = p
	return b
}

func (b *TodoBuilder) AddAttachments(ps ...*Attachment) *TodoBuilder {
	b.t.attachments = append(b.t.attachments, ps...)
	return b
}

func (b *TodoBuilder) AddAttendees(ps ...*Attendee) *TodoBuilder {
	b.t.attendees = append(b.t.attendees, ps...)
	return b
}

func (b *TodoBuilder) AddCategories(ps ...*Categories) *TodoBuilder {
	b.t.categories = append(b.t.categories, ps...)
	return b
}

func (b *TodoBuilder) AddComments(ps ...*Comment) *TodoBuilder {
	b.t.comments = append(b.t.comments, ps...)
	return b
}

func (b *TodoBuilder) AddContacts(ps ...*Contact) *TodoBuilder {
	b.t.contacts = append(b.t.contacts, ps...)
	return b
}

func (b *TodoBuilder) AddExceptionDateTimes(ps ...*ExceptionDateTimes) *TodoBuilder {
	b.t.exceptionDates = append(b.t.exceptionDates, ps...)
	return b
}

func (b *TodoBuilder) AddRequestStatuses(ps ...*RequestStatus) *TodoBuilder {
	b.t.requestStatuses = append(b.t.requestStatuses, ps...)
	return b
}

func (b *TodoBuilder) AddRelatedTo(ps ...*RelatedTo) *TodoBuilder {
	b.t.relatedTo = append(b.t.relatedTo, ps...)
	return b
}

func (b *TodoBuilder) AddResources(ps ...*Resources) *TodoBuilder {
	b.t.resources = append(b.t.resources, ps...)
	return b
}

func (b *TodoBuilder) AddRecurrenceDateTimes(ps ...*RecurrenceDateTimes) *TodoBuilder {
	b.t.recurrenceDates = append(b.t.recurrenceDates, ps...)
	return b
}

func (b *TodoBuilder) AddExperimentalProperties(ps ...*ExperimentalProperty) *TodoBuilder {
	b.t.experimental = append(b.t.experimental, ps...)
	return b
}

func (b *TodoBuilder) AddAlarms(alarms ...Alarm) *TodoBuilder {
	b.t.alarms = append(b.t.alarms, alarms...)
	return b
}

// Build validates the to-do. DTSTAMP and UID are required, DUE and
// DURATION are mutually exclusive, and DURATION needs DTSTART.
func (b *TodoBuilder) Build() (*Todo, error) {
	t := b.t
	if err := requireField(ComponentVTodo, "dtstamp", t.dateTimeStamp != nil); err != nil {
		return nil, err
	}
	if err := requireField(ComponentVTodo, "uid", t.uniqueIdentifier != nil); err != nil {
		return nil, err
	}
	var due *zonedDateTime
	if t.due != nil {
		due = &t.due.zonedDateTime
	}
	if err := checkEndBound("due", t.dateTimeStart, due, t.duration); err != nil {
		return nil, err
	}
	if t.duration != nil && t.dateTimeStart == nil {
		return nil, invalid("duration", "%s with a duration requires dtstart", ComponentVTodo)
	}
	if err := checkStatus(ComponentVTodo, t.status, ObjectStatusNeedsAction, ObjectStatusCompleted, ObjectStatusInProcess, ObjectStatusCancelled); err != nil {
		return nil, err
	}
	t.attachments = slices.Clone(t.attachments)
	t.attendees = slices.Clone(t.attendees)
	t.categories = slices.Clone(t.categories)
	t.comments = slices.Clone(t.comments)
	t.contacts = slices.Clone(t.contacts)
	t.exceptionDates = slices.Clone(t.exceptionDates)
	t.requestStatuses = slices.Clone(t.requestStatuses)
	t.relatedTo = slices.Clone(t.relatedTo)
	t.resources = slices.Clone(t.resources)
	t.recurrenceDates = slices.Clone(t.recurrenceDates)
	t.experimental = slices.Clone(t.experimental)
	t.alarms = compactComponents(t.alarms)
	return &t, nil
}

func (t *Todo) UniqueIdentifier() *UniqueIdentifier {
	return t.uniqueIdentifier
}

func (t *Todo) Alarms() []Alarm {
	return slices.Clone(t.alarms)
}

func (t *Todo) Type() ComponentType {
	return ComponentVTodo
}

func (t *Todo) Formatted() string {
	return formatComponent(t)
}

func (t *Todo) calendarComponent() {}

func (t *Todo) compose(c *composer) {
	c.begin(ComponentVTodo)
	optional(c, t.dateTimeStamp)
	optional(c, t.uniqueIdentifier)
	optional(c, t.classification)
	optional(c, t.completed)
	optional(c, t.created)
	optional(c, t.description)
	optional(c, t.dateTimeStart)
	optional(c, t.geo)
	optional(c, t.lastModified)
	optional(c, t.location)
	optional(c, t.organiser)
	optional(c, t.percentComplete)
	optional(c, t.priority)
	optional(c, t.recurrenceId)
	optional(c, t.sequence)
	optional(c, t.status)
	optional(c, t.summary)
	optional(c, t.url)
	optional(c, t.recurrenceRule)
	optional(c, t.due)
	optional(c, t.duration)
	repeated(c, t.attachments)
	repeated(c, t.attendees)
	repeated(c, t.categories)
	repeated(c, t.comments)
	repeated(c, t.contacts)
	repeated(c, t.exceptionDates)
	repeated(c, t.requestStatuses)
	repeated(c, t.relatedTo)
	repeated(c, t.resources)
	repeated(c, t.recurrenceDates)
	repeated(c, t.experimental)
	nested(c, t.alarms)
	c.end(ComponentVTodo)
}
