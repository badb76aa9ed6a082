package ics

import (
	"slices"
)

// Journal is a VJOURNAL (RFC 5545 section 3.6.3). Unlike the other
// components it may carry several DESCRIPTION properties.
type Journal struct {
	dateTimeStamp    *DateTimeStamp
	uniqueIdentifier *UniqueIdentifier
	classification   *AccessClassification
	created          *DateTimeCreated
	dateTimeStart    *DateTimeStart
	lastModified     *LastModified
	organiser        *Organiser
	recurrenceId     *RecurrenceId
	sequence         *SequenceNumber
	status           *Status
	summary          *Summary
	url              *UniformResourceLocator
	recurrenceRule   *RecurrenceRule
	attachments      []*Attachment
	attendees        []*Attendee
	categories       []*Categories
	comments         []*Comment
	contacts         []*Contact
	descriptions     []*Description
	exceptionDates   []*ExceptionDateTimes
	relatedTo        []*RelatedTo
	recurrenceDates  []*RecurrenceDateTimes
	requestStatuses  []*RequestStatus
	experimental     []*ExperimentalProperty
}

type JournalBuilder struct {
	j Journal
}

func NewJournalBuilder() *JournalBuilder {
	return &JournalBuilder{}
}

func (b *JournalBuilder) WithDateTimeStamp(p *DateTimeStamp) *JournalBuilder {
	b.j.dateTimeStamp = p
	return b
}

func (b *JournalBuilder) WithUniqueIdentifier(p *UniqueIdentifier) *JournalBuilder {
	b.j.uniqueIdentifier = p
	return b
}

func (b *JournalBuilder) WithClassification(p *AccessClassification) *JournalBuilder {
	b.j.classification = p
	return b
}

func (b *JournalBuilder) WithDateTimeCreated(p *DateTimeCreated) *JournalBuilder {
	b.j.created = p
	return b
}

func (b *JournalBuilder) WithDateTimeStart(p *DateTimeStart) *JournalBuilder {
	b.j.dateTimeStart = p
	return b
}

func (b *JournalBuilder) WithLastModified(p *LastModified) *JournalBuilder {
	b.j.lastModified = p
	return b
}

func (b *JournalBuilder) WithOrganiser(p *Organiser) *JournalBuilder {
	b.j.organiser = p
	return b
}

func (b *JournalBuilder) WithRecurrenceId(p *RecurrenceId) *JournalBuilder {
	b.j.recurrenceId = p
	return b
}

func (b *JournalBuilder) WithSequenceNumber(p *SequenceNumber) *JournalBuilder {
	b.j.sequence = p
	return b
}

func (b *JournalBuilder) WithStatus(p *Status) *JournalBuilder {
	b.j.status = p
	return b
}

func (b *JournalBuilder) WithSummary(p *Summary) *JournalBuilder {
	b.j.summary = p
	return b
}

func (b *JournalBuilder) WithUniformResourceLocator(p *UniformResourceLocator) *JournalBuilder {
	b.j.url = p
	return b
}

func (b *JournalBuilder) WithRecurrenceRule(p *RecurrenceRule) *JournalBuilder {
	b.j.recurrenceRule = p
	return b
}

func (b *JournalBuilder) AddAttachments(ps ...*Attachment) *JournalBuilder {
	b.j.attachments = append(b.j.attachments, ps...)
	return b
}

func (b *JournalBuilder) AddAttendees(ps ...*Attendee) *JournalBuilder {
	b.j.attendees = append(b.j.attendees, ps...)
	return b
}

func (b *JournalBuilder) AddCategories(ps ...*Categories) *JournalBuilder {
	b.j.categories = append(b.j.categories, ps...)
	return b
}

func (b *JournalBuilder) AddComments(ps ...*Comment) *JournalBuilder {
	b.j.comments = append(b.j.comments, ps...)
	return b
}

func (b *JournalBuilder) AddContacts(ps ...*Contact) *JournalBuilder {
	b.j.contacts = append(b.j.contacts, ps...)
	return b
}

func (b *JournalBuilder) AddDescriptions(ps ...*Description) *JournalBuilder {
	b.j.descriptions = append(b.j.descriptions, ps...)
	return b
}

func (b *JournalBuilder) AddExceptionDateTimes(ps ...*ExceptionDateTimes) *JournalBuilder {
	b.j.exceptionDates = append(b.j.exceptionDates, ps...)
	return b
}

func (b *JournalBuilder) AddRelatedTo(ps ...*RelatedTo) *JournalBuilder {
	b.j.relatedTo = append(b.j.relatedTo, ps...)
	return b
}

func (b *JournalBuilder) AddRecurrenceDateTimes(ps ...*RecurrenceDateTimes) *JournalBuilder {
	b.j.recurrenceDates = append(b.j.recurrenceDates, ps...)
	return b
}

func (b *JournalBuilder) AddRequestStatuses(ps ...*RequestStatus) *JournalBuilder {
	b.j.requestStatuses = append(b.j.requestStatuses, ps...)
	return b
}

func (b *JournalBuilder) AddExperimentalProperties(ps ...*ExperimentalProperty) *JournalBuilder {
	b.j.experimental = append(b.j.experimental, ps...)
	return b
}

func (b *JournalBuilder) Build() (*Journal, error) {
	j := b.j
	if err := requireField(ComponentVJournal, "dtstamp", j.dateTimeStamp != nil); err != nil {
		return nil, err
	}
	if err := requireField(ComponentVJournal, "uid", j.uniqueIdentifier != nil); err != nil {
		return nil, err
	}
	if err := checkStatus(ComponentVJournal, j.status, ObjectStatusDraft, ObjectStatusFinal, ObjectStatusCancelled); err != nil {
		return nil, err
	}
	j.attachments = slices.Clone(j.attachments)
	j.attendees = slices.Clone(j.attendees)
	j.categories = slices.Clone(j.categories)
	j.comments = slices.Clone(j.comments)
	j.contacts = slices.Clone(j.contacts)
	j.descriptions = slices.Clone(j.descriptions)
	j.exceptionDates = slices.Clone(j.exceptionDates)
	j.relatedTo = slices.Clone(j.relatedTo)
	j.recurrenceDates = slices.Clone(j.recurrenceDates)
	j.requestStatuses = slices.Clone(j.requestStatuses)
	j.experimental = slices.Clone(j.experimental)
	return &j, nil
}

func (j *Journal) UniqueIdentifier() *UniqueIdentifier {
	return j.uniqueIdentifier
}

func (j *Journal) Type() ComponentType {
	return ComponentVJournal
}

func (j *Journal) Formatted() string {
	return formatComponent(j)
}

func (j *Journal) calendarComponent() {}

func (j *Journal) compose(c *composer) {
	c.begin(ComponentVJournal)
	optional(c, j.dateTimeStamp)
	optional(c, j.uniqueIdentifier)
	optional(c, j.classification)
	optional(c, j.created)
	optional(c, j.dateTimeStart)
	optional(c, j.lastModified)
	optional(c, j.organiser)
	optional(c, j.recurrenceId)
	optional(c, j.sequence)
	optional(c, j.status)
	optional(c, j.summary)
	optional(c, j.url)
	optional(c, j.recurrenceRule)
	repeated(c, j.attachments)
	repeated(c, j.attendees)
	repeated(c, j.categories)
	repeated(c, j.comments)
	repeated(c, j.contacts)
	repeated(c, j.descriptions)
	repeated(c, j.exceptionDates)
	repeated(c, j.relatedTo)
	repeated(c, j.recurrenceDates)
	repeated(c, j.requestStatuses)
	repeated(c, j.experimental)
	c.end(ComponentVJournal)
}
