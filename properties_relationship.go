package ics

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Attendee is the ATTENDEE property (section 3.8.4.1). Parameters are
// emitted in the order CUTYPE, MEMBER, ROLE, PARTSTAT, RSVP, DELEGATED-TO,
// DELEGATED-FROM, SENT-BY, CN, DIR, LANGUAGE.
type Attendee struct {
	calendarUserType    CalendarUserType
	membership          Membership
	role                ParticipationRole
	participationStatus ParticipationStatus
	rsvp                RSVP
	delegatees          Delegatees
	delegators          Delegators
	sentBy              SentBy
	commonName          CommonName
	directory           DirectoryEntryReference
	language            Language
	value               *url.URL
}

type AttendeeBuilder struct {
	calendarUserType    CalendarUserType
	membership          Membership
	role                ParticipationRole
	participationStatus ParticipationStatus
	rsvp                RSVP
	delegatees          Delegatees
	delegators          Delegators
	sentBy              SentBy
	commonName          CommonName
	directory           DirectoryEntryReference
	language            Language
}

func NewAttendeeBuilder() *AttendeeBuilder {
	return &AttendeeBuilder{}
}

func (b *AttendeeBuilder) WithCalendarUserType(cutype CalendarUserType) *AttendeeBuilder {
	b.calendarUserType = cutype
	return b
}

func (b *AttendeeBuilder) WithMembership(membership Membership) *AttendeeBuilder {
	b.membership = membership.clone()
	return b
}

func (b *AttendeeBuilder) WithParticipationRole(role ParticipationRole) *AttendeeBuilder {
	b.role = role
	return b
}

func (b *AttendeeBuilder) WithParticipationStatus(partstat ParticipationStatus) *AttendeeBuilder {
	b.participationStatus = partstat
	return b
}

func (b *AttendeeBuilder) WithRSVP(rsvp RSVP) *AttendeeBuilder {
	b.rsvp = rsvp
	return b
}

func (b *AttendeeBuilder) WithDelegatees(delegatees Delegatees) *AttendeeBuilder {
	b.delegatees = delegatees.clone()
	return b
}

func (b *AttendeeBuilder) WithDelegators(delegators Delegators) *AttendeeBuilder {
	b.delegators = delegators.clone()
	return b
}

func (b *AttendeeBuilder) WithSentBy(sentBy SentBy) *AttendeeBuilder {
	b.sentBy = sentBy.clone()
	return b
}

func (b *AttendeeBuilder) WithCommonName(cn CommonName) *AttendeeBuilder {
	b.commonName = cn
	return b
}

func (b *AttendeeBuilder) WithDirectoryEntryReference(dir DirectoryEntryReference) *AttendeeBuilder {
	b.directory = dir.clone()
	return b
}

func (b *AttendeeBuilder) WithLanguage(language Language) *AttendeeBuilder {
	b.language = language
	return b
}

func (b *AttendeeBuilder) Build(address *url.URL) (*Attendee, error) {
	if address == nil {
		return nil, invalid("attendee", "attendee address is required")
	}
	return &Attendee{
		calendarUserType:    b.calendarUserType,
		membership:          b.membership,
		role:                b.role,
		participationStatus: b.participationStatus,
		rsvp:                b.rsvp,
		delegatees:          b.delegatees,
		delegators:          b.delegators,
		sentBy:              b.sentBy,
		commonName:          b.commonName,
		directory:           b.directory,
		language:            b.language,
		value:               cloneURL(address),
	}, nil
}

// Email returns the address without its mailto scheme.
func (p *Attendee) Email() string {
	if strings.EqualFold(p.value.Scheme, "mailto") {
		return p.value.Opaque
	}
	return p.value.String()
}

func (p *Attendee) Name() PropertyName {
	return PropertyAttendee
}

func (p *Attendee) Formatted() string {
	return formatProperty(PropertyAttendee, p.value.String(),
		p.calendarUserType,
		p.membership,
		p.role,
		p.participationStatus,
		p.rsvp,
		p.delegatees,
		p.delegators,
		p.sentBy,
		p.commonName,
		p.directory,
		p.language,
	)
}

// Contact is the CONTACT property (section 3.8.4.2).
type Contact struct {
	textProperty
}

type ContactBuilder struct {
	altRep   AlternateTextRepresentation
	language Language
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{}
}

func (b *ContactBuilder) WithAlternateTextRepresentation(altRep AlternateTextRepresentation) *ContactBuilder {
	b.altRep = altRep.clone()
	return b
}

func (b *ContactBuilder) WithLanguage(language Language) *ContactBuilder {
	b.language = language
	return b
}

func (b *ContactBuilder) Build(value string) *Contact {
	return &Contact{textProperty{altRep: b.altRep, language: b.language, value: value}}
}

func (p *Contact) Name() PropertyName {
	return PropertyContact
}

func (p *Contact) Formatted() string {
	return p.format(PropertyContact)
}

// Organiser is the ORGANIZER property (section 3.8.4.3). Parameters are
// emitted in the order CN, DIR, SENT-BY, LANGUAGE.
type Organiser struct {
	commonName CommonName
	directory  DirectoryEntryReference
	sentBy     SentBy
	language   Language
	value      *url.URL
}

type OrganiserBuilder struct {
	commonName CommonName
	directory  DirectoryEntryReference
	sentBy     SentBy
	language   Language
}

func NewOrganiserBuilder() *OrganiserBuilder {
	return &OrganiserBuilder{}
}

func (b *OrganiserBuilder) WithCommonName(cn CommonName) *OrganiserBuilder {
	b.commonName = cn
	return b
}

func (b *OrganiserBuilder) WithDirectoryEntryReference(dir DirectoryEntryReference) *OrganiserBuilder {
	b.directory = dir.clone()
	return b
}

func (b *OrganiserBuilder) WithSentBy(sentBy SentBy) *OrganiserBuilder {
	b.sentBy = sentBy.clone()
	return b
}

func (b *OrganiserBuilder) WithLanguage(language Language) *OrganiserBuilder {
	b.language = language
	return b
}

// Build fails when address has a scheme other than mailto.
func (b *OrganiserBuilder) Build(address *url.URL) (*Organiser, error) {
	if address == nil {
		return nil, invalid("organizer", "organizer address is required")
	}
	if address.Scheme != "" && !strings.EqualFold(address.Scheme, "mailto") {
		return nil, invalid("organizer", "organizer address must use the mailto scheme, got %q", address.Scheme)
	}
	return &Organiser{
		commonName: b.commonName,
		directory:  b.directory,
		sentBy:     b.sentBy,
		language:   b.language,
		value:      cloneURL(address),
	}, nil
}

func (p *Organiser) Name() PropertyName {
	return PropertyOrganizer
}

func (p *Organiser) Formatted() string {
	return formatProperty(PropertyOrganizer, p.value.String(), p.commonName, p.directory, p.sentBy, p.language)
}

// RecurrenceId is the RECURRENCE-ID property (section 3.8.4.4). Parameters
// are emitted in the order VALUE, TZID, RANGE.
type RecurrenceId struct {
	zonedDateTime
	rangeParam RecurrenceIdentifierRange
}

type RecurrenceIdBuilder struct {
	valueType  ValueDataType
	tzid       TimeZoneIdentifier
	rangeParam RecurrenceIdentifierRange
}

func NewRecurrenceIdBuilder() *RecurrenceIdBuilder {
	return &RecurrenceIdBuilder{}
}

func (b *RecurrenceIdBuilder) WithValueDataType(valueType ValueDataType) *RecurrenceIdBuilder {
	b.valueType = valueType
	return b
}

func (b *RecurrenceIdBuilder) WithTimeZoneIdentifier(tzid TimeZoneIdentifier) *RecurrenceIdBuilder {
	b.tzid = tzid
	return b
}

func (b *RecurrenceIdBuilder) WithRange(r RecurrenceIdentifierRange) *RecurrenceIdBuilder {
	b.rangeParam = r
	return b
}

func (b *RecurrenceIdBuilder) Build(value time.Time) (*RecurrenceId, error) {
	z, err := newZonedDateTime("recurrenceId", b.valueType, b.tzid, value)
	if err != nil {
		return nil, err
	}
	return &RecurrenceId{zonedDateTime: z, rangeParam: b.rangeParam}, nil
}

func (p *RecurrenceId) Name() PropertyName {
	return PropertyRecurrenceId
}

func (p *RecurrenceId) Formatted() string {
	return p.format(PropertyRecurrenceId, p.rangeParam)
}

// RelatedTo is the RELATED-TO property (section 3.8.4.5).
type RelatedTo struct {
	relationshipType RelationshipType
	value            string
}

type RelatedToBuilder struct {
	relationshipType RelationshipType
}

func NewRelatedToBuilder() *RelatedToBuilder {
	return &RelatedToBuilder{}
}

func (b *RelatedToBuilder) WithRelationshipType(reltype RelationshipType) *RelatedToBuilder {
	b.relationshipType = reltype
	return b
}

// Build takes the UID of the related component.
func (b *RelatedToBuilder) Build(uid string) (*RelatedTo, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, invalid("relatedTo", "related-to must name a non-blank unique identifier")
	}
	return &RelatedTo{relationshipType: b.relationshipType, value: uid}, nil
}

func (p *RelatedTo) Name() PropertyName {
	return PropertyRelatedTo
}

func (p *RelatedTo) Formatted() string {
	return formatProperty(PropertyRelatedTo, ToText(p.value), p.relationshipType)
}

// UniformResourceLocator is the URL property (section 3.8.4.6).
type UniformResourceLocator struct {
	value *url.URL
}

type UniformResourceLocatorBuilder struct{}

func NewUniformResourceLocatorBuilder() *UniformResourceLocatorBuilder {
	return &UniformResourceLocatorBuilder{}
}

func (b *UniformResourceLocatorBuilder) Build(value *url.URL) (*UniformResourceLocator, error) {
	if value == nil {
		return nil, invalid("url", "url is required")
	}
	return &UniformResourceLocator{value: cloneURL(value)}, nil
}

func (p *UniformResourceLocator) Name() PropertyName {
	return PropertyUrl
}

func (p *UniformResourceLocator) Formatted() string {
	return formatProperty(PropertyUrl, p.value.String())
}

// UniqueIdentifier is the UID property (section 3.8.4.7).
type UniqueIdentifier struct {
	value string
}

type UniqueIdentifierBuilder struct{}

func NewUniqueIdentifierBuilder() *UniqueIdentifierBuilder {
	return &UniqueIdentifierBuilder{}
}

func (b *UniqueIdentifierBuilder) Build(value string) (*UniqueIdentifier, error) {
	if strings.TrimSpace(value) == "" {
		return nil, invalid("uid", "unique identifier must not be blank")
	}
	return &UniqueIdentifier{value: value}, nil
}

// BuildRandom returns a random (version 4) UUID identifier, the form
// recommended by RFC 7986 section 5.3.
func (b *UniqueIdentifierBuilder) BuildRandom() *UniqueIdentifier {
	return &UniqueIdentifier{value: uuid.NewString()}
}

func (p *UniqueIdentifier) Value() string {
	return p.value
}

func (p *UniqueIdentifier) Name() PropertyName {
	return PropertyUid
}

func (p *UniqueIdentifier) Formatted() string {
	return formatProperty(PropertyUid, ToText(p.value))
}
