package ics

import (
	"net/url"
	"time"

	"golang.org/x/text/language"
)

// Parameter is a property parameter. Formatted returns the ";NAME=VALUE"
// fragment, or the empty string when the parameter is not set (its zero
// value).
type Parameter interface {
	Formatted() string
}

var (
	_ Parameter = AlternateTextRepresentation{}
	_ Parameter = CommonName("")
	_ Parameter = CalendarUserType("")
	_ Parameter = Delegators(nil)
	_ Parameter = Delegatees(nil)
	_ Parameter = DirectoryEntryReference{}
	_ Parameter = InlineEncoding("")
	_ Parameter = FormatType("")
	_ Parameter = FreeBusyTimeType("")
	_ Parameter = Language{}
	_ Parameter = Membership(nil)
	_ Parameter = ParticipationStatus("")
	_ Parameter = RecurrenceIdentifierRange("")
	_ Parameter = AlarmTriggerRelationship("")
	_ Parameter = RelationshipType("")
	_ Parameter = ParticipationRole("")
	_ Parameter = RSVP("")
	_ Parameter = SentBy{}
	_ Parameter = TimeZoneIdentifier{}
	_ Parameter = ValueDataType("")
)

// cloneURL returns a copy of u so later changes by the caller do not leak
// into a built value.
func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return &c
}

func cloneURLs(us []*url.URL) []*url.URL {
	if us == nil {
		return nil
	}
	c := make([]*url.URL, len(us))
	for i, u := range us {
		c[i] = cloneURL(u)
	}
	return c
}

func formatParameter(name ParameterName, value string) string {
	if value == "" {
		return ""
	}
	return ";" + string(name) + "=" + value
}

// AlternateTextRepresentation is the ALTREP parameter (section 3.2.1).
type AlternateTextRepresentation struct {
	URI *url.URL
}

func NewAlternateTextRepresentation(uri *url.URL) AlternateTextRepresentation {
	return AlternateTextRepresentation{URI: uri}
}

func (p AlternateTextRepresentation) clone() AlternateTextRepresentation {
	return AlternateTextRepresentation{URI: cloneURL(p.URI)}
}

func (p AlternateTextRepresentation) Formatted() string {
	if p.URI == nil {
		return ""
	}
	return formatParameter(ParameterAltrep, quotedParamValue(p.URI.String()))
}

// CommonName is the CN parameter (section 3.2.2).
type CommonName string

func (p CommonName) Formatted() string {
	return formatParameter(ParameterCn, paramValue(string(p)))
}

// CalendarUserType enumerates the CUTYPE parameter values (section 3.2.3).
type CalendarUserType string

const (
	// CalendarUserTypeIndividual identifies an individual calendar user.
	CalendarUserTypeIndividual CalendarUserType = "INDIVIDUAL"
	// CalendarUserTypeGroup identifies a group of users.
	CalendarUserTypeGroup CalendarUserType = "GROUP"
	// CalendarUserTypeResource identifies a physical resource.
	CalendarUserTypeResource CalendarUserType = "RESOURCE"
	// CalendarUserTypeRoom identifies a room resource.
	CalendarUserTypeRoom CalendarUserType = "ROOM"
	// CalendarUserTypeUnknown is used when the user type is unknown.
	CalendarUserTypeUnknown CalendarUserType = "UNKNOWN"
)

func (p CalendarUserType) Formatted() string {
	return formatParameter(ParameterCutype, paramValue(string(p)))
}

// Delegators is the DELEGATED-FROM parameter (section 3.2.4).
type Delegators []*url.URL

func (p Delegators) clone() Delegators {
	return cloneURLs(p)
}

func (p Delegators) Formatted() string {
	return formatParameter(ParameterDelegatedFrom, quotedURIs(p))
}

// Delegatees is the DELEGATED-TO parameter (section 3.2.5).
type Delegatees []*url.URL

func (p Delegatees) clone() Delegatees {
	return cloneURLs(p)
}

func (p Delegatees) Formatted() string {
	return formatParameter(ParameterDelegatedTo, quotedURIs(p))
}

// DirectoryEntryReference is the DIR parameter (section 3.2.6).
type DirectoryEntryReference struct {
	URI *url.URL
}

func NewDirectoryEntryReference(uri *url.URL) DirectoryEntryReference {
	return DirectoryEntryReference{URI: uri}
}

func (p DirectoryEntryReference) clone() DirectoryEntryReference {
	return DirectoryEntryReference{URI: cloneURL(p.URI)}
}

func (p DirectoryEntryReference) Formatted() string {
	if p.URI == nil {
		return ""
	}
	return formatParameter(ParameterDir, quotedParamValue(p.URI.String()))
}

// InlineEncoding is the ENCODING parameter (section 3.2.7).
type InlineEncoding string

const (
	InlineEncoding8Bit   InlineEncoding = "8BIT"
	InlineEncodingBase64 InlineEncoding = "BASE64"
)

func (p InlineEncoding) Formatted() string {
	return formatParameter(ParameterEncoding, paramValue(string(p)))
}

// FormatType is the FMTTYPE parameter (section 3.2.8), a media type such as
// "application/pdf".
type FormatType string

func (p FormatType) Formatted() string {
	return formatParameter(ParameterFmttype, paramValue(string(p)))
}

// FreeBusyTimeType enumerates the FBTYPE parameter values (section 3.2.9).
type FreeBusyTimeType string

const (
	// FreeBusyTimeTypeFree indicates the time is free.
	FreeBusyTimeTypeFree FreeBusyTimeType = "FREE"
	// FreeBusyTimeTypeBusy indicates the time is busy.
	FreeBusyTimeTypeBusy FreeBusyTimeType = "BUSY"
	// FreeBusyTimeTypeBusyUnavailable indicates the time is busy and unavailable.
	FreeBusyTimeTypeBusyUnavailable FreeBusyTimeType = "BUSY-UNAVAILABLE"
	// FreeBusyTimeTypeBusyTentative indicates tentative busy time.
	FreeBusyTimeTypeBusyTentative FreeBusyTimeType = "BUSY-TENTATIVE"
)

func (p FreeBusyTimeType) Formatted() string {
	return formatParameter(ParameterFbtype, paramValue(string(p)))
}

// Language is the LANGUAGE parameter (section 3.2.10), a BCP 47 tag.
type Language struct {
	tag language.Tag
	set bool
}

// LanguageOf wraps an already parsed tag.
func LanguageOf(tag language.Tag) Language {
	return Language{tag: tag, set: true}
}

// ParseLanguage parses s as a BCP 47 language tag.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Language{}, invalid("language", "language tag %q is not valid: %v", s, err)
	}
	return LanguageOf(tag), nil
}

func (p Language) Tag() language.Tag {
	return p.tag
}

func (p Language) Formatted() string {
	if !p.set {
		return ""
	}
	return formatParameter(ParameterLanguage, paramValue(p.tag.String()))
}

// Membership is the MEMBER parameter (section 3.2.11).
type Membership []*url.URL

func (p Membership) clone() Membership {
	return cloneURLs(p)
}

func (p Membership) Formatted() string {
	return formatParameter(ParameterMember, quotedURIs(p))
}

// ParticipationStatus enumerates the PARTSTAT parameter values (section 3.2.12).
type ParticipationStatus string

const (
	// ParticipationStatusNeedsAction indicates a pending reply.
	ParticipationStatusNeedsAction ParticipationStatus = "NEEDS-ACTION"
	// ParticipationStatusAccepted indicates acceptance.
	ParticipationStatusAccepted ParticipationStatus = "ACCEPTED"
	// ParticipationStatusDeclined indicates the invitation was declined.
	ParticipationStatusDeclined ParticipationStatus = "DECLINED"
	// ParticipationStatusTentative indicates a tentative reply.
	ParticipationStatusTentative ParticipationStatus = "TENTATIVE"
	// ParticipationStatusDelegated indicates delegation to another party.
	ParticipationStatusDelegated ParticipationStatus = "DELEGATED"
	// ParticipationStatusCompleted indicates the task has been completed.
	ParticipationStatusCompleted ParticipationStatus = "COMPLETED"
	// ParticipationStatusInProcess indicates work is in progress.
	ParticipationStatusInProcess ParticipationStatus = "IN-PROCESS"
)

func (p ParticipationStatus) Formatted() string {
	return formatParameter(ParameterParticipationStatus, paramValue(string(p)))
}

// RecurrenceIdentifierRange is the RANGE parameter (section 3.2.13).
type RecurrenceIdentifierRange string

const (
	RangeThisAndFuture RecurrenceIdentifierRange = "THISANDFUTURE"
)

func (p RecurrenceIdentifierRange) Formatted() string {
	return formatParameter(ParameterRange, paramValue(string(p)))
}

// AlarmTriggerRelationship is the RELATED parameter (section 3.2.14).
type AlarmTriggerRelationship string

const (
	RelatedStart AlarmTriggerRelationship = "START" // default
	RelatedEnd   AlarmTriggerRelationship = "END"
)

func (p AlarmTriggerRelationship) Formatted() string {
	return formatParameter(ParameterRelated, paramValue(string(p)))
}

// RelationshipType enumerates RELTYPE parameter values (section 3.2.15).
type RelationshipType string

const (
	RelationshipTypeParent  RelationshipType = "PARENT" // default
	RelationshipTypeChild   RelationshipType = "CHILD"
	RelationshipTypeSibling RelationshipType = "SIBLING"
)

func (p RelationshipType) Formatted() string {
	return formatParameter(ParameterReltype, paramValue(string(p)))
}

// ParticipationRole enumerates the ROLE parameter values (section 3.2.16).
type ParticipationRole string

const (
	// ParticipationRoleChair designates the chair of the meeting.
	ParticipationRoleChair ParticipationRole = "CHAIR"
	// ParticipationRoleReqParticipant indicates a required participant.
	ParticipationRoleReqParticipant ParticipationRole = "REQ-PARTICIPANT"
	// ParticipationRoleOptParticipant indicates an optional participant.
	ParticipationRoleOptParticipant ParticipationRole = "OPT-PARTICIPANT"
	// ParticipationRoleNonParticipant indicates a non-participant observer.
	ParticipationRoleNonParticipant ParticipationRole = "NON-PARTICIPANT"
)

func (p ParticipationRole) Formatted() string {
	return formatParameter(ParameterRole, paramValue(string(p)))
}

// RSVP is the RSVP parameter (section 3.2.17).
type RSVP string

const (
	RSVPTrue  RSVP = "TRUE"
	RSVPFalse RSVP = "FALSE"
)

// RSVPExpected converts b to an RSVP parameter.
func RSVPExpected(b bool) RSVP {
	if b {
		return RSVPTrue
	}
	return RSVPFalse
}

func (p RSVP) Formatted() string {
	return formatParameter(ParameterRsvp, paramValue(string(p)))
}

// SentBy is the SENT-BY parameter (section 3.2.18).
type SentBy struct {
	URI *url.URL
}

func NewSentBy(uri *url.URL) SentBy {
	return SentBy{URI: uri}
}

func (p SentBy) clone() SentBy {
	return SentBy{URI: cloneURL(p.URI)}
}

func (p SentBy) Formatted() string {
	if p.URI == nil {
		return ""
	}
	return formatParameter(ParameterSentBy, quotedParamValue(p.URI.String()))
}

// TimeZoneIdentifier is the TZID parameter (section 3.2.19). Its location
// also drives the local rendering of the property's date-time values.
type TimeZoneIdentifier struct {
	Location *time.Location
}

// TimeZoneIdentifierFor wraps loc. The location name is used as the TZID
// value, so it should come from time.LoadLocation rather than time.Local.
func TimeZoneIdentifierFor(loc *time.Location) TimeZoneIdentifier {
	return TimeZoneIdentifier{Location: loc}
}

// LoadTimeZoneIdentifier loads the IANA zone name from the time zone
// database.
func LoadTimeZoneIdentifier(name string) (TimeZoneIdentifier, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return TimeZoneIdentifier{}, invalid("tzid", "unknown time zone %q: %v", name, err)
	}
	return TimeZoneIdentifier{Location: loc}, nil
}

func (p TimeZoneIdentifier) Name() string {
	if p.Location == nil {
		return ""
	}
	return p.Location.String()
}

func (p TimeZoneIdentifier) Formatted() string {
	return formatParameter(ParameterTzid, paramValue(p.Name()))
}

// ValueDataType lists the VALUE parameter types described in RFC 5545 section 3.3.
type ValueDataType string

const (
	// ValueDataTypeBinary represents binary data (section 3.3.1).
	ValueDataTypeBinary ValueDataType = "BINARY"
	// ValueDataTypeBoolean represents boolean values (section 3.3.2).
	ValueDataTypeBoolean ValueDataType = "BOOLEAN"
	// ValueDataTypeCalAddress represents a calendar address (section 3.3.3).
	ValueDataTypeCalAddress ValueDataType = "CAL-ADDRESS"
	// ValueDataTypeDate represents a DATE value (section 3.3.4).
	ValueDataTypeDate ValueDataType = "DATE"
	// ValueDataTypeDateTime represents a DATE-TIME (section 3.3.5).
	ValueDataTypeDateTime ValueDataType = "DATE-TIME"
	// ValueDataTypeDuration represents a DURATION (section 3.3.6).
	ValueDataTypeDuration ValueDataType = "DURATION"
	// ValueDataTypeFloat represents floating point values (section 3.3.7).
	ValueDataTypeFloat ValueDataType = "FLOAT"
	// ValueDataTypeInteger represents integer values (section 3.3.8).
	ValueDataTypeInteger ValueDataType = "INTEGER"
	// ValueDataTypePeriod represents a PERIOD value (section 3.3.9).
	ValueDataTypePeriod ValueDataType = "PERIOD"
	// ValueDataTypeRecur represents a RECUR value (section 3.3.10).
	ValueDataTypeRecur ValueDataType = "RECUR"
	// ValueDataTypeText represents a TEXT value (section 3.3.11).
	ValueDataTypeText ValueDataType = "TEXT"
	// ValueDataTypeTime represents a TIME value (section 3.3.12).
	ValueDataTypeTime ValueDataType = "TIME"
	// ValueDataTypeUri represents a URI (section 3.3.13).
	ValueDataTypeUri ValueDataType = "URI"
	// ValueDataTypeUtcOffset represents UTC-OFFSET (section 3.3.14).
	ValueDataTypeUtcOffset ValueDataType = "UTC-OFFSET"
)

func (p ValueDataType) Formatted() string {
	return formatParameter(ParameterValue, paramValue(string(p)))
}
