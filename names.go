package ics

// ComponentType enumerates the component names defined in RFC 5545 section 3.6.
type ComponentType string

const (
	// ComponentVCalendar is the VCALENDAR container component.
	ComponentVCalendar ComponentType = "VCALENDAR"
	// ComponentVEvent represents a VEVENT component.
	ComponentVEvent ComponentType = "VEVENT"
	// ComponentVTodo represents a VTODO component.
	ComponentVTodo ComponentType = "VTODO"
	// ComponentVJournal represents a VJOURNAL component.
	ComponentVJournal ComponentType = "VJOURNAL"
	// ComponentVFreeBusy represents a VFREEBUSY component.
	ComponentVFreeBusy ComponentType = "VFREEBUSY"
	// ComponentVTimezone represents a VTIMEZONE component.
	ComponentVTimezone ComponentType = "VTIMEZONE"
	// ComponentVAlarm represents a VALARM subcomponent.
	ComponentVAlarm ComponentType = "VALARM"
	// ComponentStandard represents a STANDARD timezone subcomponent.
	ComponentStandard ComponentType = "STANDARD"
	// ComponentDaylight represents a DAYLIGHT timezone subcomponent.
	ComponentDaylight ComponentType = "DAYLIGHT"
)

// PropertyName is the textual name of an iCalendar property as defined in
// RFC 5545 section 3.7 and 3.8.
type PropertyName string

const (
	// PropertyCalscale corresponds to CALSCALE (section 3.7.1).
	PropertyCalscale PropertyName = "CALSCALE"
	// PropertyMethod corresponds to METHOD (section 3.7.2).
	PropertyMethod PropertyName = "METHOD"
	// PropertyProductId corresponds to PRODID (section 3.7.3).
	PropertyProductId PropertyName = "PRODID"
	// PropertyVersion corresponds to VERSION (section 3.7.4).
	PropertyVersion PropertyName = "VERSION"

	PropertyAttach          PropertyName = "ATTACH"
	PropertyCategories      PropertyName = "CATEGORIES"
	PropertyClass           PropertyName = "CLASS"
	PropertyComment         PropertyName = "COMMENT"
	PropertyDescription     PropertyName = "DESCRIPTION"
	PropertyGeo             PropertyName = "GEO"
	PropertyLocation        PropertyName = "LOCATION"
	PropertyPercentComplete PropertyName = "PERCENT-COMPLETE"
	PropertyPriority        PropertyName = "PRIORITY"
	PropertyResources       PropertyName = "RESOURCES"
	PropertyStatus          PropertyName = "STATUS"
	PropertySummary         PropertyName = "SUMMARY"

	PropertyCompleted PropertyName = "COMPLETED"
	PropertyDtend     PropertyName = "DTEND"
	PropertyDue       PropertyName = "DUE"
	PropertyDtstart   PropertyName = "DTSTART"
	PropertyDuration  PropertyName = "DURATION"
	PropertyFreebusy  PropertyName = "FREEBUSY"
	PropertyTransp    PropertyName = "TRANSP"

	PropertyTzid         PropertyName = "TZID"
	PropertyTzname       PropertyName = "TZNAME"
	PropertyTzoffsetfrom PropertyName = "TZOFFSETFROM"
	PropertyTzoffsetto   PropertyName = "TZOFFSETTO"
	PropertyTzurl        PropertyName = "TZURL"

	PropertyAttendee     PropertyName = "ATTENDEE"
	PropertyContact      PropertyName = "CONTACT"
	PropertyOrganizer    PropertyName = "ORGANIZER"
	PropertyRecurrenceId PropertyName = "RECURRENCE-ID"
	PropertyRelatedTo    PropertyName = "RELATED-TO"
	PropertyUrl          PropertyName = "URL"
	PropertyUid          PropertyName = "UID"

	PropertyExdate PropertyName = "EXDATE"
	PropertyRdate  PropertyName = "RDATE"
	PropertyRrule  PropertyName = "RRULE"

	PropertyAction  PropertyName = "ACTION"
	PropertyRepeat  PropertyName = "REPEAT"
	PropertyTrigger PropertyName = "TRIGGER"

	PropertyCreated       PropertyName = "CREATED"
	PropertyDtstamp       PropertyName = "DTSTAMP"
	PropertyLastModified  PropertyName = "LAST-MODIFIED"
	PropertySequence      PropertyName = "SEQUENCE"
	PropertyRequestStatus PropertyName = "REQUEST-STATUS"
)

// ParameterName is the textual name of a property parameter (RFC 5545
// section 3.2).
type ParameterName string

const (
	// ParameterAltrep references an alternate text representation (section 3.2.1).
	ParameterAltrep ParameterName = "ALTREP"
	// ParameterCn provides a common name (section 3.2.2).
	ParameterCn ParameterName = "CN"
	// ParameterCutype defines the calendar user type (section 3.2.3).
	ParameterCutype ParameterName = "CUTYPE"
	// ParameterDelegatedFrom lists participants the request was delegated from (section 3.2.4).
	ParameterDelegatedFrom ParameterName = "DELEGATED-FROM"
	// ParameterDelegatedTo lists participants the request was delegated to (section 3.2.5).
	ParameterDelegatedTo ParameterName = "DELEGATED-TO"
	// ParameterDir gives a reference to directory information (section 3.2.6).
	ParameterDir ParameterName = "DIR"
	// ParameterEncoding defines inline attachment encoding (section 3.2.7).
	ParameterEncoding ParameterName = "ENCODING"
	// ParameterFmttype is the content type for an attachment (section 3.2.8).
	ParameterFmttype ParameterName = "FMTTYPE"
	// ParameterFbtype specifies free/busy time type (section 3.2.9).
	ParameterFbtype ParameterName = "FBTYPE"
	// ParameterLanguage indicates the language for text values (section 3.2.10).
	ParameterLanguage ParameterName = "LANGUAGE"
	// ParameterMember identifies group membership (section 3.2.11).
	ParameterMember ParameterName = "MEMBER"
	// ParameterParticipationStatus holds participation status (section 3.2.12).
	ParameterParticipationStatus ParameterName = "PARTSTAT"
	// ParameterRange is used with RECURRENCE-ID (section 3.2.13).
	ParameterRange ParameterName = "RANGE"
	// ParameterRelated anchors a relative TRIGGER (section 3.2.14).
	ParameterRelated ParameterName = "RELATED"
	// ParameterReltype specifies relationship type for RELATED-TO (section 3.2.15).
	ParameterReltype ParameterName = "RELTYPE"
	// ParameterRole indicates participant role (section 3.2.16).
	ParameterRole ParameterName = "ROLE"
	// ParameterRsvp indicates whether a response is requested (section 3.2.17).
	ParameterRsvp ParameterName = "RSVP"
	// ParameterSentBy gives the address responsible for sending a request (section 3.2.18).
	ParameterSentBy ParameterName = "SENT-BY"
	// ParameterTzid references a time zone identifier (section 3.2.19).
	ParameterTzid ParameterName = "TZID"
	// ParameterValue sets the value data type of the property (section 3.2.20).
	ParameterValue ParameterName = "VALUE"
)

// AlarmAction enumerates VALARM ACTION property values (RFC 5545 section 3.8.6.1).
type AlarmAction string

const (
	// AlarmActionAudio plays an audio alert.
	AlarmActionAudio AlarmAction = "AUDIO"
	// AlarmActionDisplay shows display text.
	AlarmActionDisplay AlarmAction = "DISPLAY"
	// AlarmActionEmail sends an email message.
	AlarmActionEmail AlarmAction = "EMAIL"
)

// Classification enumerates CLASS property values (RFC 5545 section 3.8.1.3).
type Classification string

const (
	ClassificationPublic       Classification = "PUBLIC"
	ClassificationPrivate      Classification = "PRIVATE"
	ClassificationConfidential Classification = "CONFIDENTIAL"
)

// ObjectStatus enumerates allowed STATUS property values for calendar objects
// (RFC 5545 section 3.8.1.11).
type ObjectStatus string

const (
	// ObjectStatusTentative indicates the event is tentative.
	ObjectStatusTentative ObjectStatus = "TENTATIVE"
	// ObjectStatusConfirmed indicates the event is confirmed.
	ObjectStatusConfirmed ObjectStatus = "CONFIRMED"
	// ObjectStatusCancelled applies to events, to-dos and journals.
	ObjectStatusCancelled ObjectStatus = "CANCELLED"
	// ObjectStatusNeedsAction indicates the to-do needs action.
	ObjectStatusNeedsAction ObjectStatus = "NEEDS-ACTION"
	// ObjectStatusCompleted indicates the to-do is completed.
	ObjectStatusCompleted ObjectStatus = "COMPLETED"
	// ObjectStatusInProcess indicates the to-do is in process.
	ObjectStatusInProcess ObjectStatus = "IN-PROCESS"
	// ObjectStatusDraft indicates a draft journal entry.
	ObjectStatusDraft ObjectStatus = "DRAFT"
	// ObjectStatusFinal indicates a final journal entry.
	ObjectStatusFinal ObjectStatus = "FINAL"
)

// SchedulingMethod enumerates METHOD property values used with scheduling
// messages (RFC 5546 section 1.4).
type SchedulingMethod string

const (
	MethodPublish        SchedulingMethod = "PUBLISH"
	MethodRequest        SchedulingMethod = "REQUEST"
	MethodReply          SchedulingMethod = "REPLY"
	MethodAdd            SchedulingMethod = "ADD"
	MethodCancel         SchedulingMethod = "CANCEL"
	MethodRefresh        SchedulingMethod = "REFRESH"
	MethodCounter        SchedulingMethod = "COUNTER"
	MethodDeclinecounter SchedulingMethod = "DECLINECOUNTER"
)

// Transparency enumerates TRANSP property values (RFC 5545 section 3.8.2.7).
type Transparency string

const (
	TransparencyOpaque      Transparency = "OPAQUE" // default
	TransparencyTransparent Transparency = "TRANSPARENT"
)
