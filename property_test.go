package ics

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type builtProperty struct {
	property Property
	err      error
}

func built(p Property, err error) builtProperty {
	return builtProperty{property: p, err: err}
}

func ok(p Property) builtProperty {
	return builtProperty{property: p}
}

func buildErr(_ Property, err error) error {
	return err
}

type propertyCase struct {
	name     string
	built    builtProperty
	expected string
}

func assertProperties(t *testing.T, cases []propertyCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.built.err)
			p := tc.built.property
			assert.Equal(t, tc.expected, p.Formatted())
			assert.Equal(t, p.Formatted(), p.Formatted(), "formatting is not repeatable")
			assert.True(t, strings.HasPrefix(tc.expected, string(p.Name())), "name %s does not lead %q", p.Name(), tc.expected)
		})
	}
}

func assertRejected(t *testing.T, cases map[string]error) {
	t.Helper()
	for name, err := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestDescriptiveProperties(t *testing.T) {
	english := LanguageOf(language.English)

	assertProperties(t, []propertyCase{
		{
			name:     "uri attachment",
			built:    built(NewAttachmentBuilder().WithFormatType("application/postscript").BuildURI(mustParseURL(t, "ftp://example.com/pub/reports/r-960812.ps"))),
			expected: "ATTACH;FMTTYPE=application/postscript:ftp://example.com/pub/reports/r-960812.ps",
		},
		{
			name:     "binary attachment",
			built:    ok(NewAttachmentBuilder().WithFormatType("text/plain").BuildBinary([]byte("hello"))),
			expected: "ATTACH;FMTTYPE=text/plain;ENCODING=BASE64;VALUE=BINARY:aGVsbG8=",
		},
		{
			name:     "categories",
			built:    built(NewCategoriesBuilder().Build("APPOINTMENT", "EDUCATION")),
			expected: "CATEGORIES:APPOINTMENT,EDUCATION",
		},
		{
			name:     "categories are escaped one by one",
			built:    built(NewCategoriesBuilder().WithLanguage(english).Build("a,b", "c")),
			expected: `CATEGORIES;LANGUAGE=en:a\,b,c`,
		},
		{
			name:     "classification",
			built:    built(NewAccessClassificationBuilder().Build(ClassificationPublic)),
			expected: "CLASS:PUBLIC",
		},
		{
			name:     "comment",
			built:    ok(NewCommentBuilder().Build("The meeting really needs to include both ourselves and the customer.")),
			expected: "COMMENT:The meeting really needs to include both ourselves and the customer.",
		},
		{
			name: "description with parameters",
			built: ok(NewDescriptionBuilder().
				WithAlternateTextRepresentation(NewAlternateTextRepresentation(mustParseURL(t, "cid:part1.0001@example.org"))).
				WithLanguage(english).
				Build("Project XYZ Review Meeting; bring notes,\nthanks")),
			expected: `DESCRIPTION;ALTREP="cid:part1.0001@example.org";LANGUAGE=en:Project XYZ Review Meeting\; bring notes\,\nthanks`,
		},
		{
			name:     "backslash is escaped",
			built:    ok(NewDescriptionBuilder().Build(`C:\temp`)),
			expected: `DESCRIPTION:C:\\temp`,
		},
		{
			name:     "geographic position",
			built:    ok(NewGeographicPositionBuilder().Build(GeoPosition{Latitude: 37.386013, Longitude: -122.082932})),
			expected: "GEO:37.386013;-122.082932",
		},
		{
			name:     "location",
			built:    ok(NewLocationBuilder().Build("Conference Room - F123, Bldg. 002")),
			expected: `LOCATION:Conference Room - F123\, Bldg. 002`,
		},
		{
			name:     "percent complete",
			built:    built(NewPercentCompleteBuilder().Build(39)),
			expected: "PERCENT-COMPLETE:39",
		},
		{
			name:     "percent complete lower bound",
			built:    built(NewPercentCompleteBuilder().Build(0)),
			expected: "PERCENT-COMPLETE:0",
		},
		{
			name:     "percent complete upper bound",
			built:    built(NewPercentCompleteBuilder().Build(100)),
			expected: "PERCENT-COMPLETE:100",
		},
		{
			name:     "priority",
			built:    built(NewPriorityBuilder().Build(1)),
			expected: "PRIORITY:1",
		},
		{
			name:     "resources",
			built:    built(NewResourcesBuilder().Build("EASEL", "PROJECTOR", "VCR")),
			expected: "RESOURCES:EASEL,PROJECTOR,VCR",
		},
		{
			name:     "status",
			built:    built(NewStatusBuilder().Build(ObjectStatusTentative)),
			expected: "STATUS:TENTATIVE",
		},
		{
			name:     "summary",
			built:    ok(NewSummaryBuilder().Build("Department Party")),
			expected: "SUMMARY:Department Party",
		},
	})

	assertRejected(t, map[string]error{
		"nil attachment uri":   buildErr(NewAttachmentBuilder().BuildURI(nil)),
		"no categories":        buildErr(NewCategoriesBuilder().Build()),
		"empty classification": buildErr(NewAccessClassificationBuilder().Build("")),
		"percent complete -1":  buildErr(NewPercentCompleteBuilder().Build(-1)),
		"percent complete 101": buildErr(NewPercentCompleteBuilder().Build(101)),
		"priority 10":          buildErr(NewPriorityBuilder().Build(10)),
		"negative priority":    buildErr(NewPriorityBuilder().Build(-1)),
		"no resources":         buildErr(NewResourcesBuilder().Build()),
		"blank resource":       buildErr(NewResourcesBuilder().Build("EASEL", " ")),
		"empty status":         buildErr(NewStatusBuilder().Build("")),
	})
}

func TestPercentCompleteMessage(t *testing.T) {
	_, err := NewPercentCompleteBuilder().Build(101)
	assert.EqualError(t, err, "invalid argument: Percent Complete must be between 0 and 100, got 101")

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "percentComplete", validation.Field)
}

func TestDateTimeProperties(t *testing.T) {
	newYork, err := LoadTimeZoneIdentifier("America/New_York")
	require.NoError(t, err)
	fourPM := time.Date(1997, 3, 8, 16, 0, 0, 0, time.UTC)
	busy, err := NewPeriodOfDuration(fourPM, Duration{Hours: 8, Minutes: 30})
	require.NoError(t, err)
	late, err := NewPeriod(time.Date(1997, 3, 8, 23, 0, 0, 0, time.UTC), time.Date(1997, 3, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assertProperties(t, []propertyCase{
		{
			name:     "completed",
			built:    ok(NewDateTimeCompletedBuilder().Build(time.Date(1996, 4, 1, 15, 0, 0, 0, time.UTC))),
			expected: "COMPLETED:19960401T150000Z",
		},
		{
			name:     "completed converts to utc",
			built:    ok(NewDateTimeCompletedBuilder().Build(time.Date(1996, 4, 1, 10, 0, 0, 0, newYork.Location))),
			expected: "COMPLETED:19960401T150000Z",
		},
		{
			name:     "dtend",
			built:    built(NewDateTimeEndBuilder().Build(time.Date(1996, 4, 1, 15, 0, 0, 0, time.UTC))),
			expected: "DTEND:19960401T150000Z",
		},
		{
			name:     "dtend date",
			built:    built(NewDateTimeEndBuilder().WithValueDataType(ValueDataTypeDate).Build(time.Date(1998, 7, 4, 0, 0, 0, 0, time.UTC))),
			expected: "DTEND;VALUE=DATE:19980704",
		},
		{
			name:     "due",
			built:    built(NewDateTimeDueBuilder().Build(time.Date(1998, 4, 30, 0, 0, 0, 0, time.UTC))),
			expected: "DUE:19980430T000000Z",
		},
		{
			name:     "dtstart utc",
			built:    built(NewDateTimeStartBuilder().Build(time.Date(1997, 7, 14, 17, 0, 0, 0, time.UTC))),
			expected: "DTSTART:19970714T170000Z",
		},
		{
			name:     "dtstart in a time zone",
			built:    built(NewDateTimeStartBuilder().WithTimeZoneIdentifier(newYork).Build(time.Date(1998, 1, 19, 7, 0, 0, 0, time.UTC))),
			expected: "DTSTART;TZID=America/New_York:19980119T020000",
		},
		{
			name:     "dtstart value before tzid",
			built:    built(NewDateTimeStartBuilder().WithValueDataType(ValueDataTypeDateTime).WithTimeZoneIdentifier(newYork).Build(time.Date(1998, 1, 19, 7, 0, 0, 0, time.UTC))),
			expected: "DTSTART;VALUE=DATE-TIME;TZID=America/New_York:19980119T020000",
		},
		{
			name:     "dtstart date",
			built:    built(NewDateTimeStartBuilder().WithValueDataType(ValueDataTypeDate).Build(time.Date(1997, 11, 2, 0, 0, 0, 0, time.UTC))),
			expected: "DTSTART;VALUE=DATE:19971102",
		},
		{
			name:     "duration",
			built:    built(NewDurationPropertyBuilder().Build(Duration{Hours: 1})),
			expected: "DURATION:PT1H",
		},
		{
			name:     "duration in weeks",
			built:    built(NewDurationPropertyBuilder().Build(Duration{Weeks: 7})),
			expected: "DURATION:P7W",
		},
		{
			name:     "duration with a gap in the time part",
			built:    built(NewDurationPropertyBuilder().Build(Duration{Days: 15, Hours: 5, Seconds: 20})),
			expected: "DURATION:P15DT5H0M20S",
		},
		{
			name:     "free busy",
			built:    built(NewFreeBusyTimeBuilder().WithFreeBusyTimeType(FreeBusyTimeTypeBusy).Build(busy, late)),
			expected: "FREEBUSY;FBTYPE=BUSY:19970308T160000Z/PT8H30M,19970308T230000Z/19970309T000000Z",
		},
		{
			name:     "transparency",
			built:    built(NewTimeTransparencyBuilder().Build(TransparencyTransparent)),
			expected: "TRANSP:TRANSPARENT",
		},
	})

	assertRejected(t, map[string]error{
		"dtstart period":        buildErr(NewDateTimeStartBuilder().WithValueDataType(ValueDataTypePeriod).Build(fourPM)),
		"dtstart date tzid":     buildErr(NewDateTimeStartBuilder().WithValueDataType(ValueDataTypeDate).WithTimeZoneIdentifier(newYork).Build(fourPM)),
		"dtend text":            buildErr(NewDateTimeEndBuilder().WithValueDataType(ValueDataTypeText).Build(fourPM)),
		"due date tzid":         buildErr(NewDateTimeDueBuilder().WithValueDataType(ValueDataTypeDate).WithTimeZoneIdentifier(newYork).Build(fourPM)),
		"negative duration":     buildErr(NewDurationPropertyBuilder().Build(Duration{Negative: true, Minutes: 5})),
		"mixed weeks":           buildErr(NewDurationPropertyBuilder().Build(Duration{Weeks: 1, Days: 1})),
		"no free busy":          buildErr(NewFreeBusyTimeBuilder().Build()),
		"zero free busy period": buildErr(NewFreeBusyTimeBuilder().Build(Period{})),
		"empty transparency":    buildErr(NewTimeTransparencyBuilder().Build("")),
	})
}

func TestDateTimeStartAccessors(t *testing.T) {
	at := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	start, err := NewDateTimeStartBuilder().WithValueDataType(ValueDataTypeDate).Build(at)
	require.NoError(t, err)
	assert.True(t, start.IsDate())
	assert.Equal(t, at, start.Time())

	start, err = NewDateTimeStartBuilder().Build(at)
	require.NoError(t, err)
	assert.False(t, start.IsDate())
}

func TestTimeZoneProperties(t *testing.T) {
	newYork, err := LoadTimeZoneIdentifier("America/New_York")
	require.NoError(t, err)
	frCA, err := ParseLanguage("fr-CA")
	require.NoError(t, err)

	assertProperties(t, []propertyCase{
		{
			name:     "tzid",
			built:    built(NewTimeZoneIdentifierPropertyBuilder().Build("America/New_York")),
			expected: "TZID:America/New_York",
		},
		{
			name:     "tzid from a location",
			built:    built(NewTimeZoneIdentifierPropertyBuilder().BuildFor(newYork)),
			expected: "TZID:America/New_York",
		},
		{
			name:     "tzname",
			built:    ok(NewTimeZoneNameBuilder().Build("EST")),
			expected: "TZNAME:EST",
		},
		{
			name:     "tzname with language",
			built:    ok(NewTimeZoneNameBuilder().WithLanguage(frCA).Build("HNE")),
			expected: "TZNAME;LANGUAGE=fr-CA:HNE",
		},
		{
			name:     "tzoffsetfrom",
			built:    built(NewTimeZoneOffsetFromBuilder().Build(UtcOffset{Sign: Negative, Hours: 4})),
			expected: "TZOFFSETFROM:-0400",
		},
		{
			name:     "tzoffsetto",
			built:    built(NewTimeZoneOffsetToBuilder().Build(UtcOffset{Sign: Positive, Hours: 5, Minutes: 30})),
			expected: "TZOFFSETTO:+0530",
		},
		{
			name:     "tzurl",
			built:    built(NewTimeZoneUrlBuilder().Build(mustParseURL(t, "http://timezones.example.org/tz/America-Los_Angeles.ics"))),
			expected: "TZURL:http://timezones.example.org/tz/America-Los_Angeles.ics",
		},
	})

	assertRejected(t, map[string]error{
		"blank tzid":            buildErr(NewTimeZoneIdentifierPropertyBuilder().Build(" ")),
		"unnamed location":      buildErr(NewTimeZoneIdentifierPropertyBuilder().BuildFor(TimeZoneIdentifier{})),
		"negative zero offset":  buildErr(NewTimeZoneOffsetFromBuilder().Build(UtcOffset{Sign: Negative})),
		"offset hour too large": buildErr(NewTimeZoneOffsetToBuilder().Build(UtcOffset{Hours: 13})),
		"nil tzurl":             buildErr(NewTimeZoneUrlBuilder().Build(nil)),
	})
}

func TestRelationshipProperties(t *testing.T) {
	newYork, err := LoadTimeZoneIdentifier("America/New_York")
	require.NoError(t, err)

	assertProperties(t, []propertyCase{
		{
			name: "attendee",
			built: built(NewAttendeeBuilder().
				WithCommonName("Henry Cabot").
				WithRSVP(RSVPTrue).
				WithParticipationStatus(ParticipationStatusTentative).
				WithParticipationRole(ParticipationRoleReqParticipant).
				Build(mustParseURL(t, "mailto:hcabot@example.com"))),
			expected: "ATTENDEE;ROLE=REQ-PARTICIPANT;PARTSTAT=TENTATIVE;RSVP=TRUE;CN=Henry Cabot:mailto:hcabot@example.com",
		},
		{
			name: "attendee group",
			built: built(NewAttendeeBuilder().
				WithCalendarUserType(CalendarUserTypeGroup).
				WithDelegators(Delegators{mustParseURL(t, "mailto:jsmith@example.com")}).
				Build(mustParseURL(t, "mailto:ietf-calsch@example.org"))),
			expected: `ATTENDEE;CUTYPE=GROUP;DELEGATED-FROM="mailto:jsmith@example.com":mailto:ietf-calsch@example.org`,
		},
		{
			name: "contact",
			built: ok(NewContactBuilder().
				WithAlternateTextRepresentation(NewAlternateTextRepresentation(mustParseURL(t, "http://example.com/pdi/jdoe.vcf"))).
				Build("Jim Dolittle, ABC Industries, +1-919-555-1234")),
			expected: `CONTACT;ALTREP="http://example.com/pdi/jdoe.vcf":Jim Dolittle\, ABC Industries\, +1-919-555-1234`,
		},
		{
			name:     "organizer",
			built:    built(NewOrganiserBuilder().Build(mustParseURL(t, "mailto:a@b.com"))),
			expected: "ORGANIZER:mailto:a@b.com",
		},
		{
			name: "organizer with parameters",
			built: built(NewOrganiserBuilder().
				WithSentBy(NewSentBy(mustParseURL(t, "mailto:jane_doe@example.com"))).
				WithCommonName("JohnSmith").
				Build(mustParseURL(t, "mailto:jsmith@example.com"))),
			expected: `ORGANIZER;CN=JohnSmith;SENT-BY="mailto:jane_doe@example.com":mailto:jsmith@example.com`,
		},
		{
			name:     "recurrence id",
			built:    built(NewRecurrenceIdBuilder().Build(time.Date(1996, 9, 3, 16, 0, 0, 0, time.UTC))),
			expected: "RECURRENCE-ID:19960903T160000Z",
		},
		{
			name: "recurrence id with range",
			built: built(NewRecurrenceIdBuilder().
				WithRange(RangeThisAndFuture).
				WithTimeZoneIdentifier(newYork).
				Build(time.Date(1998, 4, 1, 0, 0, 0, 0, newYork.Location))),
			expected: "RECURRENCE-ID;TZID=America/New_York;RANGE=THISANDFUTURE:19980401T000000",
		},
		{
			name:     "related to",
			built:    built(NewRelatedToBuilder().Build("19960401-080045-4000F192713-0052@example.com")),
			expected: "RELATED-TO:19960401-080045-4000F192713-0052@example.com",
		},
		{
			name:     "related to parent",
			built:    built(NewRelatedToBuilder().WithRelationshipType(RelationshipTypeParent).Build("jsmith.part7.19960817T083000.xyzMail@example.com")),
			expected: "RELATED-TO;RELTYPE=PARENT:jsmith.part7.19960817T083000.xyzMail@example.com",
		},
		{
			name:     "url",
			built:    built(NewUniformResourceLocatorBuilder().Build(mustParseURL(t, "http://example.com/pub/calendars/jsmith/mytime.ics"))),
			expected: "URL:http://example.com/pub/calendars/jsmith/mytime.ics",
		},
		{
			name:     "uid",
			built:    built(NewUniqueIdentifierBuilder().Build("19960401T080045Z-4000F192713-0052@example.com")),
			expected: "UID:19960401T080045Z-4000F192713-0052@example.com",
		},
	})

	assertRejected(t, map[string]error{
		"nil attendee":       buildErr(NewAttendeeBuilder().Build(nil)),
		"nil organizer":      buildErr(NewOrganiserBuilder().Build(nil)),
		"http organizer":     buildErr(NewOrganiserBuilder().Build(mustParseURL(t, "http://example.com/jsmith"))),
		"recurrence id text": buildErr(NewRecurrenceIdBuilder().WithValueDataType(ValueDataTypeText).Build(time.Now())),
		"blank related to":   buildErr(NewRelatedToBuilder().Build("  ")),
		"nil url":            buildErr(NewUniformResourceLocatorBuilder().Build(nil)),
		"blank uid":          buildErr(NewUniqueIdentifierBuilder().Build("")),
	})
}

func TestAttendeeEmail(t *testing.T) {
	a, err := NewAttendeeBuilder().Build(mustParseURL(t, "mailto:hcabot@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "hcabot@example.com", a.Email())
}

func TestRandomUniqueIdentifier(t *testing.T) {
	first := NewUniqueIdentifierBuilder().BuildRandom()
	second := NewUniqueIdentifierBuilder().BuildRandom()
	assert.NotEqual(t, first.Value(), second.Value())

	_, err := uuid.Parse(first.Value())
	assert.NoError(t, err)
	assert.Equal(t, "UID:"+first.Value(), first.Formatted())
}

func TestRecurrenceProperties(t *testing.T) {
	newYork, err := LoadTimeZoneIdentifier("America/New_York")
	require.NoError(t, err)
	first := time.Date(1996, 4, 2, 1, 0, 0, 0, time.UTC)
	second := time.Date(1996, 4, 3, 1, 0, 0, 0, time.UTC)
	explicit, err := NewPeriod(time.Date(1996, 4, 3, 2, 0, 0, 0, time.UTC), time.Date(1996, 4, 3, 4, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	threeHours, err := NewPeriodOfDuration(time.Date(1996, 4, 4, 1, 0, 0, 0, time.UTC), Duration{Hours: 3})
	require.NoError(t, err)

	assertProperties(t, []propertyCase{
		{
			name:     "exdate",
			built:    built(NewExceptionDateTimesBuilder().Build(first, second)),
			expected: "EXDATE:19960402T010000Z,19960403T010000Z",
		},
		{
			name:     "exdate dates",
			built:    built(NewExceptionDateTimesBuilder().WithValueDataType(ValueDataTypeDate).Build(first, second)),
			expected: "EXDATE;VALUE=DATE:19960402,19960403",
		},
		{
			name:     "rdate in a time zone",
			built:    built(NewRecurrenceDateTimesBuilder().WithTimeZoneIdentifier(newYork).BuildDates(time.Date(1997, 7, 14, 8, 30, 0, 0, newYork.Location))),
			expected: "RDATE;TZID=America/New_York:19970714T083000",
		},
		{
			name:     "rdate periods",
			built:    built(NewRecurrenceDateTimesBuilder().BuildPeriods(explicit, threeHours)),
			expected: "RDATE;VALUE=PERIOD:19960403T020000Z/19960403T040000Z,19960404T010000Z/PT3H",
		},
		{
			name:     "rrule",
			built:    built(NewRecurrenceRuleBuilder().Build(Recurrence{Frequency: FrequencyDaily, Count: 10})),
			expected: "RRULE:FREQ=DAILY;COUNT=10",
		},
		{
			name:     "raw rrule",
			built:    built(NewRecurrenceRuleBuilder().BuildRaw("RRULE:FREQ=WEEKLY;BYDAY=MO,WE")),
			expected: "RRULE:FREQ=WEEKLY;BYDAY=MO,WE",
		},
	})

	assertRejected(t, map[string]error{
		"no exdates":         buildErr(NewExceptionDateTimesBuilder().Build()),
		"exdate period":      buildErr(NewExceptionDateTimesBuilder().WithValueDataType(ValueDataTypePeriod).Build(first)),
		"no rdates":          buildErr(NewRecurrenceDateTimesBuilder().BuildDates()),
		"date periods":       buildErr(NewRecurrenceDateTimesBuilder().WithValueDataType(ValueDataTypeDate).BuildPeriods(explicit)),
		"zero rdate period":  buildErr(NewRecurrenceDateTimesBuilder().BuildPeriods(explicit, Period{})),
		"rdate period dates": buildErr(NewRecurrenceDateTimesBuilder().WithValueDataType(ValueDataTypePeriod).BuildDates(first)),
		"empty recurrence":   buildErr(NewRecurrenceRuleBuilder().Build(Recurrence{})),
		"blank raw rule":     buildErr(NewRecurrenceRuleBuilder().BuildRaw(" ")),
		"unknown rule part":  buildErr(NewRecurrenceRuleBuilder().BuildRaw("FREQ=DAILY;FOO=1")),
		"unknown frequency":  buildErr(NewRecurrenceRuleBuilder().BuildRaw("FREQ=FORTNIGHTLY")),
	})
}

func TestAlarmProperties(t *testing.T) {
	assertProperties(t, []propertyCase{
		{
			name:     "action",
			built:    built(NewActionBuilder().Build(AlarmActionAudio)),
			expected: "ACTION:AUDIO",
		},
		{
			name:     "repeat",
			built:    built(NewRepeatCountBuilder().Build(4)),
			expected: "REPEAT:4",
		},
		{
			name:     "trigger before start",
			built:    built(NewTriggerBuilder().BuildRelative(DurationOf(-15 * time.Minute))),
			expected: "TRIGGER:-PT15M",
		},
		{
			name:     "trigger after end",
			built:    built(NewTriggerBuilder().WithRelated(RelatedEnd).BuildRelative(Duration{Minutes: 5})),
			expected: "TRIGGER;RELATED=END:PT5M",
		},
		{
			name:     "absolute trigger",
			built:    ok(NewTriggerBuilder().BuildAbsolute(time.Date(1998, 1, 1, 5, 0, 0, 0, time.UTC))),
			expected: "TRIGGER;VALUE=DATE-TIME:19980101T050000Z",
		},
	})

	assertRejected(t, map[string]error{
		"procedure action": buildErr(NewActionBuilder().Build("PROCEDURE")),
		"negative repeat":  buildErr(NewRepeatCountBuilder().Build(-1)),
		"mixed weeks":      buildErr(NewTriggerBuilder().BuildRelative(Duration{Weeks: 1, Days: 1})),
	})

	absolute := NewTriggerBuilder().WithRelated(RelatedEnd).BuildAbsolute(time.Date(1998, 1, 1, 5, 0, 0, 0, time.UTC))
	assert.True(t, absolute.IsAbsolute())
	assert.NotContains(t, absolute.Formatted(), "RELATED")
}

func TestChangeManagementProperties(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	assertProperties(t, []propertyCase{
		{
			name:     "created",
			built:    ok(NewDateTimeCreatedBuilder().Build(time.Date(1998, 1, 18, 23, 0, 0, 0, time.UTC))),
			expected: "CREATED:19980118T230000Z",
		},
		{
			name:     "dtstamp converts to utc",
			built:    ok(NewDateTimeStampBuilder().Build(time.Date(1997, 6, 10, 19, 0, 0, 0, berlin))),
			expected: "DTSTAMP:19970610T170000Z",
		},
		{
			name:     "last modified",
			built:    ok(NewLastModifiedBuilder().Build(time.Date(1996, 8, 17, 13, 30, 0, 0, time.UTC))),
			expected: "LAST-MODIFIED:19960817T133000Z",
		},
		{
			name:     "sequence",
			built:    built(NewSequenceNumberBuilder().Build(0)),
			expected: "SEQUENCE:0",
		},
	})

	_, err = NewSequenceNumberBuilder().Build(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.EqualError(t, err, "invalid argument: Sequence Number is a non-negative integer, got -1")
}

func TestMiscellaneousProperties(t *testing.T) {
	assertProperties(t, []propertyCase{
		{
			name:     "request status",
			built:    built(NewRequestStatusBuilder().Build(2, 0, "Success")),
			expected: "REQUEST-STATUS:2.0;Success",
		},
		{
			name:     "request status with data",
			built:    built(NewRequestStatusBuilder().BuildWithData(3, 7, "Invalid", "extra;info")),
			expected: `REQUEST-STATUS:3.7;Invalid;extra\;info`,
		},
		{
			name:     "request status with language",
			built:    built(NewRequestStatusBuilder().WithLanguage(LanguageOf(language.English)).Build(4, 1, "Event conflict, date-time is busy.")),
			expected: `REQUEST-STATUS;LANGUAGE=en:4.1;Event conflict\, date-time is busy.`,
		},
		{
			name:     "experimental text",
			built:    built(NewExperimentalPropertyBuilder().Build("x-wr-calname", "My, Calendar")),
			expected: `X-WR-CALNAME:My\, Calendar`,
		},
		{
			name:     "experimental uri is verbatim",
			built:    built(NewExperimentalPropertyBuilder().WithValueDataType(ValueDataTypeUri).Build("X-LINK", "http://a.example/x,y")),
			expected: "X-LINK;VALUE=URI:http://a.example/x,y",
		},
		{
			name:     "experimental text line breaks are escaped",
			built:    built(NewExperimentalPropertyBuilder().Build("X-NOTE", "a\r\nb\rc")),
			expected: `X-NOTE:a\nb\nc`,
		},
	})

	assertRejected(t, map[string]error{
		"class 0":              buildErr(NewRequestStatusBuilder().Build(0, 0, "Zero")),
		"class 6":              buildErr(NewRequestStatusBuilder().Build(6, 0, "Six")),
		"detail 100":           buildErr(NewRequestStatusBuilder().Build(2, 100, "Big")),
		"blank description":    buildErr(NewRequestStatusBuilder().Build(2, 0, "  ")),
		"missing prefix":       buildErr(NewExperimentalPropertyBuilder().Build("CALNAME", "x")),
		"bare prefix":          buildErr(NewExperimentalPropertyBuilder().Build("X-", "x")),
		"space in name":        buildErr(NewExperimentalPropertyBuilder().Build("X-BAD NAME", "x")),
		"underscore in name":   buildErr(NewExperimentalPropertyBuilder().Build("X-BAD_NAME", "x")),
		"uri with line feed":   buildErr(NewExperimentalPropertyBuilder().WithValueDataType(ValueDataTypeUri).Build("X-LINK", "http://a.example/\nX-EVIL:1")),
		"uri with carriage":    buildErr(NewExperimentalPropertyBuilder().WithValueDataType(ValueDataTypeUri).Build("X-LINK", "http://a.example/\rx")),
		"integer with newline": buildErr(NewExperimentalPropertyBuilder().WithValueDataType(ValueDataTypeInteger).Build("X-COUNT", "1\n2")),
	})
}

func TestBuiltPropertiesIgnoreLaterURLChanges(t *testing.T) {
	address := mustParseURL(t, "mailto:a@b.com")
	organiser, err := NewOrganiserBuilder().Build(address)
	require.NoError(t, err)

	link := mustParseURL(t, "http://example.com/event")
	location, err := NewUniformResourceLocatorBuilder().Build(link)
	require.NoError(t, err)

	tzURL := mustParseURL(t, "http://tz.example.com/America/New_York")
	zone, err := NewTimeZoneUrlBuilder().Build(tzURL)
	require.NoError(t, err)

	attendeeAddress := mustParseURL(t, "mailto:dev@example.com")
	delegatee := mustParseURL(t, "mailto:deputy@example.com")
	member := mustParseURL(t, "mailto:team@example.com")
	sentBy := mustParseURL(t, "mailto:boss@example.com")
	directory := mustParseURL(t, "ldap://example.com/dev")
	attendee, err := NewAttendeeBuilder().
		WithMembership(Membership{member}).
		WithDelegatees(Delegatees{delegatee}).
		WithDelegators(Delegators{delegatee}).
		WithSentBy(NewSentBy(sentBy)).
		WithDirectoryEntryReference(NewDirectoryEntryReference(directory)).
		Build(attendeeAddress)
	require.NoError(t, err)

	altRep := mustParseURL(t, "http://example.com/notes.html")
	description := NewDescriptionBuilder().WithAlternateTextRepresentation(NewAlternateTextRepresentation(altRep)).Build("Notes")

	before := []string{organiser.Formatted(), location.Formatted(), zone.Formatted(), attendee.Formatted(), description.Formatted()}

	for _, u := range []*url.URL{address, link, tzURL, attendeeAddress, delegatee, member, sentBy, directory, altRep} {
		*u = url.URL{Scheme: "http", Host: "evil.com"}
	}

	assert.Equal(t, "ORGANIZER:mailto:a@b.com", organiser.Formatted())
	assert.Equal(t, before, []string{organiser.Formatted(), location.Formatted(), zone.Formatted(), attendee.Formatted(), description.Formatted()})
	assert.NotContains(t, attendee.Formatted(), "evil.com")
}

func TestCalendarProperties(t *testing.T) {
	assertProperties(t, []propertyCase{
		{
			name:     "calscale",
			built:    built(NewCalendarScaleBuilder().Build("gregorian")),
			expected: "CALSCALE:GREGORIAN",
		},
		{
			name:     "method",
			built:    built(NewMethodBuilder().Build(MethodRequest)),
			expected: "METHOD:REQUEST",
		},
		{
			name:     "prodid",
			built:    built(NewProductIdentifierBuilder().Build("-//ABC Corporation//NONSGML My Product//EN")),
			expected: "PRODID:-//ABC Corporation//NONSGML My Product//EN",
		},
		{
			name:     "version",
			built:    built(NewVersionBuilder().Build(DefaultVersion)),
			expected: "VERSION:2.0",
		},
	})

	assertRejected(t, map[string]error{
		"blank calscale": buildErr(NewCalendarScaleBuilder().Build("")),
		"blank method":   buildErr(NewMethodBuilder().Build(" ")),
		"blank prodid":   buildErr(NewProductIdentifierBuilder().Build("")),
		"blank version":  buildErr(NewVersionBuilder().Build("")),
	})
}
