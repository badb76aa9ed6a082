package ics

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func mustParseURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestParameterFormatted(t *testing.T) {
	newYork, err := LoadTimeZoneIdentifier("America/New_York")
	require.NoError(t, err)
	enGB, err := ParseLanguage("en-GB")
	require.NoError(t, err)

	tests := []struct {
		name      string
		parameter Parameter
		expected  string
	}{
		{"common name", CommonName("John Smith"), ";CN=John Smith"},
		{"common name with comma is quoted", CommonName("Smith, John"), `;CN="Smith, John"`},
		{"common name with colon is quoted", CommonName("Dept: Sales"), `;CN="Dept: Sales"`},
		{"dquote is caret encoded", CommonName(`Say "hi"`), `;CN=Say ^'hi^'`},
		{"newline is caret encoded", CommonName("a\nb"), ";CN=a^nb"},
		{"carriage return is caret encoded", CommonName("a\rb\r\nc"), ";CN=a^nb^nc"},
		{"caret is caret encoded", CommonName("a^b"), ";CN=a^^b"},
		{"alternate text", NewAlternateTextRepresentation(mustParseURL(t, "http://example.com/note.html")), `;ALTREP="http://example.com/note.html"`},
		{"calendar user type", CalendarUserTypeRoom, ";CUTYPE=ROOM"},
		{"delegatees", Delegatees{mustParseURL(t, "mailto:a@example.com"), mustParseURL(t, "mailto:b@example.com")}, `;DELEGATED-TO="mailto:a@example.com","mailto:b@example.com"`},
		{"delegators", Delegators{mustParseURL(t, "mailto:jsmith@example.com")}, `;DELEGATED-FROM="mailto:jsmith@example.com"`},
		{"directory", NewDirectoryEntryReference(mustParseURL(t, "http://example.com/dir/jim")), `;DIR="http://example.com/dir/jim"`},
		{"encoding", InlineEncodingBase64, ";ENCODING=BASE64"},
		{"format type", FormatType("text/plain"), ";FMTTYPE=text/plain"},
		{"free busy type", FreeBusyTimeTypeBusyUnavailable, ";FBTYPE=BUSY-UNAVAILABLE"},
		{"language from tag", LanguageOf(language.English), ";LANGUAGE=en"},
		{"parsed language", enGB, ";LANGUAGE=en-GB"},
		{"membership", Membership{mustParseURL(t, "mailto:projectA@example.com")}, `;MEMBER="mailto:projectA@example.com"`},
		{"participation status", ParticipationStatusAccepted, ";PARTSTAT=ACCEPTED"},
		{"range", RangeThisAndFuture, ";RANGE=THISANDFUTURE"},
		{"related", RelatedEnd, ";RELATED=END"},
		{"relationship type", RelationshipTypeChild, ";RELTYPE=CHILD"},
		{"role", ParticipationRoleChair, ";ROLE=CHAIR"},
		{"rsvp", RSVPExpected(true), ";RSVP=TRUE"},
		{"rsvp false", RSVPExpected(false), ";RSVP=FALSE"},
		{"sent by", NewSentBy(mustParseURL(t, "mailto:boss@example.com")), `;SENT-BY="mailto:boss@example.com"`},
		{"time zone", newYork, ";TZID=America/New_York"},
		{"value", ValueDataTypeDate, ";VALUE=DATE"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.parameter.Formatted())
		})
	}
}

func TestUnsetParametersAreEmpty(t *testing.T) {
	for _, p := range []Parameter{
		AlternateTextRepresentation{},
		CommonName(""),
		CalendarUserType(""),
		Delegators(nil),
		Delegatees{},
		DirectoryEntryReference{},
		InlineEncoding(""),
		FormatType(""),
		FreeBusyTimeType(""),
		Language{},
		Membership(nil),
		ParticipationStatus(""),
		RecurrenceIdentifierRange(""),
		AlarmTriggerRelationship(""),
		RelationshipType(""),
		ParticipationRole(""),
		RSVP(""),
		SentBy{},
		TimeZoneIdentifier{},
		ValueDataType(""),
	} {
		assert.Empty(t, p.Formatted(), "%T", p)
	}
}

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage("fr-CA")
	require.NoError(t, err)
	assert.Equal(t, "fr-CA", l.Tag().String())

	_, err = ParseLanguage("not a tag!")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLoadTimeZoneIdentifier(t *testing.T) {
	tz, err := LoadTimeZoneIdentifier("Europe/Copenhagen")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Copenhagen", tz.Name())

	_, err = LoadTimeZoneIdentifier("Not/AZone")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, "", TimeZoneIdentifier{}.Name())
}
