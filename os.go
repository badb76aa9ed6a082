package ics

// The WithNewLine constants select the newline style used when serializing
// calendars. RFC 5545 section 3.1 requires lines to be delimited by CRLF
// ("\r\n"), which is the default; LF is offered for tools that expect it.
const (
	// WithNewLineUnix uses LF line endings.
	WithNewLineUnix WithNewLine = "\n"
	// WithNewLineWindows uses CRLF line endings as required by RFC 5545 section 3.1.
	WithNewLineWindows WithNewLine = "\r\n"
)

// NewLine is the line delimiter used by Formatted.
const NewLine = WithNewLineWindows
