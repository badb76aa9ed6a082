package ics

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarAttachment(t *testing.T) {
	uri := must(NewAttachmentBuilder().
		WithFormatType("text/plain").
		BuildURI(mustParseURL(t, "http://example.com/attachment.txt")))
	data := bytes.Repeat([]byte{0x00, 0xff, 0x10, 0x80}, 40)
	binary := NewAttachmentBuilder().WithFormatType("application/octet-stream").BuildBinary(data)

	event, err := NewEventBuilder().
		WithDateTimeStamp(stamp()).
		WithUniqueIdentifier(uid("test-event")).
		AddAttachments(uri, binary).
		Build()
	require.NoError(t, err)

	serialized := testCalendar(t, event).Serialize()
	assert.Contains(t, serialized, "\r\nATTACH;FMTTYPE=text/plain:http://example.com/attachment.txt\r\n")

	encoded := base64.StdEncoding.EncodeToString(data)
	assert.Contains(t, unfoldLines(serialized, "\r\n"), "\r\nATTACH;FMTTYPE=application/octet-stream;ENCODING=BASE64;VALUE=BINARY:"+encoded+"\r\n")
	assert.NotContains(t, serialized, encoded, "long binary attachments are folded")
	assertFolded(t, strings.TrimSuffix(serialized, "\r\n"), "\r\n", 75)
}
