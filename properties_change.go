package ics

import (
	"strconv"
	"time"
)

// DateTimeCreated is the CREATED property (section 3.8.7.1), always UTC.
type DateTimeCreated struct {
	value time.Time
}

type DateTimeCreatedBuilder struct{}

func NewDateTimeCreatedBuilder() *DateTimeCreatedBuilder {
	return &DateTimeCreatedBuilder{}
}

func (b *DateTimeCreatedBuilder) Build(value time.Time) *DateTimeCreated {
	return &DateTimeCreated{value: value}
}

func (p *DateTimeCreated) Name() PropertyName {
	return PropertyCreated
}

func (p *DateTimeCreated) Formatted() string {
	return formatProperty(PropertyCreated, formatUTC(p.value))
}

// DateTimeStamp is the DTSTAMP property (section 3.8.7.2), always UTC.
type DateTimeStamp struct {
	value time.Time
}

type DateTimeStampBuilder struct{}

func NewDateTimeStampBuilder() *DateTimeStampBuilder {
	return &DateTimeStampBuilder{}
}

func (b *DateTimeStampBuilder) Build(value time.Time) *DateTimeStamp {
	return &DateTimeStamp{value: value}
}

func (p *DateTimeStamp) Time() time.Time {
	return p.value
}

func (p *DateTimeStamp) Name() PropertyName {
	return PropertyDtstamp
}

func (p *DateTimeStamp) Formatted() string {
	return formatProperty(PropertyDtstamp, formatUTC(p.value))
}

// LastModified is the LAST-MODIFIED property (section 3.8.7.3), always UTC.
type LastModified struct {
	value time.Time
}

type LastModifiedBuilder struct{}

func NewLastModifiedBuilder() *LastModifiedBuilder {
	return &LastModifiedBuilder{}
}

func (b *LastModifiedBuilder) Build(value time.Time) *LastModified {
	return &LastModified{value: value}
}

func (p *LastModified) Name() PropertyName {
	return PropertyLastModified
}

func (p *LastModified) Formatted() string {
	return formatProperty(PropertyLastModified, formatUTC(p.value))
}

// SequenceNumber is the SEQUENCE property (section 3.8.7.4).
type SequenceNumber struct {
	value int
}

type SequenceNumberBuilder struct{}

func NewSequenceNumberBuilder() *SequenceNumberBuilder {
	return &SequenceNumberBuilder{}
}

func (b *SequenceNumberBuilder) Build(value int) (*SequenceNumber, error) {
	if value < 0 {
		return nil, invalid("sequence", "Sequence Number is a non-negative integer, got %d", value)
	}
	return &SequenceNumber{value: value}, nil
}

func (p *SequenceNumber) Name() PropertyName {
	return PropertySequence
}

func (p *SequenceNumber) Formatted() string {
	return formatProperty(PropertySequence, strconv.Itoa(p.value))
}
