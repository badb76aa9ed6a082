package ics

import (
	"net/url"
	"strings"
)

// TimeZoneIdentifierProperty is the TZID property of a VTIMEZONE
// (section 3.8.3.1). It names the zone that TZID parameters refer to.
type TimeZoneIdentifierProperty struct {
	value string
}

type TimeZoneIdentifierPropertyBuilder struct{}

func NewTimeZoneIdentifierPropertyBuilder() *TimeZoneIdentifierPropertyBuilder {
	return &TimeZoneIdentifierPropertyBuilder{}
}

func (b *TimeZoneIdentifierPropertyBuilder) Build(value string) (*TimeZoneIdentifierProperty, error) {
	if strings.TrimSpace(value) == "" {
		return nil, invalid("tzid", "time zone identifier must not be blank")
	}
	return &TimeZoneIdentifierProperty{value: value}, nil
}

// BuildFor names the property after tzid, so that it matches the TZID
// parameters produced from the same identifier.
func (b *TimeZoneIdentifierPropertyBuilder) BuildFor(tzid TimeZoneIdentifier) (*TimeZoneIdentifierProperty, error) {
	return b.Build(tzid.Name())
}

func (p *TimeZoneIdentifierProperty) Value() string {
	return p.value
}

func (p *TimeZoneIdentifierProperty) Name() PropertyName {
	return PropertyTzid
}

func (p *TimeZoneIdentifierProperty) Formatted() string {
	return formatProperty(PropertyTzid, ToText(p.value))
}

// TimeZoneName is the TZNAME property (section 3.8.3.2).
type TimeZoneName struct {
	language Language
	value    string
}

type TimeZoneNameBuilder struct {
	language Language
}

func NewTimeZoneNameBuilder() *TimeZoneNameBuilder {
	return &TimeZoneNameBuilder{}
}

func (b *TimeZoneNameBuilder) WithLanguage(language Language) *TimeZoneNameBuilder {
	b.language = language
	return b
}

func (b *TimeZoneNameBuilder) Build(value string) *TimeZoneName {
	return &TimeZoneName{language: b.language, value: value}
}

func (p *TimeZoneName) Name() PropertyName {
	return PropertyTzname
}

func (p *TimeZoneName) Formatted() string {
	return formatProperty(PropertyTzname, ToText(p.value), p.language)
}

// TimeZoneOffsetFrom is the TZOFFSETFROM property (section 3.8.3.3).
type TimeZoneOffsetFrom struct {
	value UtcOffset
}

type TimeZoneOffsetFromBuilder struct{}

func NewTimeZoneOffsetFromBuilder() *TimeZoneOffsetFromBuilder {
	return &TimeZoneOffsetFromBuilder{}
}

func (b *TimeZoneOffsetFromBuilder) Build(value UtcOffset) (*TimeZoneOffsetFrom, error) {
	if err := value.Validate(); err != nil {
		return nil, err
	}
	return &TimeZoneOffsetFrom{value: value}, nil
}

func (p *TimeZoneOffsetFrom) Name() PropertyName {
	return PropertyTzoffsetfrom
}

func (p *TimeZoneOffsetFrom) Formatted() string {
	return formatProperty(PropertyTzoffsetfrom, p.value.String())
}

// TimeZoneOffsetTo is the TZOFFSETTO property (section 3.8.3.4).
type TimeZoneOffsetTo struct {
	value UtcOffset
}

type TimeZoneOffsetToBuilder struct{}

func NewTimeZoneOffsetToBuilder() *TimeZoneOffsetToBuilder {
	return &TimeZoneOffsetToBuilder{}
}

func (b *TimeZoneOffsetToBuilder) Build(value UtcOffset) (*TimeZoneOffsetTo, error) {
	if err := value.Validate(); err != nil {
		return nil, err
	}
	return &TimeZoneOffsetTo{value: value}, nil
}

func (p *TimeZoneOffsetTo) Name() PropertyName {
	return PropertyTzoffsetto
}

func (p *TimeZoneOffsetTo) Formatted() string {
	return formatProperty(PropertyTzoffsetto, p.value.String())
}

// TimeZoneUrl is the TZURL property (section 3.8.3.5).
type TimeZoneUrl struct {
	value *url.URL
}

type TimeZoneUrlBuilder struct{}

func NewTimeZoneUrlBuilder() *TimeZoneUrlBuilder {
	return &TimeZoneUrlBuilder{}
}

func (b *TimeZoneUrlBuilder) Build(value *url.URL) (*TimeZoneUrl, error) {
	if value == nil {
		return nil, invalid("tzurl", "time zone url is required")
	}
	return &TimeZoneUrl{value: cloneURL(value)}, nil
}

func (p *TimeZoneUrl) Name() PropertyName {
	return PropertyTzurl
}

func (p *TimeZoneUrl) Formatted() string {
	return formatProperty(PropertyTzurl, p.value.String())
}
