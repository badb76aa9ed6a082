package ics

import (
	"strings"
)

const (
	// CalendarScaleGregorian is the only scale defined by RFC 5545 and the
	// one assumed when CALSCALE is absent.
	CalendarScaleGregorian = "GREGORIAN"
	// DefaultVersion is the iCalendar version produced by this package.
	DefaultVersion = "2.0"
)

// CalendarScale is the CALSCALE property (section 3.7.1).
type CalendarScale struct {
	value string
}

type CalendarScaleBuilder struct{}

func NewCalendarScaleBuilder() *CalendarScaleBuilder {
	return &CalendarScaleBuilder{}
}

func (b *CalendarScaleBuilder) Build(value string) (*CalendarScale, error) {
	if strings.TrimSpace(value) == "" {
		return nil, invalid("calscale", "calendar scale must not be blank")
	}
	return &CalendarScale{value: strings.ToUpper(value)}, nil
}

func (p *CalendarScale) Name() PropertyName {
	return PropertyCalscale
}

func (p *CalendarScale) Formatted() string {
	return formatProperty(PropertyCalscale, p.value)
}

// Method is the METHOD property (section 3.7.2).
type Method struct {
	value SchedulingMethod
}

type MethodBuilder struct{}

func NewMethodBuilder() *MethodBuilder {
	return &MethodBuilder{}
}

func (b *MethodBuilder) Build(value SchedulingMethod) (*Method, error) {
	if strings.TrimSpace(string(value)) == "" {
		return nil, invalid("method", "method must not be blank")
	}
	return &Method{value: value}, nil
}

func (p *Method) Name() PropertyName {
	return PropertyMethod
}

func (p *Method) Formatted() string {
	return formatProperty(PropertyMethod, string(p.value))
}

// ProductIdentifier is the PRODID property (section 3.7.3), conventionally
// "-//Company//Product//EN".
type ProductIdentifier struct {
	value string
}

type ProductIdentifierBuilder struct{}

func NewProductIdentifierBuilder() *ProductIdentifierBuilder {
	return &ProductIdentifierBuilder{}
}

func (b *ProductIdentifierBuilder) Build(value string) (*ProductIdentifier, error) {
	if strings.TrimSpace(value) == "" {
		return nil, invalid("prodid", "product identifier must not be blank")
	}
	return &ProductIdentifier{value: value}, nil
}

func (p *ProductIdentifier) Name() PropertyName {
	return PropertyProductId
}

func (p *ProductIdentifier) Formatted() string {
	return formatProperty(PropertyProductId, ToText(p.value))
}

// Version is the VERSION property (section 3.7.4).
type Version struct {
	value string
}

type VersionBuilder struct{}

func NewVersionBuilder() *VersionBuilder {
	return &VersionBuilder{}
}

func (b *VersionBuilder) Build(value string) (*Version, error) {
	if strings.TrimSpace(value) == "" {
		return nil, invalid("version", "version must not be blank")
	}
	return &Version{value: value}, nil
}

func (p *Version) Name() PropertyName {
	return PropertyVersion
}

func (p *Version) Formatted() string {
	return formatProperty(PropertyVersion, p.value)
}
