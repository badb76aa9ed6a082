package ics

import (
	"fmt"
	"strings"
)

// RequestStatus is the REQUEST-STATUS property (section 3.8.8.3), rendered as
// "class.detail;description[;data]".
type RequestStatus struct {
	language    Language
	class       int
	detail      int
	description string
	data        string
	hasData     bool
}

type RequestStatusBuilder struct {
	language Language
}

func NewRequestStatusBuilder() *RequestStatusBuilder {
	return &RequestStatusBuilder{}
}

func (b *RequestStatusBuilder) WithLanguage(language Language) *RequestStatusBuilder {
	b.language = language
	return b
}

// Build requires class in 1..5, detail in 0..99 and a non-blank
// description.
func (b *RequestStatusBuilder) Build(class, detail int, description string) (*RequestStatus, error) {
	if class < 1 || class > 5 {
		return nil, invalid("requestStatus", "Request Status class must be between 1 and 5, got %d", class)
	}
	if detail < 0 || detail > 99 {
		return nil, invalid("requestStatus", "Request Status detail must be between 0 and 99, got %d", detail)
	}
	if strings.TrimSpace(description) == "" {
		return nil, invalid("requestStatus", "Request Status description must not be blank")
	}
	return &RequestStatus{
		language:    b.language,
		class:       class,
		detail:      detail,
		description: description,
	}, nil
}

// BuildWithData is Build with the optional exception data appended.
func (b *RequestStatusBuilder) BuildWithData(class, detail int, description, data string) (*RequestStatus, error) {
	p, err := b.Build(class, detail, description)
	if err != nil {
		return nil, err
	}
	p.data = data
	p.hasData = true
	return p, nil
}

func (p *RequestStatus) Name() PropertyName {
	return PropertyRequestStatus
}

func (p *RequestStatus) Formatted() string {
	value := fmt.Sprintf("%d.%d;%s", p.class, p.detail, ToText(p.description))
	if p.hasData {
		value += ";" + ToText(p.data)
	}
	return formatProperty(PropertyRequestStatus, value, p.language)
}

// ExperimentalProperty is a non-standard "X-" property (section 3.8.8.2).
// Its value is escaped as TEXT unless another value type is set, in which
// case it is emitted verbatim.
type ExperimentalProperty struct {
	name      PropertyName
	valueType ValueDataType
	language  Language
	value     string
}

type ExperimentalPropertyBuilder struct {
	valueType ValueDataType
	language  Language
}

func NewExperimentalPropertyBuilder() *ExperimentalPropertyBuilder {
	return &ExperimentalPropertyBuilder{}
}

func (b *ExperimentalPropertyBuilder) WithValueDataType(valueType ValueDataType) *ExperimentalPropertyBuilder {
	b.valueType = valueType
	return b
}

func (b *ExperimentalPropertyBuilder) WithLanguage(language Language) *ExperimentalPropertyBuilder {
	b.language = language
	return b
}

// Build fails unless name starts with "X-" and is made of letters, digits
// and dashes. The name is upper cased. Values that are not TEXT are written
// verbatim, so they must not contain line breaks.
func (b *ExperimentalPropertyBuilder) Build(name, value string) (*ExperimentalProperty, error) {
	upper := strings.ToUpper(name)
	if !strings.HasPrefix(upper, "X-") || len(upper) == 2 {
		return nil, invalid("experimental", "experimental property name must start with X-, got %q", name)
	}
	for _, r := range upper {
		if !(r == '-' || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return nil, invalid("experimental", "experimental property name %q contains %q", name, r)
		}
	}
	if b.valueType != "" && b.valueType != ValueDataTypeText && strings.ContainsAny(value, "\r\n") {
		return nil, invalid("experimental", "%s value of type %s must not contain line breaks", upper, b.valueType)
	}
	return &ExperimentalProperty{
		name:      PropertyName(upper),
		valueType: b.valueType,
		language:  b.language,
		value:     value,
	}, nil
}

func (p *ExperimentalProperty) Name() PropertyName {
	return p.name
}

func (p *ExperimentalProperty) Formatted() string {
	value := p.value
	if p.valueType == "" || p.valueType == ValueDataTypeText {
		value = ToText(value)
	}
	return formatProperty(p.name, value, p.valueType, p.language)
}
