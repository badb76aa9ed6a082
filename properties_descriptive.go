package ics

import (
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"
)

// Attachment is the ATTACH property (section 3.8.1.1). It carries either a
// URI or inline binary content. Parameters are emitted in the order FMTTYPE,
// ENCODING, VALUE.
type Attachment struct {
	formatType FormatType
	encoding   InlineEncoding
	valueType  ValueDataType
	value      string
}

type AttachmentBuilder struct {
	formatType FormatType
}

func NewAttachmentBuilder() *AttachmentBuilder {
	return &AttachmentBuilder{}
}

func (b *AttachmentBuilder) WithFormatType(formatType FormatType) *AttachmentBuilder {
	b.formatType = formatType
	return b
}

// BuildURI returns an attachment referencing uri.
func (b *AttachmentBuilder) BuildURI(uri *url.URL) (*Attachment, error) {
	if uri == nil {
		return nil, invalid("attach", "attachment uri is required")
	}
	return &Attachment{formatType: b.formatType, value: uri.String()}, nil
}

// BuildBinary returns an attachment embedding data as BASE64 with
// VALUE=BINARY.
func (b *AttachmentBuilder) BuildBinary(data []byte) *Attachment {
	return &Attachment{
		formatType: b.formatType,
		encoding:   InlineEncodingBase64,
		valueType:  ValueDataTypeBinary,
		value:      base64.StdEncoding.EncodeToString(data),
	}
}

func (p *Attachment) Name() PropertyName {
	return PropertyAttach
}

func (p *Attachment) Formatted() string {
	return formatProperty(PropertyAttach, p.value, p.formatType, p.encoding, p.valueType)
}

// Categories is the CATEGORIES property (section 3.8.1.2).
type Categories struct {
	language Language
	values   []string
}

type CategoriesBuilder struct {
	language Language
}

func NewCategoriesBuilder() *CategoriesBuilder {
	return &CategoriesBuilder{}
}

func (b *CategoriesBuilder) WithLanguage(language Language) *CategoriesBuilder {
	b.language = language
	return b
}

// Build requires at least one category. Each category is escaped
// separately, then joined with commas.
func (b *CategoriesBuilder) Build(categories ...string) (*Categories, error) {
	if len(categories) == 0 {
		return nil, invalid("categories", "at least one category is required")
	}
	values := make([]string, len(categories))
	copy(values, categories)
	return &Categories{language: b.language, values: values}, nil
}

func (p *Categories) Name() PropertyName {
	return PropertyCategories
}

func (p *Categories) Formatted() string {
	return formatProperty(PropertyCategories, toTextList(p.values), p.language)
}

// AccessClassification is the CLASS property (section 3.8.1.3).
type AccessClassification struct {
	value Classification
}

type AccessClassificationBuilder struct{}

func NewAccessClassificationBuilder() *AccessClassificationBuilder {
	return &AccessClassificationBuilder{}
}

func (b *AccessClassificationBuilder) Build(value Classification) (*AccessClassification, error) {
	if value == "" {
		return nil, invalid("class", "classification is required")
	}
	return &AccessClassification{value: value}, nil
}

func (p *AccessClassification) Name() PropertyName {
	return PropertyClass
}

func (p *AccessClassification) Formatted() string {
	return formatProperty(PropertyClass, string(p.value))
}

// textProperty holds the parameters shared by the free text properties
// COMMENT, CONTACT, DESCRIPTION, LOCATION and SUMMARY, emitted in the order
// ALTREP, LANGUAGE.
type textProperty struct {
	altRep   AlternateTextRepresentation
	language Language
	value    string
}

func (t textProperty) format(name PropertyName) string {
	return formatProperty(name, ToText(t.value), t.altRep, t.language)
}

// Comment is the COMMENT property (section 3.8.1.4).
type Comment struct {
	textProperty
}

type CommentBuilder struct {
	altRep   AlternateTextRepresentation
	language Language
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{}
}

func (b *CommentBuilder) WithAlternateTextRepresentation(altRep AlternateTextRepresentation) *CommentBuilder {
	b.altRep = altRep.clone()
	return b
}

func (b *CommentBuilder) WithLanguage(language Language) *CommentBuilder {
	b.language = language
	return b
}

func (b *CommentBuilder) Build(value string) *Comment {
	return &Comment{textProperty{altRep: b.altRep, language: b.language, value: value}}
}

func (p *Comment) Name() PropertyName {
	return PropertyComment
}

func (p *Comment) Formatted() string {
	return p.format(PropertyComment)
}

// Description is the DESCRIPTION property (section 3.8.1.5).
type Description struct {
	textProperty
}

type DescriptionBuilder struct {
	altRep   AlternateTextRepresentation
	language Language
}

func NewDescriptionBuilder() *DescriptionBuilder {
	return &DescriptionBuilder{}
}

func (b *DescriptionBuilder) WithAlternateTextRepresentation(altRep AlternateTextRepresentation) *DescriptionBuilder {
	b.altRep = altRep.clone()
	return b
}

func (b *DescriptionBuilder) WithLanguage(language Language) *DescriptionBuilder {
	b.language = language
	return b
}

func (b *DescriptionBuilder) Build(value string) *Description {
	return &Description{textProperty{altRep: b.altRep, language: b.language, value: value}}
}

func (p *Description) Name() PropertyName {
	return PropertyDescription
}

func (p *Description) Formatted() string {
	return p.format(PropertyDescription)
}

// GeographicPosition is the GEO property (section 3.8.1.6).
type GeographicPosition struct {
	value GeoPosition
}

type GeographicPositionBuilder struct{}

func NewGeographicPositionBuilder() *GeographicPositionBuilder {
	return &GeographicPositionBuilder{}
}

func (b *GeographicPositionBuilder) Build(value GeoPosition) *GeographicPosition {
	return &GeographicPosition{value: value}
}

func (p *GeographicPosition) Name() PropertyName {
	return PropertyGeo
}

func (p *GeographicPosition) Formatted() string {
	return formatProperty(PropertyGeo, p.value.String())
}

// Location is the LOCATION property (section 3.8.1.7).
type Location struct {
	textProperty
}

type LocationBuilder struct {
	altRep   AlternateTextRepresentation
	language Language
}

func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{}
}

func (b *LocationBuilder) WithAlternateTextRepresentation(altRep AlternateTextRepresentation) *LocationBuilder {
	b.altRep = altRep.clone()
	return b
}

func (b *LocationBuilder) WithLanguage(language Language) *LocationBuilder {
	b.language = language
	return b
}

func (b *LocationBuilder) Build(value string) *Location {
	return &Location{textProperty{altRep: b.altRep, language: b.language, value: value}}
}

func (p *Location) Name() PropertyName {
	return PropertyLocation
}

func (p *Location) Formatted() string {
	return p.format(PropertyLocation)
}

// PercentComplete is the PERCENT-COMPLETE property (section 3.8.1.8).
type PercentComplete struct {
	value int
}

type PercentCompleteBuilder struct{}

func NewPercentCompleteBuilder() *PercentCompleteBuilder {
	return &PercentCompleteBuilder{}
}

// Build fails unless value is within 0..100.
func (b *PercentCompleteBuilder) Build(value int) (*PercentComplete, error) {
	if value < 0 || value > 100 {
		return nil, invalid("percentComplete", "Percent Complete must be between 0 and 100, got %d", value)
	}
	return &PercentComplete{value: value}, nil
}

func (p *PercentComplete) Name() PropertyName {
	return PropertyPercentComplete
}

func (p *PercentComplete) Formatted() string {
	return formatProperty(PropertyPercentComplete, strconv.Itoa(p.value))
}

// Priority is the PRIORITY property (section 3.8.1.9); 0 is undefined, 1 the
// highest and 9 the lowest priority.
type Priority struct {
	value int
}

type PriorityBuilder struct{}

func NewPriorityBuilder() *PriorityBuilder {
	return &PriorityBuilder{}
}

func (b *PriorityBuilder) Build(value int) (*Priority, error) {
	if value < 0 || value > 9 {
		return nil, invalid("priority", "Priority must be between 0 and 9, got %d", value)
	}
	return &Priority{value: value}, nil
}

func (p *Priority) Name() PropertyName {
	return PropertyPriority
}

func (p *Priority) Formatted() string {
	return formatProperty(PropertyPriority, strconv.Itoa(p.value))
}

// Resources is the RESOURCES property (section 3.8.1.10).
type Resources struct {
	altRep   AlternateTextRepresentation
	language Language
	values   []string
}

type ResourcesBuilder struct {
	altRep   AlternateTextRepresentation
	language Language
}

func NewResourcesBuilder() *ResourcesBuilder {
	return &ResourcesBuilder{}
}

func (b *ResourcesBuilder) WithAlternateTextRepresentation(altRep AlternateTextRepresentation) *ResourcesBuilder {
	b.altRep = altRep.clone()
	return b
}

func (b *ResourcesBuilder) WithLanguage(language Language) *ResourcesBuilder {
	b.language = language
	return b
}

func (b *ResourcesBuilder) Build(resources ...string) (*Resources, error) {
	if len(resources) == 0 {
		return nil, invalid("resources", "at least one resource is required")
	}
	for _, r := range resources {
		if strings.TrimSpace(r) == "" {
			return nil, invalid("resources", "resources must not be blank")
		}
	}
	values := make([]string, len(resources))
	copy(values, resources)
	return &Resources{altRep: b.altRep, language: b.language, values: values}, nil
}

func (p *Resources) Name() PropertyName {
	return PropertyResources
}

func (p *Resources) Formatted() string {
	return formatProperty(PropertyResources, toTextList(p.values), p.altRep, p.language)
}

// Status is the STATUS property (section 3.8.1.11). Which values are allowed
// depends on the owning component and is checked when that component is
// built.
type Status struct {
	value ObjectStatus
}

type StatusBuilder struct{}

func NewStatusBuilder() *StatusBuilder {
	return &StatusBuilder{}
}

func (b *StatusBuilder) Build(value ObjectStatus) (*Status, error) {
	if value == "" {
		return nil, invalid("status", "status is required")
	}
	return &Status{value: value}, nil
}

func (p *Status) Value() ObjectStatus {
	return p.value
}

func (p *Status) Name() PropertyName {
	return PropertyStatus
}

func (p *Status) Formatted() string {
	return formatProperty(PropertyStatus, string(p.value))
}

// Summary is the SUMMARY property (section 3.8.1.12).
type Summary struct {
	textProperty
}

type SummaryBuilder struct {
	altRep   AlternateTextRepresentation
	language Language
}

func NewSummaryBuilder() *SummaryBuilder {
	return &SummaryBuilder{}
}

func (b *SummaryBuilder) WithAlternateTextRepresentation(altRep AlternateTextRepresentation) *SummaryBuilder {
	b.altRep = altRep.clone()
	return b
}

func (b *SummaryBuilder) WithLanguage(language Language) *SummaryBuilder {
	b.language = language
	return b
}

func (b *SummaryBuilder) Build(value string) *Summary {
	return &Summary{textProperty{altRep: b.altRep, language: b.language, value: value}}
}

func (p *Summary) Name() PropertyName {
	return PropertySummary
}

func (p *Summary) Formatted() string {
	return p.format(PropertySummary)
}
