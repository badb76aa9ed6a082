package ics

import (
	"strings"
)

// Property is a single content line of a component. Formatted renders the
// unfolded "NAME;PARAM=VALUE:VALUE" form without a line terminator.
type Property interface {
	Name() PropertyName
	Formatted() string
}

func formatProperty(name PropertyName, value string, params ...Parameter) string {
	b := &strings.Builder{}
	b.WriteString(string(name))
	for _, p := range params {
		b.WriteString(p.Formatted())
	}
	b.WriteByte(':')
	b.WriteString(value)
	return b.String()
}
