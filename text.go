package ics

import (
	"net/url"
	"strings"
)

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
	`;`, `\;`,
	`,`, `\,`,
)

// ToText escapes s as an RFC 5545 TEXT value (section 3.3.11): backslash,
// semicolon, comma and line breaks are backslash escaped.
func ToText(s string) string {
	return textEscaper.Replace(s)
}

func toTextList(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = ToText(v)
	}
	return strings.Join(escaped, ",")
}

// RFC 6868 caret encoding for parameter values.
var paramEscaper = strings.NewReplacer(
	`^`, `^^`,
	"\r\n", `^n`,
	"\n", `^n`,
	"\r", `^n`,
	`"`, `^'`,
)

// paramValue renders a param-value, quoting it when it holds characters
// that are not allowed in a paramtext.
func paramValue(v string) string {
	v = paramEscaper.Replace(v)
	if strings.ContainsAny(v, ":;,") {
		return `"` + v + `"`
	}
	return v
}

func quotedParamValue(v string) string {
	return `"` + paramEscaper.Replace(v) + `"`
}

func quotedURIs(uris []*url.URL) string {
	quoted := make([]string, 0, len(uris))
	for _, u := range uris {
		if u == nil {
			continue
		}
		quoted = append(quoted, quotedParamValue(u.String()))
	}
	return strings.Join(quoted, ",")
}
