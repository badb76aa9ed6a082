package ics

import (
	"strings"
	"unicode/utf8"
)

// composer assembles the lines of one component. Every line after the first
// is prefixed by the configured newline and folded to the configured length.
type composer struct {
	b      strings.Builder
	config *SerializationConfiguration
}

func newComposer(config *SerializationConfiguration) *composer {
	if config == nil {
		config = defaultSerializationOptions()
	}
	return &composer{config: config}
}

func (c *composer) line(s string) {
	if c.b.Len() > 0 {
		c.b.WriteString(c.config.NewLine)
	}
	c.b.WriteString(foldLine(s, c.config.MaxLength, c.config.NewLine))
}

func (c *composer) begin(name ComponentType) {
	c.line("BEGIN:" + string(name))
}

func (c *composer) end(name ComponentType) {
	c.line("END:" + string(name))
}

// component writes an already folded nested block.
func (c *composer) component(sub Component) {
	if isNilComponent(sub) {
		return
	}
	nested := newComposer(c.config)
	sub.compose(nested)
	if c.b.Len() > 0 {
		c.b.WriteString(c.config.NewLine)
	}
	c.b.WriteString(nested.String())
}

func (c *composer) String() string {
	return c.b.String()
}

// optional appends p if it is set.
func optional[E any, P interface {
	*E
	Property
}](c *composer, p P) {
	if p == nil {
		return
	}
	c.line(p.Formatted())
}

// repeated appends one line per element, in order.
func repeated[E any, P interface {
	*E
	Property
}](c *composer, ps []P) {
	for _, p := range ps {
		optional[E, P](c, p)
	}
}

func nested[C Component](c *composer, cs []C) {
	for _, sub := range cs {
		c.component(sub)
	}
}

// foldLine splits line into physical lines of at most maxLength octets.
// Continuation lines start with a single space, which counts towards the
// limit. Multi-byte characters are never split.
func foldLine(line string, maxLength int, newLine string) string {
	if maxLength < 2 || len(line) <= maxLength {
		return line
	}
	var b strings.Builder
	b.Grow(len(line) + (len(line)/(maxLength-1)+1)*(len(newLine)+1))
	limit := maxLength
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		if cut == 0 {
			_, cut = utf8.DecodeRuneInString(line)
		}
		b.WriteString(line[:cut])
		b.WriteString(newLine)
		b.WriteByte(' ')
		line = line[cut:]
		limit = maxLength - 1
	}
	b.WriteString(line)
	return b.String()
}
