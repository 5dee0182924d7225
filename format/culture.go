// Package format isolates context-dependent text formatting and parsing so
// conversion rules can reference "format with context" abstractly: culture
// handles for numeric text, and struct-tag derived per-field settings.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Culture is a read-only culture/format-provider handle. Integral formatting
// follows the locale's CLDR decimal pattern (grouping included); fractional
// formatting keeps the shortest round-trip digits with the locale decimal
// separator. Parsing accepts the locale's group and decimal separators.
type Culture struct {
	tag     language.Tag
	printer *message.Printer
	decimal rune
	group   rune
}

// NewCulture creates a culture handle for the given language tag.
func NewCulture(tag language.Tag) *Culture {
	c := &Culture{
		tag:     tag,
		printer: message.NewPrinter(tag),
		decimal: '.',
		group:   ',',
	}
	// derive the separators from a formatted probe value
	probe := c.printer.Sprint(number.Decimal(1234567.5))
	var seps []rune
	for _, r := range probe {
		if r < '0' || r > '9' {
			seps = append(seps, r)
		}
	}
	if len(seps) > 0 {
		c.decimal = seps[len(seps)-1]
		if len(seps) > 1 {
			c.group = seps[0]
		} else {
			c.group = 0
		}
	}
	return c
}

// CultureFor creates a culture handle from a BCP 47 tag string, e.g. "de-DE".
// Unparsable tags yield nil, selecting invariant behavior.
func CultureFor(lang string) *Culture {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil
	}
	return NewCulture(tag)
}

// Tag returns the underlying language tag.
func (c *Culture) Tag() language.Tag {
	return c.tag
}

// FormatInt renders v using the culture's decimal pattern.
func (c *Culture) FormatInt(v int64) string {
	return c.printer.Sprint(number.Decimal(v))
}

// FormatUint renders v using the culture's decimal pattern.
func (c *Culture) FormatUint(v uint64) string {
	return c.printer.Sprint(number.Decimal(v))
}

// FormatFloat renders v with shortest round-trip digits and the culture's
// decimal separator. bitSize selects float32 or float64 precision.
func (c *Culture) FormatFloat(v float64, bitSize int) string {
	return c.Localize(strconv.FormatFloat(v, 'f', -1, bitSize))
}

// Localize rewrites invariant numeric text into the culture's notation.
func (c *Culture) Localize(text string) string {
	if c.decimal == '.' {
		return text
	}
	return strings.Replace(text, ".", string(c.decimal), 1)
}

// Canonical rewrites culture numeric text into invariant notation: group
// separators removed, the decimal separator mapped to a period.
func (c *Culture) Canonical(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch r {
		case c.group, '\u00a0', '\u202f': //group separators, incl. CLDR spaces
			continue
		case c.decimal:
			sb.WriteRune('.')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ParseInt parses culture numeric text as a signed integer.
func (c *Culture) ParseInt(text string) (int64, bool) {
	v, err := strconv.ParseInt(c.Canonical(text), 10, 64)
	return v, err == nil
}

// ParseUint parses culture numeric text as an unsigned integer.
func (c *Culture) ParseUint(text string) (uint64, bool) {
	v, err := strconv.ParseUint(c.Canonical(text), 10, 64)
	return v, err == nil
}

// ParseFloat parses culture numeric text as a float.
func (c *Culture) ParseFloat(text string) (float64, bool) {
	v, err := strconv.ParseFloat(c.Canonical(text), 64)
	return v, err == nil
}
