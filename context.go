package coerce

import (
	"strings"
	"time"

	"github.com/kinkade/coerce/format"
	ftime "github.com/kinkade/coerce/format/time"
)

// TimeStyle controls how offset-less date-time text and values are
// interpreted during conversion.
type TimeStyle uint8

const (
	// AssumeLocal interprets offset-less input in the process local zone.
	AssumeLocal TimeStyle = 1 << iota
	// AssumeUniversal interprets offset-less input as UTC.
	AssumeUniversal
	// AdjustToUniversal normalizes the converted value to UTC.
	AdjustToUniversal
)

// Context carries optional per call-site conversion settings: a format
// string, a culture handle and date-time styles. A nil Context selects the
// invariant defaults. Contexts are read-only after construction and safe to
// share between calls.
type Context struct {
	Format  string
	Culture *format.Culture
	Styles  TimeStyle
}

func (c *Context) format() string {
	if c == nil {
		return ""
	}
	return c.Format
}

func (c *Context) culture() *format.Culture {
	if c == nil {
		return nil
	}
	return c.Culture
}

func (c *Context) styles() TimeStyle {
	if c == nil {
		return 0
	}
	return c.Styles
}

// timeLayout resolves the context format to a Go time layout, defaulting to
// the round-trip RFC3339Nano layout.
func (c *Context) timeLayout() string {
	f := c.format()
	if f == "" {
		return time.RFC3339Nano
	}
	return ftime.LayoutOf(f)
}

// integerFormat reports whether the context forces ordinal text for enums.
func (c *Context) integerFormat() bool {
	f := c.format()
	return strings.EqualFold(f, "integer") || strings.EqualFold(f, "d")
}
