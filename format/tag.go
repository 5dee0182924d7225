package format

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"

	ftime "github.com/kinkade/coerce/format/time"
)

const (
	// TagName is the struct tag consulted for per-field conversion settings.
	TagName = "format"
)

// Tag carries per-field conversion settings parsed from a struct tag.
type Tag struct {
	Name string //output/input name override

	DateFormat string //ISO 2022-07-15 date format, translated into TimeLayout
	TimeLayout string //Go time layout
	Format     string //free-form format, e.g. "integer" for enums

	Language string //BCP 47 culture tag

	Omitempty bool
	Ignore    bool
}

func (t *Tag) update(key string, value string, strictMode bool) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "dateformat", "isodateformat", "iso20220715":
		t.DateFormat = value
		t.TimeLayout = ftime.DateFormatToTimeLayout(value)
	case "timelayout", "datelayout", "rfc3339":
		t.TimeLayout = value
	case "format":
		t.Format = value
	case "lang", "language":
		t.Language = value
	case "omitempty":
		t.Omitempty = true
	case "ignore", "-", "transient":
		t.Ignore = true
	default:
		if strictMode {
			return fmt.Errorf("unknown key %s", key)
		}
	}
	return nil
}

// Parse reads conversion settings from a struct tag; additional tag names act
// as non-strict fallbacks.
func Parse(tag reflect.StructTag, names ...string) (*Tag, error) {
	ret := &Tag{}
	names = append([]string{TagName}, names...)
	for i, name := range names {
		encoded := tag.Get(name)
		if encoded == "" {
			continue
		}
		cursor := parsly.NewCursor("", []byte(encoded), 0)
		for cursor.Pos < len(cursor.Input) {
			key, value := matchPair(cursor)
			if key == "" { //bare token, e.g. "omitempty" or "-"
				if value == "" {
					continue
				}
				key, value = value, ""
			}
			if err := ret.update(key, value, i == 0); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

// ParseTime parses a time value with the tag layout, RFC3339 when unset.
func (t *Tag) ParseTime(value string) (time.Time, error) {
	return ftime.Parse(t.TimeLayout, value)
}

// FormatTime renders a time value with the tag layout, RFC3339 when unset.
func (t *Tag) FormatTime(ts time.Time) string {
	if t.TimeLayout == "" {
		return ts.Format(time.RFC3339)
	}
	return ts.Format(t.TimeLayout)
}

// Culture returns the culture handle selected by the tag language, nil when
// none is set or the tag is unparsable.
func (t *Tag) Culture() *Culture {
	if t.Language == "" {
		return nil
	}
	return CultureFor(t.Language)
}

const (
	comaTerminatorToken = iota
	scopeBlockToken
)

var (
	comaTerminatorMatcher = parsly.NewToken(comaTerminatorToken, "coma", matcher.NewTerminator(',', true))
	scopeBlockMatcher     = parsly.NewToken(scopeBlockToken, "{ .... }", matcher.NewBlock('{', '}', '\\'))
)

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	match := cursor.MatchAny(scopeBlockMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		match = cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if index := strings.Index(value, "="); index != -1 {
		key = value[:index]
		value = value[index+1:]
	}
	return key, value
}
