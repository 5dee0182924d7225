package coerce

import (
	"encoding/base64"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ftime "github.com/kinkade/coerce/format/time"
)

// dispatch implements the category pair matrix. Source and target categories
// are both concrete and non-nullable here, and the identity pair has already
// been handled. Every unlisted pair fails.
func (e *Engine) dispatch(src any, s, dst *typeInfo, ctx *Context) (any, bool) {
	switch {
	case dst.cat == catBool:
		return e.toBool(src, s, ctx)
	case dst.cat.signed():
		return e.toInt64(src, s, ctx)
	case dst.cat.unsigned():
		return e.toUint64(src, s, ctx)
	case dst.cat.float():
		return e.toFloat64(src, s, ctx)
	case dst.cat == catDecimal:
		return e.toDecimal(src, s, ctx)
	case dst.cat == catString:
		return e.toString(src, s, ctx)
	case dst.cat == catBytes:
		return e.toBytes(src, s)
	case dst.cat == catGUID:
		return e.toGUID(src, s)
	case dst.cat == catURI:
		return e.toURI(src, s)
	case dst.cat == catDateTime:
		return e.toDateTime(src, s, ctx)
	case dst.cat == catDateTimeOffset:
		return e.toOffsetDateTime(src, s, ctx)
	case dst.cat == catDuration:
		return e.toDuration(src, s, ctx)
	case dst.cat == catEnum:
		return e.toEnum(src, s, dst, ctx)
	case dst.cat == catType:
		return e.toType(src, s)
	}
	return nil, false
}

func (e *Engine) toBool(src any, s *typeInfo, ctx *Context) (any, bool) {
	switch {
	case s.cat == catBool:
		return normAs[bool](src), true
	case s.cat.signed(), s.cat == catEnum:
		return ordinalOf(src) != 0, true
	case s.cat.unsigned():
		return normUint64(src) != 0, true
	case s.cat.float():
		return normFloat64(src) != 0, true
	case s.cat == catDecimal:
		return !normAs[decimal.Decimal](src).IsZero(), true
	case s.cat == catString:
		return parseBool(normAs[string](src), ctx)
	}
	return nil, false
}

func parseBool(str string, ctx *Context) (any, bool) {
	switch {
	case strings.EqualFold(str, "true"):
		return true, true
	case strings.EqualFold(str, "false"):
		return false, true
	}
	if v, err := strconv.ParseBool(str); err == nil {
		return v, true
	}
	// numeric fallback: zero/nonzero
	if f, ok := parseFloat64(str, ctx); ok {
		return f != 0, true
	}
	return nil, false
}

func (e *Engine) toInt64(src any, s *typeInfo, ctx *Context) (any, bool) {
	switch {
	case s.cat == catBool:
		if normAs[bool](src) {
			return int64(1), true
		}
		return int64(0), true
	case s.cat.signed(), s.cat == catEnum:
		return ordinalOf(src), true
	case s.cat.unsigned():
		return int64(normUint64(src)), true
	case s.cat.float():
		return int64(normFloat64(src)), true
	case s.cat == catDecimal:
		return normAs[decimal.Decimal](src).IntPart(), true
	case s.cat == catString:
		if v, ok := parseInt64(normAs[string](src), ctx); ok {
			return v, true
		}
	}
	return nil, false
}

func (e *Engine) toUint64(src any, s *typeInfo, ctx *Context) (any, bool) {
	switch {
	case s.cat == catBool:
		if normAs[bool](src) {
			return uint64(1), true
		}
		return uint64(0), true
	case s.cat.signed(), s.cat == catEnum:
		return uint64(ordinalOf(src)), true
	case s.cat.unsigned():
		return normUint64(src), true
	case s.cat.float():
		return uint64(normFloat64(src)), true
	case s.cat == catDecimal:
		return uint64(normAs[decimal.Decimal](src).IntPart()), true
	case s.cat == catString:
		if v, ok := parseUint64(normAs[string](src), ctx); ok {
			return v, true
		}
	}
	return nil, false
}

func (e *Engine) toFloat64(src any, s *typeInfo, ctx *Context) (any, bool) {
	switch {
	case s.cat == catBool:
		if normAs[bool](src) {
			return float64(1), true
		}
		return float64(0), true
	case s.cat.signed(), s.cat == catEnum:
		return float64(ordinalOf(src)), true
	case s.cat.unsigned():
		return float64(normUint64(src)), true
	case s.cat.float():
		return normFloat64(src), true
	case s.cat == catDecimal:
		return normAs[decimal.Decimal](src).InexactFloat64(), true
	case s.cat == catString:
		if v, ok := parseFloat64(normAs[string](src), ctx); ok {
			return v, true
		}
	}
	return nil, false
}

func (e *Engine) toDecimal(src any, s *typeInfo, ctx *Context) (any, bool) {
	switch {
	case s.cat == catBool:
		if normAs[bool](src) {
			return decimal.NewFromInt(1), true
		}
		return decimal.NewFromInt(0), true
	case s.cat.signed(), s.cat == catEnum:
		return decimal.NewFromInt(ordinalOf(src)), true
	case s.cat.unsigned():
		return decimal.NewFromUint64(normUint64(src)), true
	case s.cat.float():
		return decimal.NewFromFloat(normFloat64(src)), true
	case s.cat == catString:
		str := normAs[string](src)
		if culture := ctx.culture(); culture != nil {
			str = culture.Canonical(str)
		}
		if d, err := decimal.NewFromString(str); err == nil {
			return d, true
		}
	}
	return nil, false
}

func (e *Engine) toString(src any, s *typeInfo, ctx *Context) (any, bool) {
	culture := ctx.culture()
	switch {
	case s.cat == catBool:
		// locale-invariant canonical literals
		if normAs[bool](src) {
			return "True", true
		}
		return "False", true
	case s.cat == catEnum:
		ordinal := ordinalOf(src)
		if !ctx.integerFormat() {
			if name, ok := e.enumName(s.typ, ordinal); ok {
				return name, true
			}
		}
		return strconv.FormatInt(ordinal, 10), true
	case s.cat.signed():
		v := normInt64(src)
		if culture != nil {
			return culture.FormatInt(v), true
		}
		return strconv.FormatInt(v, 10), true
	case s.cat.unsigned():
		v := normUint64(src)
		if culture != nil {
			return culture.FormatUint(v), true
		}
		return strconv.FormatUint(v, 10), true
	case s.cat.float():
		bitSize := 64
		if s.cat == catFloat32 {
			bitSize = 32
		}
		v := normFloat64(src)
		if culture != nil {
			return culture.FormatFloat(v, bitSize), true
		}
		return strconv.FormatFloat(v, 'f', -1, bitSize), true
	case s.cat == catDecimal:
		text := normAs[decimal.Decimal](src).String()
		if culture != nil {
			return culture.Localize(text), true
		}
		return text, true
	case s.cat == catString:
		return normAs[string](src), true
	case s.cat == catBytes:
		return base64.StdEncoding.EncodeToString(normBytes(src)), true
	case s.cat == catGUID:
		return normAs[uuid.UUID](src).String(), true
	case s.cat == catURI:
		u := normAs[url.URL](src)
		return u.String(), true
	case s.cat == catDateTime:
		return normAs[time.Time](src).Format(ctx.timeLayout()), true
	case s.cat == catDateTimeOffset:
		return normAs[OffsetDateTime](src).Format(ctx.timeLayout()), true
	case s.cat == catDuration:
		return formatDuration(normAs[time.Duration](src), ctx), true
	case s.cat == catType:
		t := src.(reflect.Type)
		if e.types != nil {
			return e.types.Name(t), true
		}
		return t.String(), true
	}
	return nil, false
}

func formatDuration(d time.Duration, ctx *Context) string {
	switch strings.ToLower(ctx.format()) {
	case "s", "seconds":
		return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
	case "ms":
		return strconv.FormatInt(d.Milliseconds(), 10)
	case "ns":
		return strconv.FormatInt(d.Nanoseconds(), 10)
	}
	return d.String()
}

func (e *Engine) toBytes(src any, s *typeInfo) (any, bool) {
	switch s.cat {
	case catBytes:
		return normBytes(src), true
	case catString:
		if data, err := base64.StdEncoding.DecodeString(normAs[string](src)); err == nil {
			return data, true
		}
	case catGUID:
		g := normAs[uuid.UUID](src)
		return append([]byte(nil), g[:]...), true
	}
	return nil, false
}

func (e *Engine) toGUID(src any, s *typeInfo) (any, bool) {
	switch s.cat {
	case catGUID:
		return normAs[uuid.UUID](src), true
	case catString:
		if g, err := uuid.Parse(normAs[string](src)); err == nil {
			return g, true
		}
	case catBytes:
		data := normBytes(src)
		if len(data) != 16 {
			return nil, false
		}
		if g, err := uuid.FromBytes(data); err == nil {
			return g, true
		}
	}
	return nil, false
}

func (e *Engine) toURI(src any, s *typeInfo) (any, bool) {
	switch s.cat {
	case catURI:
		return normAs[url.URL](src), true
	case catString:
		u, err := url.Parse(normAs[string](src))
		if err != nil || !u.IsAbs() {
			return nil, false
		}
		return *u, true
	}
	return nil, false
}

func (e *Engine) toDateTime(src any, s *typeInfo, ctx *Context) (any, bool) {
	switch s.cat {
	case catDateTime:
		return normAs[time.Time](src), true
	case catDateTimeOffset:
		t := normAs[OffsetDateTime](src).Time
		if ctx.styles()&AdjustToUniversal != 0 {
			t = t.UTC()
		}
		return t, true
	case catString:
		return parseDateTime(normAs[string](src), ctx)
	}
	return nil, false
}

func (e *Engine) toOffsetDateTime(src any, s *typeInfo, ctx *Context) (any, bool) {
	switch s.cat {
	case catDateTimeOffset:
		return normAs[OffsetDateTime](src), true
	case catDateTime:
		t := normAs[time.Time](src)
		styles := ctx.styles()
		switch {
		case styles&AdjustToUniversal != 0:
			t = t.UTC()
		case styles&AssumeUniversal != 0:
			// reinterpret the wall clock reading as UTC
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
		}
		return OffsetDateTime{Time: t}, true
	case catString:
		t, ok := parseDateTime(normAs[string](src), ctx)
		if !ok {
			return nil, false
		}
		return OffsetDateTime{Time: t.(time.Time)}, true
	}
	return nil, false
}

func parseDateTime(str string, ctx *Context) (any, bool) {
	loc := time.UTC
	if ctx.styles()&AssumeLocal != 0 {
		loc = time.Local
	}
	t, err := ftime.ParseInLocation(ctx.timeLayout(), str, loc)
	if err != nil {
		return nil, false
	}
	if ctx.styles()&AdjustToUniversal != 0 {
		t = t.UTC()
	}
	return t, true
}

func (e *Engine) toDuration(src any, s *typeInfo, ctx *Context) (any, bool) {
	switch s.cat {
	case catDuration:
		return normAs[time.Duration](src), true
	case catString:
		str := normAs[string](src)
		switch strings.ToLower(ctx.format()) {
		case "s", "seconds":
			if f, ok := parseFloat64(str, ctx); ok {
				return time.Duration(f * float64(time.Second)), true
			}
		case "ms":
			if v, ok := parseInt64(str, ctx); ok {
				return time.Duration(v) * time.Millisecond, true
			}
		case "ns":
			if v, ok := parseInt64(str, ctx); ok {
				return time.Duration(v), true
			}
		default:
			if d, err := time.ParseDuration(str); err == nil {
				return d, true
			}
		}
	}
	return nil, false
}

func (e *Engine) toEnum(src any, s, dst *typeInfo, ctx *Context) (any, bool) {
	switch {
	case s.cat == catEnum:
		return ordinalOf(src), true
	case s.cat == catString:
		str := normAs[string](src)
		if ordinal, ok := e.enumOrdinal(dst.typ, str); ok {
			return ordinal, true
		}
		if v, err := strconv.ParseInt(str, 10, 64); err == nil {
			return v, true
		}
		return nil, false
	}
	// any numeric or boolean source sets the ordinal directly
	return e.toInt64(src, s, ctx)
}

func (e *Engine) toType(src any, s *typeInfo) (any, bool) {
	if s.cat == catString && e.types != nil {
		if t, ok := e.types.Resolve(normAs[string](src)); ok {
			return t, true
		}
	}
	return nil, false
}
