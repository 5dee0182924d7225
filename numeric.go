package coerce

import (
	"reflect"
	"strconv"
)

// normAs reduces a possibly defined-type source value to its category
// carrier type.
func normAs[T any](src any) T {
	if v, ok := src.(T); ok {
		return v
	}
	return reflect.ValueOf(src).Convert(reflect.TypeOf((*T)(nil)).Elem()).Interface().(T)
}

func normInt64(src any) int64 {
	switch v := src.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	}
	return reflect.ValueOf(src).Int()
}

func normUint64(src any) uint64 {
	switch v := src.(type) {
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	}
	return reflect.ValueOf(src).Uint()
}

func normFloat64(src any) float64 {
	switch v := src.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return reflect.ValueOf(src).Float()
}

func normBytes(src any) []byte {
	if v, ok := src.([]byte); ok {
		return v
	}
	return reflect.ValueOf(src).Bytes()
}

// ordinalOf extracts the underlying ordinal of an enum value regardless of
// its integral width or sign.
func ordinalOf(src any) int64 {
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	}
	return 0
}

// parseInt64 parses integral text, culture-aware when the context carries a
// culture, invariant base-10 otherwise.
func parseInt64(str string, ctx *Context) (int64, bool) {
	if culture := ctx.culture(); culture != nil {
		return culture.ParseInt(str)
	}
	v, err := strconv.ParseInt(str, 10, 64)
	return v, err == nil
}

func parseUint64(str string, ctx *Context) (uint64, bool) {
	if culture := ctx.culture(); culture != nil {
		return culture.ParseUint(str)
	}
	v, err := strconv.ParseUint(str, 10, 64)
	return v, err == nil
}

func parseFloat64(str string, ctx *Context) (float64, bool) {
	if culture := ctx.culture(); culture != nil {
		return culture.ParseFloat(str)
	}
	v, err := strconv.ParseFloat(str, 64)
	return v, err == nil
}
