package coerce

import (
	"net/url"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// category classifies a type for conversion dispatch. The set is closed:
// anything not listed here is opaque and never convertible.
type category uint8

const (
	catOpaque category = iota
	catBool
	catInt8
	catInt16
	catInt32
	catInt64
	catInt
	catUint8
	catUint16
	catUint32
	catUint64
	catUint
	catFloat32
	catFloat64
	catDecimal
	catString
	catBytes
	catGUID
	catURI
	catDateTime
	catDateTimeOffset
	catDuration
	catEnum
	catType
	catNullable
)

func (c category) signed() bool {
	return c >= catInt8 && c <= catInt
}

func (c category) unsigned() bool {
	return c >= catUint8 && c <= catUint
}

func (c category) float() bool {
	return c == catFloat32 || c == catFloat64
}

// numeric reports whether values of the category carry a numeric ordinal,
// enum included.
func (c category) numeric() bool {
	return c.signed() || c.unsigned() || c.float() || c == catDecimal || c == catEnum
}

var (
	typeType     = reflect.TypeOf((*reflect.Type)(nil)).Elem()
	timeType     = reflect.TypeOf(time.Time{})
	offsetType   = reflect.TypeOf(OffsetDateTime{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
	urlType      = reflect.TypeOf(url.URL{})
	decimalType  = reflect.TypeOf(decimal.Decimal{})
)

type typeInfo struct {
	typ  reflect.Type
	cat  category
	elem *typeInfo //nullable wrapper element
}

var typeInfos sync.Map // map[reflect.Type]*typeInfo

// infoOf returns the cached classification of t, computing it on first use.
func infoOf(t reflect.Type) *typeInfo {
	if v, ok := typeInfos.Load(t); ok {
		return v.(*typeInfo)
	}
	info := &typeInfo{typ: t, cat: classify(t)}
	if info.cat == catNullable {
		info.elem = infoOf(t.Elem())
	}
	typeInfos.Store(t, info)
	return info
}

var kindCats = map[reflect.Kind]category{
	reflect.Int:     catInt,
	reflect.Int8:    catInt8,
	reflect.Int16:   catInt16,
	reflect.Int32:   catInt32,
	reflect.Int64:   catInt64,
	reflect.Uint:    catUint,
	reflect.Uint8:   catUint8,
	reflect.Uint16:  catUint16,
	reflect.Uint32:  catUint32,
	reflect.Uint64:  catUint64,
	reflect.Float32: catFloat32,
	reflect.Float64: catFloat64,
}

func classify(t reflect.Type) category {
	switch t {
	case timeType:
		return catDateTime
	case offsetType:
		return catDateTimeOffset
	case durationType:
		return catDuration
	case uuidType:
		return catGUID
	case urlType:
		return catURI
	case decimalType:
		return catDecimal
	case typeType:
		return catType
	}
	switch kind := t.Kind(); kind {
	case reflect.Ptr:
		return catNullable
	case reflect.Bool:
		return catBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if t.PkgPath() != "" { //defined integral type: treated as an enum
			return catEnum
		}
		return kindCats[kind]
	case reflect.Float32, reflect.Float64:
		return kindCats[kind]
	case reflect.String:
		return catString
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return catBytes
		}
	}
	return catOpaque
}
