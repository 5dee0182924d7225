package coerce

import (
	"reflect"
	"strings"
)

// Integral constrains enum registration to defined integral types.
type Integral interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// enumTable holds the declared members of one enum type. Ordinal lookup by
// name is case-insensitive.
type enumTable struct {
	names    map[int64]string
	ordinals map[string]int64
}

// RegisterEnum installs the declared member names of E on the default
// engine. Go has no enum-member reflection, so registration is the source of
// "declared members"; unregistered defined integral types still convert, but
// format as plain ordinals.
func RegisterEnum[E Integral](members map[string]E) {
	RegisterEnumIn(Default, members)
}

// RegisterEnumIn installs the declared member names of E on e. Registration
// is a startup concern: tables are read-only once conversions begin.
func RegisterEnumIn[E Integral](e *Engine, members map[string]E) {
	table := &enumTable{
		names:    make(map[int64]string, len(members)),
		ordinals: make(map[string]int64, len(members)),
	}
	for name, value := range members {
		ordinal := int64(value)
		table.names[ordinal] = name
		table.ordinals[strings.ToLower(name)] = ordinal
	}
	e.enums.Store(reflect.TypeOf((*E)(nil)).Elem(), table)
}

func (e *Engine) enumName(t reflect.Type, ordinal int64) (string, bool) {
	v, ok := e.enums.Load(t)
	if !ok {
		return "", false
	}
	name, ok := v.(*enumTable).names[ordinal]
	return name, ok
}

func (e *Engine) enumOrdinal(t reflect.Type, name string) (int64, bool) {
	v, ok := e.enums.Load(t)
	if !ok {
		return 0, false
	}
	ordinal, ok := v.(*enumTable).ordinals[strings.ToLower(name)]
	return ordinal, ok
}
