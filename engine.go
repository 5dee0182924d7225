package coerce

import (
	"reflect"
	"sync"
)

// Engine performs category dispatch. It is stateless per call; the only
// shared resources are the injected type-name resolver and the enum name
// tables, both read-only during conversions, so an Engine is safe for
// concurrent use.
type Engine struct {
	types Resolver
	enums sync.Map // map[reflect.Type]*enumTable
}

// Option configures an Engine.
type Option func(e *Engine)

// WithResolver injects the type-name resolver consulted by string to
// type-descriptor conversions.
func WithResolver(r Resolver) Option {
	return func(e *Engine) {
		e.types = r
	}
}

// New creates a conversion engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Default is the engine used by TryConvert and RegisterEnum.
var Default = New()

// TryConvert attempts to convert src into a T using the default engine. It
// returns the converted value and true on success, or T's zero value and
// false when the pair is incompatible or the value cannot be represented.
func TryConvert[S, T any](src S, ctx *Context) (T, bool) {
	return TryConvertIn[S, T](Default, src, ctx)
}

// TryConvertIn is TryConvert against an explicit engine.
func TryConvertIn[S, T any](e *Engine, src S, ctx *Context) (T, bool) {
	var zero T
	out, ok := e.convert(src, reflect.TypeOf((*S)(nil)).Elem(), reflect.TypeOf((*T)(nil)).Elem(), ctx)
	if !ok {
		return zero, false
	}
	value, ok := out.(T)
	if !ok { //dispatch produced a mistyped result: engine defect, fail closed
		return zero, false
	}
	return value, true
}

// Coerce converts src into a value whose dynamic type is exactly target.
// It serves callers that discover target types at runtime; the source
// category is derived from src's dynamic type. On failure the returned value
// is nil.
func (e *Engine) Coerce(src any, target reflect.Type, ctx *Context) (any, bool) {
	if target == nil {
		return nil, false
	}
	var srcType reflect.Type
	if t, ok := src.(reflect.Type); ok {
		srcType, src = typeType, t
	} else {
		srcType = reflect.TypeOf(src)
	}
	return e.convert(src, srcType, target, ctx)
}

// convert applies the nullable-target policy around convertValue: a failed
// conversion into a pointer target degrades to success with a nil pointer.
func (e *Engine) convert(src any, srcType, dstType reflect.Type, ctx *Context) (any, bool) {
	dst := infoOf(dstType)
	if dst.cat != catNullable {
		return e.convertValue(src, srcType, dst, ctx)
	}
	out, ok := e.convertValue(src, srcType, dst.elem, ctx)
	if !ok {
		return reflect.Zero(dstType).Interface(), true
	}
	ptr := reflect.New(dst.elem.typ)
	ptr.Elem().Set(reflect.ValueOf(out))
	return ptr.Interface(), true
}

// convertValue unwraps a nullable source and dispatches on the category
// pair. dst is always a non-pointer category here unless the target nests
// pointers, in which case it re-enters convert.
func (e *Engine) convertValue(src any, srcType reflect.Type, dst *typeInfo, ctx *Context) (any, bool) {
	if dst.cat == catNullable {
		return e.convert(src, srcType, dst.typ, ctx)
	}
	if dst.cat == catOpaque {
		return nil, false
	}
	if srcType == nil { //untyped nil source behaves as an absent nullable
		return e.absent(dst)
	}
	s := infoOf(srcType)
	for s.cat == catNullable {
		rv := reflect.ValueOf(src)
		if !rv.IsValid() || rv.IsNil() {
			return e.absent(dst)
		}
		src = rv.Elem().Interface()
		s = s.elem
	}
	if s.cat == catOpaque {
		return nil, false
	}
	if s.typ == dst.typ { //identity
		return src, true
	}
	out, ok := e.dispatch(src, s, dst, ctx)
	if !ok {
		return nil, false
	}
	return materialize(out, dst.typ), true
}

// absent implements the absent-source rule: only a string target accepts an
// absent value, producing the empty "no value" marker.
func (e *Engine) absent(dst *typeInfo) (any, bool) {
	if dst.cat == catString {
		return materialize("", dst.typ), true
	}
	return nil, false
}

// materialize adjusts a canonical dispatch result to the exact target type,
// narrowing numeric widths and applying defined-type names.
func materialize(out any, target reflect.Type) any {
	if target.Kind() == reflect.Interface {
		return out
	}
	if reflect.TypeOf(out) == target {
		return out
	}
	return reflect.ValueOf(out).Convert(target).Interface()
}
