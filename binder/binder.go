// Package binder coerces loosely typed payload values, such as decoded JSON
// object members, into statically typed struct fields using the conversion
// engine. Field access goes through xunsafe accessors; per-field conversion
// settings come from "format" struct tags.
package binder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/viant/xunsafe"

	"github.com/kinkade/coerce"
	"github.com/kinkade/coerce/format"
)

// Binder binds payload maps into destination structs.
type Binder struct {
	engine *coerce.Engine
	cache  sync.Map // map[reflect.Type]*structType
}

// Option configures a Binder.
type Option func(b *Binder)

// WithEngine selects the conversion engine, coerce.Default otherwise.
func WithEngine(e *coerce.Engine) Option {
	return func(b *Binder) {
		b.engine = e
	}
}

// New creates a binder.
func New(opts ...Option) *Binder {
	b := &Binder{engine: coerce.Default}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type boundField struct {
	goName  string
	name    string //lower-cased match name
	tagName string
	ignore  bool
	typ     reflect.Type
	ctx     *coerce.Context
	xField  *xunsafe.Field
}

type structType struct {
	fields []*boundField
}

// Bind coerces src values into the exported fields of the struct pointed to
// by dst. Field matching tries the tag name first, then the field name
// case-insensitively; unmatched keys are ignored. A value that cannot be
// coerced into a non-nullable field yields an error naming that field;
// binding continues with the remaining fields.
func (b *Binder) Bind(dst any, src map[string]any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("binder: destination must be a non-nil struct pointer, got %T", dst)
	}
	sType, err := b.structTypeFor(rv.Elem().Type())
	if err != nil {
		return err
	}
	ptr := xunsafe.AsPointer(dst)

	var lowered map[string]any
	var errs []error
	for _, field := range sType.fields {
		if field.ignore {
			continue
		}
		value, ok := src[field.tagName]
		if !ok {
			value, ok = src[field.goName]
		}
		if !ok {
			if lowered == nil {
				lowered = make(map[string]any, len(src))
				for key, v := range src {
					lowered[strings.ToLower(key)] = v
				}
			}
			value, ok = lowered[field.name]
		}
		if !ok {
			continue
		}
		if value == nil {
			if field.typ.Kind() == reflect.Ptr {
				field.xField.SetValue(ptr, reflect.Zero(field.typ).Interface())
			}
			continue
		}
		out, ok := b.engine.Coerce(value, field.typ, field.ctx)
		if !ok {
			errs = append(errs, fmt.Errorf("binder: cannot bind %v (%T) into field %v (%s)", value, value, field.goName, field.typ))
			continue
		}
		field.xField.SetValue(ptr, out)
	}
	return errors.Join(errs...)
}

func (b *Binder) structTypeFor(t reflect.Type) (*structType, error) {
	if v, ok := b.cache.Load(t); ok {
		return v.(*structType), nil
	}
	sType := &structType{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, err := format.Parse(field.Tag)
		if err != nil {
			return nil, fmt.Errorf("binder: field %v.%v: %w", t, field.Name, err)
		}
		bound := &boundField{
			goName: field.Name,
			name:   strings.ToLower(field.Name),
			ignore: tag.Ignore,
			typ:    field.Type,
			xField: xunsafe.NewField(field),
		}
		bound.tagName = tag.Name
		if bound.tagName == "" {
			if jsonTag, _, _ := strings.Cut(field.Tag.Get("json"), ","); jsonTag != "" {
				if jsonTag == "-" {
					bound.ignore = true
				} else {
					bound.tagName = jsonTag
				}
			}
		}
		bound.ctx = fieldContext(tag)
		sType.fields = append(sType.fields, bound)
	}
	b.cache.Store(t, sType)
	return sType, nil
}

// fieldContext builds the per-field conversion context, nil when the tag
// carries no conversion settings.
func fieldContext(tag *format.Tag) *coerce.Context {
	if tag.Format == "" && tag.TimeLayout == "" && tag.Language == "" {
		return nil
	}
	ctx := &coerce.Context{Format: tag.Format, Culture: tag.Culture()}
	if tag.TimeLayout != "" {
		ctx.Format = tag.TimeLayout
	}
	return ctx
}
