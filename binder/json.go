package binder

import (
	"github.com/francoispqt/gojay"
)

// payload decodes an arbitrary JSON object into key/value pairs.
type payload map[string]any

func (p payload) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var value any
	if err := dec.Interface(&value); err != nil {
		return err
	}
	p[key] = value
	return nil
}

func (p payload) NKeys() int {
	return 0
}

// BindJSON decodes a JSON object and binds its members into dst.
func (b *Binder) BindJSON(dst any, data []byte) error {
	values := payload{}
	if err := gojay.UnmarshalJSONObject(data, values); err != nil {
		return err
	}
	return b.Bind(dst, values)
}
