package skema

import (
	"reflect"

	js "github.com/reoring/skema/jsonschema"
)

// MixedKind is the name of the kind that accepts any value. It is compatible
// with every other kind in Concat.
const MixedKind = "mixed"

// Kind is the per-kind capability a Node is parameterized by: the immutable
// base type tag and its type check. Check must unwrap boxed representations
// (pointers, named types) into T.
type Kind[T any] struct {
	Name  string
	Check func(v any) (T, bool)

	// JSONType is the JSON Schema type; empty for kinds without one.
	JSONType string
	// Project maps one of the kind's tests onto JSON Schema keywords. Tests
	// it does not know are left out of the projection.
	Project func(s *js.Schema, t TestDescription)
}

func (k *Kind[T]) compatible(o *Kind[T]) bool {
	if k == o {
		return true
	}
	return k.Name == o.Name || k.Name == MixedKind || o.Name == MixedKind
}

// Unbox dereferences non-nil pointers until a non-pointer value is reached.
func Unbox(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// ConvertKind converts v into T when v (after Unbox) has the reflect kind k,
// which lets named types such as `type Flag bool` pass a bool check.
func ConvertKind[T any](v any, k reflect.Kind) (T, bool) {
	var zero T
	tt := reflect.TypeOf(&zero).Elem()
	u := Unbox(v)
	if t, ok := u.(T); ok {
		return t, true
	}
	rv := reflect.ValueOf(u)
	if !rv.IsValid() || rv.Kind() != k {
		return zero, false
	}
	if !rv.Type().ConvertibleTo(tt) {
		return zero, false
	}
	return rv.Convert(tt).Interface().(T), true
}
