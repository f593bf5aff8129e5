package skema

import "reflect"

// Presence describes whether a value was supplied.
type Presence uint8

const (
	Absent  Presence = iota // No value at all.
	Null                    // An explicit null.
	Present                 // A concrete value.
)

func (p Presence) String() string {
	switch p {
	case Null:
		return "null"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the raw-input sentinel for an absent value. A nil input is an
// explicit null.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// Value is a type-narrowed result carrying its presence.
type Value[T any] struct {
	presence Presence
	v        T
}

// Some wraps a present value.
func Some[T any](v T) Value[T] { return Value[T]{presence: Present, v: v} }

// NullValue returns an explicit null.
func NullValue[T any]() Value[T] { return Value[T]{presence: Null} }

// AbsentValue returns an absent value.
func AbsentValue[T any]() Value[T] { return Value[T]{} }

func (v Value[T]) Presence() Presence { return v.presence }
func (v Value[T]) IsAbsent() bool     { return v.presence == Absent }
func (v Value[T]) IsNull() bool       { return v.presence == Null }
func (v Value[T]) IsPresent() bool    { return v.presence == Present }

// Get returns the value and whether it is present.
func (v Value[T]) Get() (T, bool) { return v.v, v.presence == Present }

// OrZero returns the value or the zero value of T when not present.
func (v Value[T]) OrZero() T { return v.v }

// Raw returns the value as it would be passed back into a pipeline:
// Undefined, nil or the concrete value.
func (v Value[T]) Raw() any {
	switch v.presence {
	case Null:
		return nil
	case Present:
		return v.v
	default:
		return Undefined
	}
}

// classify maps a raw input onto the three presence states. Typed nil
// pointers, maps, slices and interfaces count as null.
func classify(v any) Presence {
	if v == nil {
		return Null
	}
	if IsUndefined(v) {
		return Absent
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return Null
		}
	}
	return Present
}
