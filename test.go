package skema

import (
	"context"
	"maps"

	"github.com/mitchellh/mapstructure"

	"github.com/reoring/skema/i18n"
)

// Params are the named parameters attached to a test and used to render its
// message.
type Params map[string]any

func (p Params) clone() Params {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

// Decode copies the params into out (a pointer to a struct or map). Struct
// fields are matched by their `param` tag or by name, with weak typing so
// "3" decodes into an int field.
func (p Params) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "param",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(p))
}

// Message renders a failure message from params.
type Message interface {
	Render(p Params) string
}

// Template is a message template such as "{path} must be {value}".
type Template string

func (t Template) Render(p Params) string { return i18n.Format(string(t), p) }

// MessageFunc computes a message from params.
type MessageFunc func(p Params) string

func (f MessageFunc) Render(p Params) string { return f(p) }

// Locale is a message looked up in the i18n translator by code at render
// time, so language switches apply to already-built schemas.
type Locale string

func (c Locale) Render(p Params) string { return i18n.T(string(c), p) }

func pickMessage(msgs []Message, fallback Message) Message {
	for _, m := range msgs {
		if m != nil {
			return m
		}
	}
	return fallback
}

// Test is a named predicate. Func receives the post-coercion, type-checked
// value; absent and null values are passed through as well, and tests that
// treat absence as a pass must check for it themselves.
type Test[T any] struct {
	Name    string
	Message Message // Locale(Name) when nil.
	Params  Params
	// Exclusive allows a single registration per name; a later exclusive
	// registration replaces the earlier one in place.
	Exclusive bool
	Func      func(tc *TestContext, v Value[T]) bool
}

func (t *Test[T]) message() Message {
	if t.Message != nil {
		return t.Message
	}
	return Locale(t.Name)
}

// TestContext is handed to a running test.
type TestContext struct {
	ctx      context.Context
	path     string
	label    string
	original any
	params   Params
	extra    Params
}

// Context returns the context of the validation call.
func (tc *TestContext) Context() context.Context { return tc.ctx }

// Path returns the JSON Pointer of the value under test.
func (tc *TestContext) Path() string { return tc.path }

// Label returns the schema label, if any.
func (tc *TestContext) Label() string { return tc.label }

// OriginalValue returns the raw input before transforms.
func (tc *TestContext) OriginalValue() any { return tc.original }

// Params returns the test's registered params. Callers must not mutate it.
func (tc *TestContext) Params() Params { return tc.params }

// Set attaches a diagnostic parameter to the failure produced by this test.
// It is ignored when the test passes.
func (tc *TestContext) Set(key string, v any) {
	if tc.extra == nil {
		tc.extra = Params{}
	}
	tc.extra[key] = v
}

// addTest applies the registration policy to a test list, which must be owned
// by the caller. An exclusive test takes the slot of the first test with its
// name and evicts any other test of that name, exclusive or not.
func addTest[T any](tests []*Test[T], t *Test[T]) []*Test[T] {
	if !t.Exclusive {
		return append(tests, t)
	}
	out := tests[:0]
	placed := false
	for _, cur := range tests {
		if cur.Name != t.Name {
			out = append(out, cur)
			continue
		}
		if !placed {
			out = append(out, t)
			placed = true
		}
	}
	if !placed {
		out = append(out, t)
	}
	return out
}

func checkTest[T any](t Test[T]) error {
	if t.Func == nil {
		return configErrorf("test", ErrMalformedTest, "test %q has no func", t.Name)
	}
	if t.Exclusive && t.Name == "" {
		return configErrorf("test", ErrMalformedTest, "exclusive tests must have a name")
	}
	return nil
}
