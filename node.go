package skema

import (
	"maps"
	"reflect"
	"slices"
)

// fieldSet records which presence/spec fields were set explicitly, so Concat
// can tell "left at the default" apart from "set to the default".
type fieldSet uint16

const (
	setRequirement fieldSet = 1 << iota
	setNullable
	setDefault
	setLabel
	setStrict
)

// Node is the shared schema engine: a kind plus an ordered transform chain,
// an ordered test pipeline and a presence spec.
//
// A Node is immutable once built. Builder methods return a modified clone,
// except inside WithMutation where they modify the receiver and return it.
// Validation never writes to the node, so a built Node may be shared between
// goroutines.
type Node[T any] struct {
	kind       *Kind[T]
	transforms []TransformFunc
	tests      []*Test[T]
	presence   presenceSpec

	label  string
	meta   map[string]any
	strict bool
	set    fieldSet

	mutable bool
}

// NewNode returns a node for kind. configure, when non-nil, runs inside a
// mutation scope so kind constructors can install their transforms and tests
// without cloning.
func NewNode[T any](kind *Kind[T], configure func(n *Node[T])) *Node[T] {
	n := &Node[T]{kind: kind}
	if configure != nil {
		n.WithMutation(configure)
	}
	return n
}

// Base returns n; it lets a bare Node be passed wherever a kind schema is
// accepted for Concat.
func (n *Node[T]) Base() *Node[T] { return n }

// Type returns the base type tag.
func (n *Node[T]) Type() string { return n.kind.Name }

// IsType reports whether v satisfies the base type check. A null is accepted
// when the node is nullable.
func (n *Node[T]) IsType(v any) bool {
	if n.presence.nullable && classify(v) == Null {
		return true
	}
	_, ok := n.kind.Check(v)
	return ok
}

// Clone returns an independent copy. Test units are shared since they are
// never modified after registration.
func (n *Node[T]) Clone() *Node[T] {
	c := *n
	c.transforms = slices.Clone(n.transforms)
	c.tests = slices.Clone(n.tests)
	c.meta = maps.Clone(n.meta)
	c.mutable = false
	return &c
}

// next returns the node a builder call should modify.
func (n *Node[T]) next() *Node[T] {
	if n.mutable {
		return n
	}
	return n.Clone()
}

// WithMutation runs fn with n in mutable mode and returns n. The previous mode
// is restored on every exit path, including a panic inside fn, which then
// propagates unchanged. Nested calls leave the outer scope mutable.
func (n *Node[T]) WithMutation(fn func(n *Node[T])) *Node[T] {
	before := n.mutable
	n.mutable = true
	defer func() { n.mutable = before }()
	fn(n)
	return n
}

// Transform appends fn to the transform chain.
func (n *Node[T]) Transform(fn TransformFunc) *Node[T] {
	next := n.next()
	next.transforms = append(next.transforms, fn)
	return next
}

// Test registers t. A malformed test (no Func, or exclusive without a name)
// is a programming error and panics with a *ConfigError.
func (n *Node[T]) Test(t Test[T]) *Node[T] {
	if err := checkTest(t); err != nil {
		panic(err)
	}
	t.Params = t.Params.clone()
	next := n.next()
	next.tests = addTest(next.tests, &t)
	return next
}

// Label sets the human-readable name used for {path} in messages.
func (n *Node[T]) Label(label string) *Node[T] {
	next := n.next()
	next.label = label
	next.set |= setLabel
	return next
}

// Meta attaches arbitrary metadata, surfaced by Describe.
func (n *Node[T]) Meta(key string, value any) *Node[T] {
	next := n.next()
	if next.meta == nil {
		next.meta = map[string]any{}
	}
	next.meta[key] = value
	return next
}

// Strict disables the transform chain and default resolution, so only values
// that already satisfy the type check are accepted.
func (n *Node[T]) Strict(on bool) *Node[T] {
	next := n.next()
	next.strict = on
	next.set |= setStrict
	return next
}

// OneOf only accepts the given values. Absent and null values pass; use the
// presence builders to reject them.
func (n *Node[T]) OneOf(values []T, msg ...Message) *Node[T] {
	vs := slices.Clone(values)
	return n.Test(Test[T]{
		Name:      CodeOneOf,
		Message:   pickMessage(msg, nil),
		Params:    Params{"values": toAnySlice(vs)},
		Exclusive: true,
		Func: func(_ *TestContext, v Value[T]) bool {
			got, ok := v.Get()
			return !ok || containsValue(vs, got)
		},
	})
}

// NotOneOf rejects the given values.
func (n *Node[T]) NotOneOf(values []T, msg ...Message) *Node[T] {
	vs := slices.Clone(values)
	return n.Test(Test[T]{
		Name:      CodeNotOneOf,
		Message:   pickMessage(msg, nil),
		Params:    Params{"values": toAnySlice(vs)},
		Exclusive: true,
		Func: func(_ *TestContext, v Value[T]) bool {
			got, ok := v.Get()
			return !ok || !containsValue(vs, got)
		},
	})
}

func containsValue[T any](vs []T, v T) bool {
	for _, e := range vs {
		if reflect.DeepEqual(e, v) {
			return true
		}
	}
	return false
}

func toAnySlice[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
