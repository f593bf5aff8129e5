package skema

import "reflect"

// Builder adapts the Node builder methods to a kind-specific schema type S,
// so chained calls keep returning S. Kinds embed it:
//
//	type BoolSchema struct{ skema.Builder[bool, *BoolSchema] }
//
// Execution methods (Validate, Parse, Cast, Describe, ...) are promoted from
// the embedded Node.
type Builder[T any, S any] struct {
	*Node[T]
	wrap func(*Node[T]) S
}

// NewBuilder pairs n with the function that wraps a node into S.
func NewBuilder[T any, S any](n *Node[T], wrap func(*Node[T]) S) Builder[T, S] {
	return Builder[T, S]{Node: n, wrap: wrap}
}

// Base returns the underlying node.
func (b Builder[T, S]) Base() *Node[T] { return b.Node }

// Clone returns an independent copy.
func (b Builder[T, S]) Clone() S { return b.wrap(b.Node.Clone()) }

// WithMutation runs fn with the schema in mutable mode; see Node.WithMutation.
func (b Builder[T, S]) WithMutation(fn func(S)) S {
	s := b.wrap(b.Node)
	b.Node.WithMutation(func(*Node[T]) { fn(s) })
	return s
}

// Concat merges other into a copy of the schema; see Node.Concat. A nil
// other yields a plain clone.
func (b Builder[T, S]) Concat(other interface{ Base() *Node[T] }) (S, error) {
	n, err := b.Node.Concat(baseOf(other))
	if err != nil {
		var zero S
		return zero, err
	}
	return b.wrap(n), nil
}

// MustConcat is like Concat but panics on incompatible kinds.
func (b Builder[T, S]) MustConcat(other interface{ Base() *Node[T] }) S {
	return b.wrap(b.Node.MustConcat(baseOf(other)))
}

// baseOf unwraps other, treating a nil interface or a typed nil pointer as no
// node.
func baseOf[T any](other interface{ Base() *Node[T] }) *Node[T] {
	if other == nil {
		return nil
	}
	if rv := reflect.ValueOf(other); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	return other.Base()
}

func (b Builder[T, S]) Transform(fn TransformFunc) S { return b.wrap(b.Node.Transform(fn)) }
func (b Builder[T, S]) Test(t Test[T]) S             { return b.wrap(b.Node.Test(t)) }
func (b Builder[T, S]) Label(label string) S         { return b.wrap(b.Node.Label(label)) }
func (b Builder[T, S]) Meta(key string, v any) S     { return b.wrap(b.Node.Meta(key, v)) }
func (b Builder[T, S]) Strict(on bool) S             { return b.wrap(b.Node.Strict(on)) }
func (b Builder[T, S]) Default(v any) S              { return b.wrap(b.Node.Default(v)) }
func (b Builder[T, S]) Required(msg ...Message) S    { return b.wrap(b.Node.Required(msg...)) }
func (b Builder[T, S]) Defined(msg ...Message) S     { return b.wrap(b.Node.Defined(msg...)) }
func (b Builder[T, S]) Optional() S                  { return b.wrap(b.Node.Optional()) }
func (b Builder[T, S]) NotRequired() S               { return b.wrap(b.Node.NotRequired()) }
func (b Builder[T, S]) Nullable() S                  { return b.wrap(b.Node.Nullable()) }
func (b Builder[T, S]) NonNullable(msg ...Message) S { return b.wrap(b.Node.NonNullable(msg...)) }

func (b Builder[T, S]) OneOf(values []T, msg ...Message) S {
	return b.wrap(b.Node.OneOf(values, msg...))
}

func (b Builder[T, S]) NotOneOf(values []T, msg ...Message) S {
	return b.wrap(b.Node.NotOneOf(values, msg...))
}
