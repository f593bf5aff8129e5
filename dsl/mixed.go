package dsl

import "github.com/reoring/skema"

var mixedKind = &skema.Kind[any]{
	Name:  skema.MixedKind,
	Check: func(v any) (any, bool) { return v, true },
}

// MixedSchema accepts any value; it is the kind to hang custom tests and
// transforms on when no base type applies.
type MixedSchema struct {
	skema.Builder[any, *MixedSchema]
}

func wrapMixed(n *skema.Node[any]) *MixedSchema {
	return &MixedSchema{skema.NewBuilder(n, wrapMixed)}
}

// Mixed returns a schema that accepts any present value.
func Mixed() *MixedSchema { return wrapMixed(skema.NewNode(mixedKind, nil)) }

// MixedOf returns a mixed schema narrowed by check, reported under name.
func MixedOf(name string, check func(v any) bool) *MixedSchema {
	k := &skema.Kind[any]{
		Name: name,
		Check: func(v any) (any, bool) {
			return v, check(v)
		},
	}
	return wrapMixed(skema.NewNode(k, nil))
}
