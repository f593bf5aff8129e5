package skema

// TransformFunc rewrites a raw value before the type check. It receives the
// output of the previous transform (or the raw input for the first one),
// including Undefined and nil.
type TransformFunc func(tc *TransformContext, v any) any

// TransformContext is handed to a running transform.
type TransformContext struct {
	original any
	isType   func(any) bool
}

// Original returns the raw input of the pipeline.
func (tc *TransformContext) Original() any { return tc.original }

// IsType reports whether v already satisfies the node's type check.
func (tc *TransformContext) IsType(v any) bool { return tc.isType(v) }

// applyTransforms runs the transform chain in registration order.
func (n *Node[T]) applyTransforms(raw any) any {
	if len(n.transforms) == 0 {
		return raw
	}
	tc := &TransformContext{original: raw, isType: n.IsType}
	v := raw
	for _, fn := range n.transforms {
		v = fn(tc, v)
	}
	return v
}
