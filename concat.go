package skema

import "maps"

// Concat merges other into a copy of n. Transforms run n's first, then
// other's. other's tests are registered on top of n's with the usual
// exclusivity rule, and every presence or spec field other set explicitly
// overrides n's. Concatenating incompatible kinds is a *ConfigError.
func (n *Node[T]) Concat(other *Node[T]) (*Node[T], error) {
	if other == nil {
		return n.Clone(), nil
	}
	if !n.kind.compatible(other.kind) {
		return nil, configErrorf("concat", ErrIncompatibleConcat, "cannot concat %q with %q", n.kind.Name, other.kind.Name)
	}
	out := n.Clone()
	if out.kind.Name == MixedKind && other.kind.Name != MixedKind {
		out.kind = other.kind
	}
	out.transforms = append(out.transforms, other.transforms...)
	for _, t := range other.tests {
		out.tests = addTest(out.tests, t)
	}

	if other.set&setRequirement != 0 {
		out.presence.requirement = other.presence.requirement
		out.presence.requiredMsg = other.presence.requiredMsg
	}
	if other.set&setNullable != 0 {
		out.presence.nullable = other.presence.nullable
		out.presence.nullMsg = other.presence.nullMsg
	}
	if other.set&setDefault != 0 {
		out.presence.hasDefault = other.presence.hasDefault
		out.presence.def = other.presence.def
		out.presence.thunk = other.presence.thunk
	}
	if other.set&setLabel != 0 {
		out.label = other.label
	}
	if other.set&setStrict != 0 {
		out.strict = other.strict
	}
	out.set |= other.set
	if len(other.meta) > 0 {
		if out.meta == nil {
			out.meta = make(map[string]any, len(other.meta))
		}
		maps.Copy(out.meta, other.meta)
	}
	logger().Debug().
		Str("type", out.kind.Name).
		Int("transforms", len(out.transforms)).
		Int("tests", len(out.tests)).
		Msg("concat")
	return out, nil
}

// MustConcat is like Concat but panics on incompatible kinds.
func (n *Node[T]) MustConcat(other *Node[T]) *Node[T] {
	out, err := n.Concat(other)
	if err != nil {
		panic(err)
	}
	return out
}

// Tests returns the names of the registered tests in pipeline order.
func (n *Node[T]) Tests() []string {
	names := make([]string, len(n.tests))
	for i, t := range n.tests {
		names[i] = t.Name
	}
	return names
}
