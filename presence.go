package skema

// Requirement is the absent-value axis of the presence spec.
type Requirement uint8

const (
	Optional Requirement = iota // Absent values pass.
	Defined                     // Absent values fail; null is governed by nullability only.
	Required                    // Absent values fail; null fails unless nullable.
)

func (r Requirement) String() string {
	switch r {
	case Defined:
		return "defined"
	case Required:
		return "required"
	default:
		return "optional"
	}
}

type presenceSpec struct {
	requirement Requirement
	requiredMsg Message
	nullable    bool
	nullMsg     Message

	hasDefault bool
	def        any
	thunk      func() any
}

// resolveDefault returns the default for an absent value. Thunks are
// evaluated on every call.
func (p *presenceSpec) resolveDefault() (any, bool) {
	if !p.hasDefault {
		return nil, false
	}
	if p.thunk != nil {
		return p.thunk(), true
	}
	return p.def, true
}

// Required rejects absent values, and null values unless the node is nullable.
func (n *Node[T]) Required(msg ...Message) *Node[T] {
	return n.requirement(Required, pickMessage(msg, nil))
}

// Defined rejects absent values regardless of nullability.
func (n *Node[T]) Defined(msg ...Message) *Node[T] {
	return n.requirement(Defined, pickMessage(msg, nil))
}

// Optional permits absent values.
func (n *Node[T]) Optional() *Node[T] { return n.requirement(Optional, nil) }

// NotRequired permits both absent and null values.
func (n *Node[T]) NotRequired() *Node[T] {
	next := n.requirement(Optional, nil)
	next = next.nullability(true, nil)
	return next
}

// Nullable accepts an explicit null as a terminal value.
func (n *Node[T]) Nullable() *Node[T] { return n.nullability(true, nil) }

// NonNullable rejects an explicit null.
func (n *Node[T]) NonNullable(msg ...Message) *Node[T] {
	return n.nullability(false, pickMessage(msg, nil))
}

func (n *Node[T]) requirement(r Requirement, msg Message) *Node[T] {
	next := n.next()
	next.presence.requirement = r
	next.presence.requiredMsg = msg
	next.set |= setRequirement
	return next
}

func (n *Node[T]) nullability(on bool, msg Message) *Node[T] {
	next := n.next()
	next.presence.nullable = on
	next.presence.nullMsg = msg
	next.set |= setNullable
	return next
}

// Default sets the value used when the input is absent. v may be a literal or
// a thunk of type func() T or func() any, evaluated on every validation call.
// A literal is type-checked when it is applied, not here. Default(Undefined)
// removes the default.
func (n *Node[T]) Default(v any) *Node[T] {
	next := n.next()
	next.set |= setDefault
	next.presence.def, next.presence.thunk = nil, nil
	switch fn := v.(type) {
	case func() T:
		next.presence.hasDefault = true
		next.presence.thunk = func() any { return fn() }
	case func() any:
		next.presence.hasDefault = true
		next.presence.thunk = fn
	default:
		next.presence.hasDefault = !IsUndefined(v)
		if next.presence.hasDefault {
			next.presence.def = v
		}
	}
	return next
}

// HasDefault reports whether a default is configured.
func (n *Node[T]) HasDefault() bool { return n.presence.hasDefault }

// GetDefault resolves the configured default, evaluating a thunk.
func (n *Node[T]) GetDefault() (any, bool) { return n.presence.resolveDefault() }

// Requirement reports the absent-value policy.
func (n *Node[T]) Requirement() Requirement { return n.presence.requirement }

// IsNullable reports whether an explicit null is accepted.
func (n *Node[T]) IsNullable() bool { return n.presence.nullable }
