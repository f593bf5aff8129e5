package skema

import (
	"context"

	js "github.com/reoring/skema/jsonschema"
)

// Schema is the execution surface shared by Node and every kind built on it.
type Schema[T any] interface {
	// Validate runs transforms, default resolution, presence and type checks,
	// then the test pipeline.
	Validate(ctx context.Context, v any) (Value[T], error)
	// ValidateWith is Validate with explicit per-call options.
	ValidateWith(ctx context.Context, v any, opt ValidateOpt) (Value[T], error)
	// Parse is Validate returning the plain value.
	Parse(ctx context.Context, v any) (T, error)
	// Cast coerces without running tests.
	Cast(v any) (Value[T], error)
	// IsType reports whether v satisfies the base type check.
	IsType(v any) bool
	// Describe returns a serializable summary of the configuration.
	Describe() Description
	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

var _ Schema[bool] = (*Node[bool])(nil)

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	_, err := s.Validate(ctx, v)
	return err == nil
}

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that marks fail-fast validation.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current validation should stop on the first
// failing test.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
