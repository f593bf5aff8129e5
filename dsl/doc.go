// Package dsl provides the concrete schema kinds built on the skema engine.
//
// Overview
//   - Bool(): boolean with "true"/"1"/"false"/"0" coercion; IsTrue()/IsFalse().
//   - String(): string with scalar coercion; Min/Max/Length/Matches/Trim/Lowercase/Uppercase.
//   - Number(): float64 with numeric-string coercion; Min/Max/MoreThan/LessThan/Positive/Negative/Integer/Round.
//   - Mixed()/MixedOf(): any value, optionally narrowed by a custom check.
//
// Every kind embeds skema.Builder, so the shared builder calls (Required,
// Nullable, Default, Test, Transform, Concat, WithMutation, ...) return the
// kind's own type and chain with the kind-specific calls.
//
// Example
//
//	accept := dsl.Bool().Required().IsTrue(skema.Template("{path} must be accepted"))
//	v, err := accept.Validate(ctx, "1") // v holds true
//
//	flags := dsl.Bool().WithMutation(func(b *dsl.BoolSchema) {
//	    b.Label("flag")
//	    b.Default(false)
//	})
//
// Kind tests treat absent and null values as passing; presence is enforced
// only through Required/Defined/NonNullable.
package dsl
