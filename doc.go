// Package skema is a declarative value-validation and -coercion engine.
//
// A schema is an immutable Node: a kind (base type tag plus type check), an
// ordered transform chain, an ordered test pipeline and a presence spec
// (required/optional/defined, nullable, default). Validation runs
//
//	transforms -> default (when absent) -> presence checks -> type check -> tests
//
// and yields either a type-narrowed Value or Issues.
//
// Design policy:
//   - Builder calls never modify a built node; they return a clone. Inside
//     WithMutation they modify the receiver, which is how kinds install their
//     own transforms and tests at construction.
//   - Tests are unique by (name, exclusive): a second exclusive test with the
//     same name replaces the first in place.
//   - Concat merges two nodes of compatible kinds; explicitly set presence
//     fields of the argument win.
//   - Validation outcomes are returned as Issues; only builder misuse panics
//     or returns *ConfigError.
//
// Concrete kinds live in dsl/, message templates in i18n/, reusable tests in
// rules/ and the CLI under cmd/skema.
//
// Typical usage:
//
//	s := dsl.Bool().Required().IsTrue()
//	v, err := s.Validate(ctx, "1")
//	if iss, ok := skema.AsIssues(err); ok {
//	    for _, it := range iss {
//	        fmt.Println(it.Code, it.Message)
//	    }
//	}
package skema
