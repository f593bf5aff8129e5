// Package rules builds reusable skema tests: value comparisons, conditional
// tests, combinators and expression predicates.
package rules

import (
	"fmt"
	"reflect"

	"github.com/reoring/skema"
)

// Op defines simple comparison operators for Compare and If(...).Then(...)
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (o Op) String() string {
	switch o {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Compare returns a test that requires `value op want`. Absent and null
// values pass.
func Compare[T any](name string, op Op, want any, msg ...skema.Message) skema.Test[T] {
	return skema.Test[T]{
		Name:    name,
		Message: first(msg),
		Params:  skema.Params{"op": op.String(), "want": want},
		Func: func(_ *skema.TestContext, v skema.Value[T]) bool {
			got, ok := v.Get()
			return !ok || compare(got, op, want)
		},
	}
}

// Conditional composes conditional execution of tests.
type Conditional[T any] struct {
	op   Op
	want any
	all  []Conditional[T] // composite AND
	any  []Conditional[T] // composite OR
}

// If builds a conditional that compares the value under test with want.
func If[T any](op Op, want any) Conditional[T] {
	return Conditional[T]{op: op, want: want}
}

// IfAll builds a conditional that requires all conditions to hold.
func IfAll[T any](conds ...Conditional[T]) Conditional[T] { return Conditional[T]{all: conds} }

// IfAny builds a conditional that requires any condition to hold.
func IfAny[T any](conds ...Conditional[T]) Conditional[T] { return Conditional[T]{any: conds} }

// And combines the receiver with additional conditions using logical AND.
func (c Conditional[T]) And(others ...Conditional[T]) Conditional[T] {
	conds := append([]Conditional[T]{c}, others...)
	return IfAll(conds...)
}

// Or combines the receiver with additional conditions using logical OR.
func (c Conditional[T]) Or(others ...Conditional[T]) Conditional[T] {
	conds := append([]Conditional[T]{c}, others...)
	return IfAny(conds...)
}

func (c Conditional[T]) eval(v T) bool {
	if len(c.all) > 0 {
		for _, sub := range c.all {
			if !sub.eval(v) {
				return false
			}
		}
		return true
	}
	if len(c.any) > 0 {
		for _, sub := range c.any {
			if sub.eval(v) {
				return true
			}
		}
		return false
	}
	return compare(v, c.op, c.want)
}

// Then returns a test named name that runs tests only when the condition
// holds for a present value. The failure message is the first failing inner
// test's message, and its name is reported as the "cause" param.
func (c Conditional[T]) Then(name string, tests ...skema.Test[T]) skema.Test[T] {
	return skema.Test[T]{
		Name:    name,
		Message: causeMessage(name),
		Func: func(tc *skema.TestContext, v skema.Value[T]) bool {
			got, ok := v.Get()
			if !ok || !c.eval(got) {
				return true
			}
			return runAll(tc, v, tests, skema.IsFailFast(tc.Context()))
		},
	}
}

// And returns a test that passes when every test passes.
func And[T any](name string, tests ...skema.Test[T]) skema.Test[T] {
	return skema.Test[T]{
		Name:    name,
		Message: causeMessage(name),
		Func: func(tc *skema.TestContext, v skema.Value[T]) bool {
			return runAll(tc, v, tests, true)
		},
	}
}

// Or returns a test that passes when any test passes. When all fail, the
// first failure is reported.
func Or[T any](name string, tests ...skema.Test[T]) skema.Test[T] {
	return skema.Test[T]{
		Name:    name,
		Message: causeMessage(name),
		Func: func(tc *skema.TestContext, v skema.Value[T]) bool {
			var firstFail *skema.Test[T]
			for i := range tests {
				if tests[i].Func == nil {
					continue
				}
				if tests[i].Func(tc, v) {
					return true
				}
				if firstFail == nil {
					firstFail = &tests[i]
				}
			}
			if firstFail == nil {
				return true
			}
			setCause(tc, v, firstFail)
			return false
		},
	}
}

func runAll[T any](tc *skema.TestContext, v skema.Value[T], tests []skema.Test[T], stopEarly bool) bool {
	ok := true
	for i := range tests {
		t := &tests[i]
		if t.Func == nil || t.Func(tc, v) {
			continue
		}
		if ok {
			setCause(tc, v, t)
		}
		ok = false
		if stopEarly {
			break
		}
	}
	return ok
}

// setCause records the failing inner test. Inner messages render with the
// composite's base params plus the inner test's own params.
func setCause[T any](tc *skema.TestContext, v skema.Value[T], t *skema.Test[T]) {
	params := skema.Params{"value": v.Raw(), "path": displayPath(tc)}
	for k, pv := range t.Params {
		params[k] = pv
	}
	msg := t.Message
	if msg == nil {
		msg = skema.Locale(t.Name)
	}
	tc.Set("cause", t.Name)
	tc.Set("causeMessage", msg.Render(params))
}

func displayPath(tc *skema.TestContext) string {
	if tc.Label() != "" {
		return tc.Label()
	}
	if p := tc.Path(); p != "" && p != "/" {
		return p
	}
	return "this"
}

func causeMessage(name string) skema.Message {
	return skema.MessageFunc(func(p skema.Params) string {
		if m, ok := p["causeMessage"].(string); ok && m != "" {
			return m
		}
		return skema.Locale(name).Render(p)
	})
}

func first(msg []skema.Message) skema.Message {
	for _, m := range msg {
		if m != nil {
			return m
		}
	}
	return nil
}

func compare(cur any, op Op, want any) bool {
	switch op {
	case Eq:
		return reflect.DeepEqual(cur, want) || (isNumber(cur) && isNumber(want) && compareOrdered(cur, op, want))
	case Ne:
		return !compare(cur, Eq, want)
	case Lt, Le, Gt, Ge:
		return compareOrdered(cur, op, want)
	default:
		return false
	}
}

func compareOrdered(cur any, op Op, want any) bool {
	c := reflect.ValueOf(cur)
	w := reflect.ValueOf(want)
	if isIntLike(c.Kind()) && isIntLike(w.Kind()) {
		return ordered(toInt64(c), toInt64(w), op)
	}
	if isNumber(cur) && isNumber(want) {
		return ordered(toFloat64(c), toFloat64(w), op)
	}
	if c.Kind() == reflect.String && w.Kind() == reflect.String {
		return ordered(c.String(), w.String(), op)
	}
	return false
}

func ordered[N int64 | float64 | string](a, b N, op Op) bool {
	switch op {
	case Eq:
		return a == b
	case Lt:
		return a < b
	case Le:
		return a <= b
	case Gt:
		return a > b
	case Ge:
		return a >= b
	}
	return false
}

func isNumber(v any) bool {
	k := reflect.ValueOf(v).Kind()
	return isIntLike(k) || isFloatLike(k)
}

func isIntLike(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloatLike(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func toInt64(v reflect.Value) int64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	default:
		return 0
	}
}

func toFloat64(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return 0
	}
}
