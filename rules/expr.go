package rules

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/reoring/skema"
)

// Env is the environment an expression is evaluated against.
type Env struct {
	Value  any            `expr:"value"`
	Params map[string]any `expr:"params"`
	Path   string         `expr:"path"`
	Label  string         `expr:"label"`
}

// Expr compiles source into a test named name. The expression sees the value
// under test as `value` plus `params`, `path` and `label`, and must evaluate
// to a boolean. Absent and null values pass without evaluation. A runtime
// evaluation error fails the test and is reported as the "error" param.
func Expr[T any](name, source string, msg ...skema.Message) (skema.Test[T], error) {
	prg, err := expr.Compile(source, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return skema.Test[T]{}, fmt.Errorf("rules: compile %q: %w", source, err)
	}
	return skema.Test[T]{
		Name:    name,
		Message: first(msg),
		Params:  skema.Params{"expr": source},
		Func: func(tc *skema.TestContext, v skema.Value[T]) bool {
			got, ok := v.Get()
			if !ok {
				return true
			}
			return evalBool(tc, prg, Env{Value: got, Params: tc.Params(), Path: tc.Path(), Label: tc.Label()})
		},
	}, nil
}

// MustExpr is like Expr but panics when source does not compile.
func MustExpr[T any](name, source string, msg ...skema.Message) skema.Test[T] {
	t, err := Expr[T](name, source, msg...)
	if err != nil {
		panic(err)
	}
	return t
}

func evalBool(tc *skema.TestContext, prg *vm.Program, env Env) bool {
	out, err := expr.Run(prg, env)
	if err != nil {
		tc.Set("error", err.Error())
		return false
	}
	b, _ := out.(bool)
	return b
}
