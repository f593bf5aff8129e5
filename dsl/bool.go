package dsl

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// IsValueTest is the name shared by IsTrue and IsFalse; the two replace each
// other.
const IsValueTest = "is-value"

var boolKind = &skema.Kind[bool]{
	Name:     "boolean",
	JSONType: "boolean",
	Check: func(v any) (bool, bool) {
		return skema.ConvertKind[bool](v, reflect.Bool)
	},
	Project: func(s *js.Schema, t skema.TestDescription) {
		if t.Name == IsValueTest {
			s.Const = t.Params["value"] == "true"
		}
	},
}

// BoolSchema validates booleans.
type BoolSchema struct {
	skema.Builder[bool, *BoolSchema]
}

func wrapBool(n *skema.Node[bool]) *BoolSchema {
	return &BoolSchema{skema.NewBuilder(n, wrapBool)}
}

// Bool returns a boolean schema: optional, non-nullable, without default. It
// coerces the strings "true"/"1" and "false"/"0" (any case) and leaves other
// non-boolean input alone to fail the type check.
func Bool() *BoolSchema {
	return wrapBool(skema.NewNode(boolKind, func(n *skema.Node[bool]) {
		n.Transform(CoerceBool)
	}))
}

// CoerceBool is the transform installed by Bool. Values that already pass the
// type check are returned untouched, which makes it idempotent.
func CoerceBool(tc *skema.TransformContext, v any) any {
	if tc.IsType(v) {
		return v
	}
	switch strings.ToLower(fmt.Sprint(skema.Unbox(v))) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return v
}

// IsTrue only accepts true; absent values pass.
func (b *BoolSchema) IsTrue(msg ...skema.Message) *BoolSchema {
	return b.isValue(true, msg)
}

// IsFalse only accepts false; absent values pass.
func (b *BoolSchema) IsFalse(msg ...skema.Message) *BoolSchema {
	return b.isValue(false, msg)
}

func (b *BoolSchema) isValue(want bool, msg []skema.Message) *BoolSchema {
	return b.Test(skema.Test[bool]{
		Name:      IsValueTest,
		Message:   firstMessage(msg),
		Params:    skema.Params{"value": fmt.Sprint(want)},
		Exclusive: true,
		Func: func(_ *skema.TestContext, v skema.Value[bool]) bool {
			got, ok := v.Get()
			return isAbsent(v) || (ok && got == want)
		},
	})
}
