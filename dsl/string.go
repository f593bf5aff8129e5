package dsl

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

var stringKind = &skema.Kind[string]{
	Name:     "string",
	JSONType: "string",
	Check: func(v any) (string, bool) {
		return skema.ConvertKind[string](v, reflect.String)
	},
	Project: func(s *js.Schema, t skema.TestDescription) {
		switch t.Name {
		case "min":
			s.MinLength = intParam(t.Params, "min")
		case "max":
			s.MaxLength = intParam(t.Params, "max")
		case "length":
			s.MinLength = intParam(t.Params, "length")
			s.MaxLength = intParam(t.Params, "length")
		case "matches":
			if re, ok := t.Params["regex"].(string); ok {
				s.Pattern = re
			}
		}
	},
}

// StringSchema validates strings.
type StringSchema struct {
	skema.Builder[string, *StringSchema]
}

func wrapString(n *skema.Node[string]) *StringSchema {
	return &StringSchema{skema.NewBuilder(n, wrapString)}
}

// String returns a string schema. Scalars (numbers, booleans, fmt.Stringer)
// are coerced to their string form; other values fail the type check.
func String() *StringSchema {
	return wrapString(skema.NewNode(stringKind, func(n *skema.Node[string]) {
		n.Transform(coerceString)
	}))
}

func coerceString(tc *skema.TransformContext, v any) any {
	if tc.IsType(v) {
		return v
	}
	switch t := skema.Unbox(v).(type) {
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case fmt.Stringer:
		if skema.IsUndefined(v) {
			return v
		}
		return t.String()
	}
	return v
}

// Min requires at least n characters.
func (s *StringSchema) Min(n int, msg ...skema.Message) *StringSchema {
	return s.Test(skema.Test[string]{
		Name: "min", Message: firstMessage(msg), Exclusive: true,
		Params: skema.Params{"min": n},
		Func: func(_ *skema.TestContext, v skema.Value[string]) bool {
			return isAbsent(v) || utf8.RuneCountInString(v.OrZero()) >= n
		},
	})
}

// Max allows at most n characters.
func (s *StringSchema) Max(n int, msg ...skema.Message) *StringSchema {
	return s.Test(skema.Test[string]{
		Name: "max", Message: firstMessage(msg), Exclusive: true,
		Params: skema.Params{"max": n},
		Func: func(_ *skema.TestContext, v skema.Value[string]) bool {
			return isAbsent(v) || utf8.RuneCountInString(v.OrZero()) <= n
		},
	})
}

// Length requires exactly n characters.
func (s *StringSchema) Length(n int, msg ...skema.Message) *StringSchema {
	return s.Test(skema.Test[string]{
		Name: "length", Message: firstMessage(msg), Exclusive: true,
		Params: skema.Params{"length": n},
		Func: func(_ *skema.TestContext, v skema.Value[string]) bool {
			return isAbsent(v) || utf8.RuneCountInString(v.OrZero()) == n
		},
	})
}

// Matches requires the value to match re. Matches tests are not exclusive, so
// several patterns may be stacked.
func (s *StringSchema) Matches(re *regexp.Regexp, msg ...skema.Message) *StringSchema {
	return s.MatchesOpt(re, MatchOpt{}, msg...)
}

// MatchOpt tunes Matches.
type MatchOpt struct {
	Name               string // Test name; defaults to "matches".
	ExcludeEmptyString bool   // Let "" pass without matching.
}

// MatchesOpt is Matches with options.
func (s *StringSchema) MatchesOpt(re *regexp.Regexp, opt MatchOpt, msg ...skema.Message) *StringSchema {
	name := opt.Name
	if name == "" {
		name = "matches"
	}
	return s.Test(skema.Test[string]{
		Name: name, Message: firstMessage(msg),
		Params: skema.Params{"regex": re.String()},
		Func: func(_ *skema.TestContext, v skema.Value[string]) bool {
			if isAbsent(v) {
				return true
			}
			str := v.OrZero()
			if str == "" && opt.ExcludeEmptyString {
				return true
			}
			return re.MatchString(str)
		},
	})
}

// Trim strips surrounding whitespace, and in strict mode rejects untrimmed
// input.
func (s *StringSchema) Trim(msg ...skema.Message) *StringSchema {
	return s.Transform(stringTransform(strings.TrimSpace)).
		Test(stringEquals("trim", strings.TrimSpace, msg))
}

// Lowercase lowercases the value, and in strict mode rejects other input.
func (s *StringSchema) Lowercase(msg ...skema.Message) *StringSchema {
	return s.Transform(stringTransform(strings.ToLower)).
		Test(stringEquals("lowercase", strings.ToLower, msg))
}

// Uppercase uppercases the value, and in strict mode rejects other input.
func (s *StringSchema) Uppercase(msg ...skema.Message) *StringSchema {
	return s.Transform(stringTransform(strings.ToUpper)).
		Test(stringEquals("uppercase", strings.ToUpper, msg))
}

func stringTransform(fn func(string) string) skema.TransformFunc {
	return func(_ *skema.TransformContext, v any) any {
		if str, ok := v.(string); ok {
			return fn(str)
		}
		return v
	}
}

func stringEquals(name string, fn func(string) string, msg []skema.Message) skema.Test[string] {
	return skema.Test[string]{
		Name: name, Message: firstMessage(msg), Exclusive: true,
		Func: func(_ *skema.TestContext, v skema.Value[string]) bool {
			return isAbsent(v) || v.OrZero() == fn(v.OrZero())
		},
	}
}

func intParam(p skema.Params, key string) *int {
	var out struct {
		V *int `param:"v"`
	}
	if err := (skema.Params{"v": p[key]}).Decode(&out); err != nil {
		return nil
	}
	return out.V
}
