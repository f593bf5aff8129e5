package dsl

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

var numberKind = &skema.Kind[float64]{
	Name:     "number",
	JSONType: "number",
	Check:    checkNumber,
	Project: func(s *js.Schema, t skema.TestDescription) {
		switch t.Name {
		case "min":
			s.Minimum = floatParam(t.Params, "min")
		case "max":
			s.Maximum = floatParam(t.Params, "max")
		case "moreThan":
			s.ExclusiveMinimum = floatParam(t.Params, "more")
		case "lessThan":
			s.ExclusiveMaximum = floatParam(t.Params, "less")
		case "integer":
			s.Type = "integer"
		}
	},
}

// checkNumber accepts every Go integer and float kind except NaN.
func checkNumber(v any) (float64, bool) {
	rv := reflect.ValueOf(skema.Unbox(v))
	if !rv.IsValid() {
		return 0, false
	}
	var f float64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// NumberSchema validates numbers as float64.
type NumberSchema struct {
	skema.Builder[float64, *NumberSchema]
}

func wrapNumber(n *skema.Node[float64]) *NumberSchema {
	return &NumberSchema{skema.NewBuilder(n, wrapNumber)}
}

// Number returns a number schema. Numeric strings (whitespace ignored) are
// parsed; json.Number is accepted through its string form.
func Number() *NumberSchema {
	return wrapNumber(skema.NewNode(numberKind, func(n *skema.Node[float64]) {
		n.Transform(coerceNumber)
	}))
}

func coerceNumber(tc *skema.TransformContext, v any) any {
	if tc.IsType(v) {
		return v
	}
	var s string
	switch t := skema.Unbox(v).(type) {
	case string:
		s = t
	case interface{ String() string }:
		if skema.IsUndefined(v) {
			return v
		}
		s = t.String()
	default:
		return v
	}
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return f
}

func (s *NumberSchema) bound(name, param string, limit float64, ok func(float64) bool, msg []skema.Message) *NumberSchema {
	return s.Test(skema.Test[float64]{
		Name: name, Message: firstMessage(msg), Exclusive: true,
		Params: skema.Params{param: limit},
		Func: func(_ *skema.TestContext, v skema.Value[float64]) bool {
			return isAbsent(v) || ok(v.OrZero())
		},
	})
}

// Min requires v >= limit.
func (s *NumberSchema) Min(limit float64, msg ...skema.Message) *NumberSchema {
	return s.bound("min", "min", limit, func(f float64) bool { return f >= limit }, msg)
}

// Max requires v <= limit.
func (s *NumberSchema) Max(limit float64, msg ...skema.Message) *NumberSchema {
	return s.bound("max", "max", limit, func(f float64) bool { return f <= limit }, msg)
}

// MoreThan requires v > more.
func (s *NumberSchema) MoreThan(more float64, msg ...skema.Message) *NumberSchema {
	return s.bound("moreThan", "more", more, func(f float64) bool { return f > more }, msg)
}

// LessThan requires v < less.
func (s *NumberSchema) LessThan(less float64, msg ...skema.Message) *NumberSchema {
	return s.bound("lessThan", "less", less, func(f float64) bool { return f < less }, msg)
}

// Positive requires v > 0.
func (s *NumberSchema) Positive(msg ...skema.Message) *NumberSchema { return s.MoreThan(0, msg...) }

// Negative requires v < 0.
func (s *NumberSchema) Negative(msg ...skema.Message) *NumberSchema { return s.LessThan(0, msg...) }

// Integer rejects values with a fractional part.
func (s *NumberSchema) Integer(msg ...skema.Message) *NumberSchema {
	return s.Test(skema.Test[float64]{
		Name: "integer", Message: firstMessage(msg), Exclusive: true,
		Func: func(_ *skema.TestContext, v skema.Value[float64]) bool {
			if isAbsent(v) {
				return true
			}
			f := v.OrZero()
			return !math.IsInf(f, 0) && f == math.Trunc(f)
		},
	})
}

// Truncate drops the fractional part.
func (s *NumberSchema) Truncate() *NumberSchema { return s.Round(RoundTrunc) }

// RoundMode selects the rounding function used by Round.
type RoundMode string

const (
	RoundTrunc RoundMode = "trunc"
	RoundFloor RoundMode = "floor"
	RoundCeil  RoundMode = "ceil"
	RoundHalf  RoundMode = "round"
)

// Round rounds numeric values with mode. An unknown mode is a *skema.ConfigError panic.
func (s *NumberSchema) Round(mode RoundMode) *NumberSchema {
	var fn func(float64) float64
	switch mode {
	case RoundTrunc:
		fn = math.Trunc
	case RoundFloor:
		fn = math.Floor
	case RoundCeil:
		fn = math.Ceil
	case RoundHalf:
		fn = math.Round
	default:
		panic(&skema.ConfigError{Op: "round", Err: fmt.Errorf("unknown round mode %q", mode)})
	}
	return s.Transform(func(_ *skema.TransformContext, v any) any {
		if f, ok := checkNumber(v); ok {
			return fn(f)
		}
		return v
	})
}

func floatParam(p skema.Params, key string) *float64 {
	var out struct {
		V *float64 `param:"v"`
	}
	if err := (skema.Params{"v": p[key]}).Decode(&out); err != nil {
		return nil
	}
	return out.V
}
