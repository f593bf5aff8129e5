// Package cli builds schemas from command-line options and decodes input
// values for the skema command.
package cli

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
	js "github.com/reoring/skema/jsonschema"
	"github.com/reoring/skema/rules"
)

// Options describe a schema assembled from flags.
type Options struct {
	Kind        string // bool, string, number or mixed.
	Required    bool
	Defined     bool
	Nullable    bool
	NotRequired bool
	Strict      bool
	Label       string
	Default     string // Raw default, decoded with InputFormat; empty means none.
	InputFormat string

	IsTrue  bool
	IsFalse bool
	Min     *float64
	Max     *float64
	Matches string
	OneOf   []string
	Expr    string
}

// Checker is a type-erased schema.
type Checker interface {
	Check(ctx context.Context, v any, opt skema.ValidateOpt) (any, error)
	Describe() skema.Description
	JSONSchema() (*js.Schema, error)
}

type erased[T any] struct{ s skema.Schema[T] }

func (e erased[T]) Check(ctx context.Context, v any, opt skema.ValidateOpt) (any, error) {
	out, err := e.s.ValidateWith(ctx, v, opt)
	return out.Raw(), err
}

func (e erased[T]) Describe() skema.Description     { return e.s.Describe() }
func (e erased[T]) JSONSchema() (*js.Schema, error) { return e.s.JSONSchema() }

// Build assembles a schema from opts.
func Build(opts Options) (Checker, error) {
	var def any = skema.Undefined
	if opts.Default != "" {
		v, err := Decode([]byte(opts.Default), opts.InputFormat)
		if err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
		def = v
	}
	switch strings.ToLower(opts.Kind) {
	case "", "bool", "boolean":
		if opts.Min != nil || opts.Max != nil || opts.Matches != "" {
			return nil, fmt.Errorf("bool: --min, --max and --matches are not supported")
		}
		s := dsl.Bool()
		s = s.WithMutation(func(b *dsl.BoolSchema) {
			common(b.Base(), opts, def)
			if opts.IsTrue {
				b.IsTrue()
			}
			if opts.IsFalse {
				b.IsFalse()
			}
		})
		return withOneOfAndExpr(s.Base(), opts, parseBool)
	case "string":
		var re *regexp.Regexp
		if opts.Matches != "" {
			var err error
			if re, err = regexp.Compile(opts.Matches); err != nil {
				return nil, fmt.Errorf("matches: %w", err)
			}
		}
		s := dsl.String().WithMutation(func(b *dsl.StringSchema) {
			common(b.Base(), opts, def)
			if opts.Min != nil {
				b.Min(int(*opts.Min))
			}
			if opts.Max != nil {
				b.Max(int(*opts.Max))
			}
			if re != nil {
				b.Matches(re)
			}
		})
		return withOneOfAndExpr(s.Base(), opts, func(s string) (string, error) { return s, nil })
	case "number":
		s := dsl.Number().WithMutation(func(b *dsl.NumberSchema) {
			common(b.Base(), opts, def)
			if opts.Min != nil {
				b.Min(*opts.Min)
			}
			if opts.Max != nil {
				b.Max(*opts.Max)
			}
		})
		return withOneOfAndExpr(s.Base(), opts, parseNumber)
	case "mixed", "any":
		s := dsl.Mixed().WithMutation(func(b *dsl.MixedSchema) { common(b.Base(), opts, def) })
		return withOneOfAndExpr(s.Base(), opts, func(s string) (any, error) { return s, nil })
	default:
		return nil, fmt.Errorf("unknown kind %q", opts.Kind)
	}
}

// common applies the presence and spec options; n must be in mutable mode.
func common[T any](n *skema.Node[T], opts Options, def any) {
	if opts.Label != "" {
		n.Label(opts.Label)
	}
	if opts.Strict {
		n.Strict(true)
	}
	if opts.NotRequired {
		n.NotRequired()
	}
	if opts.Nullable {
		n.Nullable()
	}
	if opts.Defined {
		n.Defined()
	}
	if opts.Required {
		n.Required()
	}
	if !skema.IsUndefined(def) {
		n.Default(def)
	}
}

func withOneOfAndExpr[T any](n *skema.Node[T], opts Options, parse func(string) (T, error)) (Checker, error) {
	if len(opts.OneOf) > 0 {
		vs := make([]T, 0, len(opts.OneOf))
		for _, raw := range opts.OneOf {
			v, err := parse(raw)
			if err != nil {
				return nil, fmt.Errorf("one-of %q: %w", raw, err)
			}
			vs = append(vs, v)
		}
		n = n.OneOf(vs)
	}
	if opts.Expr != "" {
		t, err := rules.Expr[T]("expr", opts.Expr)
		if err != nil {
			return nil, err
		}
		n = n.Test(t)
	}
	return erased[T]{s: n}, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean")
}

func parseNumber(s string) (float64, error) {
	out, err := dsl.Number().Parse(context.Background(), s)
	if err != nil {
		return 0, err
	}
	return out, nil
}
