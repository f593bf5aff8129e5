package skema

import (
	"context"

	"github.com/rs/zerolog"
)

// run carries the per-call state of one validation.
type run struct {
	ctx      context.Context
	path     string
	failFast bool
	strict   bool
	log      *zerolog.Logger
}

func (n *Node[T]) newRun(ctx context.Context, opt ValidateOpt) *run {
	if ctx == nil {
		ctx = context.Background()
	}
	r := &run{
		ctx:      ctx,
		path:     opt.Path,
		failFast: opt.FailFast || IsFailFast(ctx),
		strict:   opt.Strict || n.strict,
		log:      opt.Logger,
	}
	if r.path == "" {
		r.path = "/"
	}
	if r.log == nil {
		r.log = logger()
	}
	return r
}

// Validate runs the full pipeline: transforms, default resolution, presence
// checks, type check and tests. It returns the coerced value, or Issues.
func (n *Node[T]) Validate(ctx context.Context, v any) (Value[T], error) {
	return n.ValidateWith(ctx, v, ValidateOpt{})
}

// ValidateWith is Validate with explicit options. When tests fail the coerced
// value is returned together with the Issues.
func (n *Node[T]) ValidateWith(ctx context.Context, v any, opt ValidateOpt) (Value[T], error) {
	r := n.newRun(ctx, opt)
	out, iss := n.resolve(r, v)
	if len(iss) > 0 {
		return out, iss
	}
	if iss := n.runTests(r, out, v); len(iss) > 0 {
		return out, iss
	}
	return out, nil
}

// Parse validates v and returns the plain value; absent and null results
// yield the zero value of T.
func (n *Node[T]) Parse(ctx context.Context, v any) (T, error) {
	out, err := n.Validate(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return out.OrZero(), nil
}

// Cast coerces v without running tests. Presence and type failures are
// still reported.
func (n *Node[T]) Cast(v any) (Value[T], error) {
	r := n.newRun(context.Background(), ValidateOpt{})
	out, iss := n.resolve(r, v)
	if len(iss) > 0 {
		return out, iss
	}
	return out, nil
}

// IsValid reports whether v passes Validate.
func (n *Node[T]) IsValid(ctx context.Context, v any) bool {
	_, err := n.Validate(ctx, v)
	return err == nil
}

// resolve coerces the raw input and applies presence and type checks, which
// short-circuit the test pipeline on failure.
func (n *Node[T]) resolve(r *run, raw any) (Value[T], Issues) {
	v := raw
	if !r.strict {
		v = n.applyTransforms(raw)
	}
	p := classify(v)
	// strict mode validates the input as given, so defaults are not applied
	if p == Absent && !r.strict {
		if d, ok := n.presence.resolveDefault(); ok {
			r.log.Debug().Str("path", r.path).Str("type", n.kind.Name).Msg("default applied")
			v = d
			p = classify(d)
		}
	}

	switch p {
	case Absent:
		switch n.presence.requirement {
		case Required:
			return AbsentValue[T](), Issues{n.presenceIssue(r, CodeRequired, n.presence.requiredMsg, raw)}
		case Defined:
			return AbsentValue[T](), Issues{n.presenceIssue(r, CodeDefined, n.presence.requiredMsg, raw)}
		}
		return AbsentValue[T](), nil
	case Null:
		if n.presence.nullable {
			return NullValue[T](), nil
		}
		if n.presence.requirement == Required {
			return NullValue[T](), Issues{n.presenceIssue(r, CodeRequired, n.presence.requiredMsg, raw)}
		}
		return NullValue[T](), Issues{n.presenceIssue(r, CodeNullable, n.presence.nullMsg, raw)}
	}

	t, ok := n.kind.Check(v)
	if !ok {
		params := n.baseParams(r, v, raw)
		params["type"] = n.kind.Name
		r.log.Debug().Str("path", r.path).Str("type", n.kind.Name).Msg("type mismatch")
		return AbsentValue[T](), Issues{issueAt(r.path, CodeInvalidType, KindTypeMismatch, Locale(CodeInvalidType), params)}
	}
	return Some(t), nil
}

func (n *Node[T]) presenceIssue(r *run, code string, msg Message, raw any) Issue {
	if msg == nil {
		msg = Locale(code)
	}
	return issueAt(r.path, code, KindPresence, msg, n.baseParams(r, raw, raw))
}

// runTests runs the test pipeline in registration order, collecting every
// failure unless fail-fast is on.
func (n *Node[T]) runTests(r *run, v Value[T], raw any) Issues {
	var iss Issues
	for _, t := range n.tests {
		tc := &TestContext{ctx: r.ctx, path: r.path, label: n.label, original: raw, params: t.Params}
		if t.Func(tc, v) {
			continue
		}
		params := n.baseParams(r, v.Raw(), raw)
		for k, pv := range t.Params {
			params[k] = pv
		}
		for k, pv := range tc.extra {
			params[k] = pv
		}
		it := issueAt(r.path, t.Name, KindTestFailure, t.message(), params)
		it.Rule = t.Name
		r.log.Debug().Str("path", r.path).Str("test", t.Name).Msg("test failed")
		iss = AppendIssues(iss, it)
		if r.failFast {
			break
		}
	}
	return iss
}

// baseParams are available to every message: value, originalValue, path and
// label. Test params are layered on top and may shadow them.
func (n *Node[T]) baseParams(r *run, v, raw any) Params {
	path := n.label
	if path == "" {
		path = r.path
	}
	if path == "" || path == "/" {
		path = "this"
	}
	return Params{
		"value":         displayValue(v),
		"originalValue": displayValue(raw),
		"path":          path,
		"label":         n.label,
	}
}

func displayValue(v any) any {
	if IsUndefined(v) {
		return "undefined"
	}
	return v
}
