package skema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
)

func pass[T any](name string, exclusive bool) skema.Test[T] {
	return skema.Test[T]{
		Name:      name,
		Exclusive: exclusive,
		Func:      func(*skema.TestContext, skema.Value[T]) bool { return true },
	}
}

func TestClone_IsIndependent(t *testing.T) {
	orig := dsl.Bool().IsTrue().Label("orig")
	cl := orig.Clone()
	require.NotSame(t, orig.Base(), cl.Base())
	assert.Equal(t, orig.Describe(), cl.Describe())

	cl.WithMutation(func(b *dsl.BoolSchema) {
		b.IsFalse()
		b.Test(pass[bool]("extra", false))
		b.Required()
		b.Label("clone")
	})

	d := orig.Describe()
	assert.Equal(t, []string{dsl.IsValueTest}, orig.Base().Tests())
	assert.Equal(t, "true", d.Tests[0].Params["value"])
	assert.Equal(t, "optional", d.Requirement)
	assert.Equal(t, "orig", d.Label)

	dc := cl.Describe()
	assert.Equal(t, []string{dsl.IsValueTest, "extra"}, cl.Base().Tests())
	assert.Equal(t, "false", dc.Tests[0].Params["value"])
	assert.Equal(t, "required", dc.Requirement)
}

func TestBuilderCalls_CloneOutsideMutation(t *testing.T) {
	s := dsl.Bool()
	r := s.Required()
	assert.NotSame(t, s.Base(), r.Base())
	assert.Equal(t, "optional", s.Describe().Requirement)
	assert.Equal(t, "required", r.Describe().Requirement)

	// the original keeps its single coercion transform
	assert.Equal(t, 1, s.Describe().Transforms)
	assert.Equal(t, 2, s.Transform(dsl.CoerceBool).Describe().Transforms)
	assert.Equal(t, 1, s.Describe().Transforms)
}

func TestWithMutation_MutatesInPlaceAndRestores(t *testing.T) {
	s := dsl.Bool()
	var inside *skema.Node[bool]
	out := s.WithMutation(func(b *dsl.BoolSchema) {
		inside = b.Required().Base()
		b.IsTrue()
	})
	assert.Same(t, s.Base(), out.Base())
	assert.Same(t, s.Base(), inside)
	assert.Equal(t, "required", s.Describe().Requirement)
	assert.Equal(t, []string{dsl.IsValueTest}, s.Base().Tests())

	// immutable again afterwards
	assert.NotSame(t, s.Base(), s.Label("x").Base())
}

func TestWithMutation_RestoresAfterPanic(t *testing.T) {
	s := dsl.Bool()
	assert.PanicsWithValue(t, "boom", func() {
		s.WithMutation(func(b *dsl.BoolSchema) {
			b.Required()
			panic("boom")
		})
	})
	// changes made before the panic stay, but the mode is restored
	assert.Equal(t, "required", s.Describe().Requirement)
	assert.NotSame(t, s.Base(), s.Nullable().Base())
	assert.False(t, s.IsNullable())
}

func TestWithMutation_Nested(t *testing.T) {
	s := dsl.Bool()
	s.WithMutation(func(b *dsl.BoolSchema) {
		b.WithMutation(func(inner *dsl.BoolSchema) { inner.Label("inner") })
		// the inner scope ending must not end the outer one
		assert.Same(t, s.Base(), b.Required().Base())
	})
	d := s.Describe()
	assert.Equal(t, "inner", d.Label)
	assert.Equal(t, "required", d.Requirement)
	assert.NotSame(t, s.Base(), s.Optional().Base())
}

func TestTest_ExclusiveReplacesInPlace(t *testing.T) {
	s := dsl.Bool().
		Test(pass[bool]("a", false)).
		IsTrue().
		Test(pass[bool]("b", false)).
		IsFalse()
	assert.Equal(t, []string{"a", dsl.IsValueTest, "b"}, s.Base().Tests())
	assert.Equal(t, "false", s.Describe().Tests[1].Params["value"])
}

func TestTest_NonExclusiveCoexist(t *testing.T) {
	s := dsl.Bool().
		Test(pass[bool]("x", false)).
		Test(pass[bool]("x", false))
	assert.Equal(t, []string{"x", "x"}, s.Base().Tests())
}

func TestTest_ExclusiveEvictsSameName(t *testing.T) {
	s := dsl.Bool().
		Test(pass[bool]("a", false)).
		Test(fail[bool]("x")).
		Test(pass[bool]("b", false)).
		Test(fail[bool]("x"))
	base := s.Test(pass[bool]("x", true))

	assert.Equal(t, []string{"a", "x", "b"}, base.Base().Tests())
	assert.True(t, base.Describe().Tests[1].Exclusive)
	assert.True(t, base.IsValid(ctx(), true))

	// the receiver keeps both failing registrations
	assert.Equal(t, []string{"a", "x", "b", "x"}, s.Base().Tests())
	assert.False(t, s.IsValid(ctx(), true))
}

func TestTest_ParamsAreCopied(t *testing.T) {
	p := skema.Params{"k": 1}
	tt := pass[bool]("p", false)
	tt.Params = p
	s := dsl.Bool().Test(tt)
	p["k"] = 2
	assert.Equal(t, 1, s.Describe().Tests[0].Params["k"])
}

func TestTest_MalformedPanics(t *testing.T) {
	cases := []struct {
		name string
		test skema.Test[bool]
	}{
		{"no func", skema.Test[bool]{Name: "x"}},
		{"exclusive without name", skema.Test[bool]{Exclusive: true, Func: pass[bool]("", false).Func}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, skema.ErrMalformedTest))
				var ce *skema.ConfigError
				assert.True(t, errors.As(err, &ce))
			}()
			dsl.Bool().Test(tc.test)
		})
	}
}

func TestNewNode_CustomKind(t *testing.T) {
	kind := &skema.Kind[int]{
		Name: "int",
		Check: func(v any) (int, bool) {
			i, ok := v.(int)
			return i, ok
		},
	}
	n := skema.NewNode(kind, func(n *skema.Node[int]) {
		n.Required()
	})
	assert.Equal(t, "int", n.Type())
	assert.Equal(t, skema.Required, n.Requirement())

	v, err := n.Validate(ctx(), 4)
	require.NoError(t, err)
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 4, got)
}
