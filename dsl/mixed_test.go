package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

func TestMixedSchema(t *testing.T) {
	ctx := context.Background()
	s := g.Mixed()
	for _, in := range []any{1, "x", []int{1}, map[string]any{"a": 1}, struct{}{}} {
		v, err := s.Validate(ctx, in)
		require.NoError(t, err)
		assert.True(t, v.IsPresent())
	}
	assert.Equal(t, skema.MixedKind, s.Type())

	_, err := s.Validate(ctx, nil)
	iss, _ := skema.AsIssues(err)
	assert.Equal(t, []string{skema.CodeNullable}, iss.Codes())

	one := s.OneOf([]any{"a", 1})
	assert.True(t, one.IsValid(ctx, 1))
	assert.False(t, one.IsValid(ctx, "b"))
}

func TestMixedOf(t *testing.T) {
	ctx := context.Background()
	even := g.MixedOf("even", func(v any) bool {
		i, ok := v.(int)
		return ok && i%2 == 0
	})
	assert.True(t, even.IsValid(ctx, 4))

	_, err := even.Validate(ctx, 3)
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, skema.CodeInvalidType, iss[0].Code)
	assert.Equal(t, "this must be a `even` type", iss[0].Message)
}
