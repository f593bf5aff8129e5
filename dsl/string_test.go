package dsl_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
)

type name string

func TestStringSchema_Basic(t *testing.T) {
	ctx := context.Background()
	s := g.String()

	v, err := s.Parse(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	for in, want := range map[any]string{12: "12", 1.5: "1.5", true: "true", name("bob"): "bob"} {
		got, err := s.Parse(ctx, in)
		require.NoError(t, err, "input %#v", in)
		assert.Equal(t, want, got)
	}

	_, err = s.Parse(ctx, []string{"a"})
	iss, ok := skema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, skema.CodeInvalidType, iss[0].Code)
	assert.Equal(t, "string", iss[0].Params["type"])

	v2, err := s.Validate(ctx, skema.Undefined)
	require.NoError(t, err)
	assert.True(t, v2.IsAbsent())
}

func TestStringSchema_Lengths(t *testing.T) {
	ctx := context.Background()
	s := g.String().Min(2).Max(4)
	assert.True(t, s.IsValid(ctx, "abc"))
	assert.True(t, s.IsValid(ctx, "日本"), "runes, not bytes")

	_, err := s.Validate(ctx, "a")
	iss, _ := skema.AsIssues(err)
	assert.Equal(t, []string{"min"}, iss.Codes())
	assert.Equal(t, "this must be at least 2", iss[0].Message)

	_, err = s.Validate(ctx, "abcde")
	iss, _ = skema.AsIssues(err)
	assert.Equal(t, []string{"max"}, iss.Codes())

	// exclusive: the later bound wins
	assert.True(t, s.Min(1).IsValid(ctx, "a"))
	assert.Len(t, s.Min(1).Base().Tests(), 2)

	l := g.String().Length(3)
	assert.True(t, l.IsValid(ctx, "abc"))
	assert.False(t, l.IsValid(ctx, "ab"))
}

func TestStringSchema_Matches(t *testing.T) {
	ctx := context.Background()
	s := g.String().
		Matches(regexp.MustCompile(`^[a-z]+$`)).
		MatchesOpt(regexp.MustCompile(`a`), g.MatchOpt{Name: "has-a"})
	assert.Equal(t, []string{"matches", "has-a"}, s.Base().Tests())
	assert.True(t, s.IsValid(ctx, "abc"))

	_, err := s.Validate(ctx, "XYZ")
	iss, _ := skema.AsIssues(err)
	assert.Equal(t, []string{"matches", "has-a"}, iss.Codes())
	assert.Equal(t, `this must match the following: "^[a-z]+$"`, iss[0].Message)

	opt := g.String().MatchesOpt(regexp.MustCompile(`^\d+$`), g.MatchOpt{ExcludeEmptyString: true})
	assert.True(t, opt.IsValid(ctx, ""))
	assert.False(t, opt.IsValid(ctx, "x"))
}

func TestStringSchema_Trim(t *testing.T) {
	ctx := context.Background()
	got, err := g.String().Trim().Parse(ctx, "  hi  ")
	require.NoError(t, err)
	assert.Equal(t, "hi", got)

	_, err = g.String().Trim().Strict(true).Validate(ctx, " hi")
	iss, _ := skema.AsIssues(err)
	assert.Equal(t, []string{"trim"}, iss.Codes())
}

func TestStringSchema_Case(t *testing.T) {
	ctx := context.Background()
	got, err := g.String().Lowercase().Parse(ctx, "HeLLo")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = g.String().Uppercase().Parse(ctx, "HeLLo")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", got)

	_, err = g.String().Uppercase().ValidateWith(ctx, "abc", skema.ValidateOpt{Strict: true})
	iss, _ := skema.AsIssues(err)
	assert.Equal(t, []string{"uppercase"}, iss.Codes())
}
