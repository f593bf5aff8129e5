package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	g "github.com/reoring/skema/dsl"
	"github.com/reoring/skema/rules"
)

func TestExpr(t *testing.T) {
	ctx := context.Background()
	s := g.Number().Test(rules.MustExpr[float64]("small", "value < 10"))
	assert.True(t, s.IsValid(ctx, 9))
	assert.True(t, s.IsValid(ctx, skema.Undefined))

	_, err := s.Validate(ctx, 11)
	iss := issues(t, err)
	assert.Equal(t, "small", iss[0].Code)
	assert.Equal(t, "value < 10", iss[0].Params["expr"])
	assert.Equal(t, "this does not satisfy value < 10", iss[0].Message)
}

func TestExpr_Env(t *testing.T) {
	ctx := context.Background()
	test, err := rules.Expr[string]("named", `label == "User" && len(value) > 2 && path == "/user"`)
	require.NoError(t, err)
	s := g.String().Label("User").Test(test)

	_, err = s.ValidateWith(ctx, "bob", skema.ValidateOpt{Path: "/user"})
	assert.NoError(t, err)
	_, err = s.ValidateWith(ctx, "bo", skema.ValidateOpt{Path: "/user"})
	assert.Error(t, err)
	_, err = s.ValidateWith(ctx, "bob", skema.ValidateOpt{Path: "/other"})
	assert.Error(t, err)

	p := g.String().Test(rules.MustExpr[string]("self", `params.expr != ""`))
	assert.True(t, p.IsValid(ctx, "x"))
}

func TestExpr_CompileError(t *testing.T) {
	_, err := rules.Expr[float64]("bad", "value <")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rules: compile")
	assert.Panics(t, func() { rules.MustExpr[float64]("bad", "value <") })
}

func TestExpr_RuntimeError(t *testing.T) {
	s := g.Mixed().Test(rules.MustExpr[any]("field", "value.size > 1"))
	_, err := s.Validate(context.Background(), 5)
	iss := issues(t, err)
	assert.Equal(t, "field", iss[0].Code)
	assert.NotEmpty(t, iss[0].Params["error"])
}
