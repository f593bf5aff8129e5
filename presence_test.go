package skema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
)

func TestPresence_Matrix(t *testing.T) {
	cases := []struct {
		name   string
		schema *dsl.BoolSchema
		in     any
		code   string // empty when valid
		want   skema.Presence
	}{
		{"optional absent", dsl.Bool(), skema.Undefined, "", skema.Absent},
		{"optional null", dsl.Bool(), nil, skema.CodeNullable, skema.Null},
		{"required absent", dsl.Bool().Required(), skema.Undefined, skema.CodeRequired, skema.Absent},
		{"required null", dsl.Bool().Required(), nil, skema.CodeRequired, skema.Null},
		{"required nullable null", dsl.Bool().Required().Nullable(), nil, "", skema.Null},
		{"required nullable absent", dsl.Bool().Nullable().Required(), skema.Undefined, skema.CodeRequired, skema.Absent},
		{"defined absent", dsl.Bool().Defined(), skema.Undefined, skema.CodeDefined, skema.Absent},
		{"defined null", dsl.Bool().Defined(), nil, skema.CodeNullable, skema.Null},
		{"defined nullable null", dsl.Bool().Defined().Nullable(), nil, "", skema.Null},
		{"not required absent", dsl.Bool().Required().NotRequired(), skema.Undefined, "", skema.Absent},
		{"not required null", dsl.Bool().Required().NotRequired(), nil, "", skema.Null},
		{"non nullable after nullable", dsl.Bool().Nullable().NonNullable(), nil, skema.CodeNullable, skema.Null},
		{"typed nil pointer is null", dsl.Bool().Nullable(), (*bool)(nil), "", skema.Null},
		{"present", dsl.Bool().Required(), true, "", skema.Present},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.schema.Validate(ctx(), tc.in)
			assert.Equal(t, tc.want, v.Presence())
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			iss := requireIssues(t, err)
			require.Len(t, iss, 1)
			assert.Equal(t, tc.code, iss[0].Code)
			assert.Equal(t, skema.KindPresence, iss[0].Kind)
		})
	}
}

func TestPresence_ShortCircuitsTests(t *testing.T) {
	s := dsl.Bool().Required().IsTrue().Test(fail[bool]("never"))
	_, err := s.Validate(ctx(), skema.Undefined)
	iss := requireIssues(t, err)
	assert.Equal(t, []string{skema.CodeRequired}, iss.Codes())
}

func TestPresence_CustomMessages(t *testing.T) {
	_, err := dsl.Bool().Required(skema.Template("{path} is mandatory")).Validate(ctx(), skema.Undefined)
	iss := requireIssues(t, err)
	assert.Equal(t, "this is mandatory", iss[0].Message)

	_, err = dsl.Bool().Label("Flag").NonNullable(skema.Template("{path} cannot be null")).Validate(ctx(), nil)
	iss = requireIssues(t, err)
	assert.Equal(t, "Flag cannot be null", iss[0].Message)
}

func TestDefault_ThunkRunsPerCall(t *testing.T) {
	calls := 0
	var seen []bool
	s := dsl.Bool().
		Default(func() bool { calls++; return false }).
		Test(skema.Test[bool]{
			Name: "record",
			Func: func(_ *skema.TestContext, v skema.Value[bool]) bool {
				got, _ := v.Get()
				seen = append(seen, got)
				return true
			},
		})

	for i := 0; i < 2; i++ {
		v, err := s.Validate(ctx(), skema.Undefined)
		require.NoError(t, err)
		got, ok := v.Get()
		assert.True(t, ok)
		assert.False(t, got)
	}
	assert.Equal(t, 2, calls)
	assert.Equal(t, []bool{false, false}, seen)

	// present input never calls the thunk
	_, err := s.Validate(ctx(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDefault_AnyThunk(t *testing.T) {
	s := dsl.Bool().Default(func() any { return true })
	got, err := s.Parse(ctx(), skema.Undefined)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestDefault_Literal(t *testing.T) {
	s := dsl.Bool().Default(true)
	assert.True(t, s.HasDefault())
	d, ok := s.GetDefault()
	assert.True(t, ok)
	assert.Equal(t, true, d)

	got, err := s.Parse(ctx(), skema.Undefined)
	require.NoError(t, err)
	assert.True(t, got)

	// null is not absent
	_, err = s.Validate(ctx(), nil)
	iss := requireIssues(t, err)
	assert.Equal(t, skema.CodeNullable, iss[0].Code)
}

func TestDefault_AppliesBeforeTests(t *testing.T) {
	_, err := dsl.Bool().Default(false).IsTrue().Validate(ctx(), skema.Undefined)
	iss := requireIssues(t, err)
	assert.Equal(t, []string{dsl.IsValueTest}, iss.Codes())
}

func TestDefault_SatisfiesRequired(t *testing.T) {
	v, err := dsl.Bool().Required().Default(true).Validate(ctx(), skema.Undefined)
	require.NoError(t, err)
	assert.True(t, v.IsPresent())
}

func TestDefault_LiteralIsCheckedLazily(t *testing.T) {
	// building succeeds; the mismatch surfaces when the default is applied
	s := dsl.Bool().Default("yes")
	_, err := s.Validate(ctx(), skema.Undefined)
	iss := requireIssues(t, err)
	require.Len(t, iss, 1)
	assert.Equal(t, skema.CodeInvalidType, iss[0].Code)
	assert.Equal(t, skema.KindTypeMismatch, iss[0].Kind)

	_, err = s.Validate(ctx(), false)
	assert.NoError(t, err)
}

func TestDefault_UndefinedClears(t *testing.T) {
	s := dsl.Bool().Default(true).Default(skema.Undefined)
	assert.False(t, s.HasDefault())
	v, err := s.Validate(ctx(), skema.Undefined)
	require.NoError(t, err)
	assert.True(t, v.IsAbsent())
}

func TestDefault_NilDefaultIsNull(t *testing.T) {
	v, err := dsl.Bool().Nullable().Default(nil).Validate(ctx(), skema.Undefined)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestRequirement_String(t *testing.T) {
	assert.Equal(t, "optional", skema.Optional.String())
	assert.Equal(t, "defined", skema.Defined.String())
	assert.Equal(t, "required", skema.Required.String())
}
