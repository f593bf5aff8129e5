package skema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
)

func ctx() context.Context { return context.Background() }

func fail[T any](name string) skema.Test[T] {
	return skema.Test[T]{
		Name: name,
		Func: func(*skema.TestContext, skema.Value[T]) bool { return false },
	}
}

func requireIssues(t *testing.T, err error) skema.Issues {
	t.Helper()
	require.Error(t, err)
	iss, ok := skema.AsIssues(err)
	require.True(t, ok, "expected Issues, got %T", err)
	return iss
}
