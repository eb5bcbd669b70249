package auth_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/catalog-service/pkg/auth"
	"github.com/stretchr/testify/require"
)

func TestAuthContext(t *testing.T) {
	t.Parallel()

	_, err := auth.GetUserName(context.Background())
	require.ErrorIs(t, err, auth.ErrNoUser)

	ctx := auth.SetAuthContext(context.Background(), "librarian")
	name, err := auth.GetUserName(ctx)
	require.NoError(t, err)
	require.Equal(t, "librarian", name)
}
