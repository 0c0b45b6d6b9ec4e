package database

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserEnsureCreatesAndUpdates(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user, err := repo.Ensure(ctx, "42", "Anna")
	require.NoError(t, err)
	assert.Equal(t, "42", user.ID)
	assert.Equal(t, "Anna", user.Name)
	assert.True(t, user.NotificationEnabled, "notifications default to on")

	user, err = repo.Ensure(ctx, "42", "Anna B.")
	require.NoError(t, err)
	assert.Equal(t, "Anna B.", user.Name)

	users, err := repo.GetNotifiable(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "ensure must not duplicate the user")
}

func TestUserEnsureGeneratesGuestID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.Ensure(context.Background(), "", "Guest")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.ID, "guest_"), "got id %q", user.ID)
}

func TestUserSetNotifications(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Ensure(ctx, "42", "Anna")
	require.NoError(t, err)

	require.NoError(t, repo.SetNotifications(ctx, "42", false))
	users, err := repo.GetNotifiable(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserGetByIDUnknown(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.GetByID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}
