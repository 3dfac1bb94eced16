package repository

import (
	"context"
	"testing"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_UpsertAndGetByEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	u, err := store.Users.GetUserByEmail(ctx, "user@nextmail.com")
	assert.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, store.Users.UpsertUser(ctx, &models.User{Name: "User", Email: "user@nextmail.com", Password: "hash-1"}))
	require.NoError(t, store.Users.UpsertUser(ctx, &models.User{Name: "Renamed", Email: "user@nextmail.com", Password: "hash-2"}))

	u, err = store.Users.GetUserByEmail(ctx, "user@nextmail.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Renamed", u.Name)
	assert.Equal(t, "hash-1", u.Password)
	assert.Equal(t, int64(1), testhelpers.CountRows(t, db, &models.User{}))
}
