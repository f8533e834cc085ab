package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorline/dealer-backend/internal/model"
)

func newUserFixture() (*UserService, *memUserStore, *memClientStore) {
	users := newMemUserStore()
	clients := newMemClientStore()
	return NewUserService(users, clients), users, clients
}

func TestUserCreateRejectsDuplicateUsername(t *testing.T) {
	svc, _, _ := newUserFixture()
	ctx := context.Background()

	first := &model.User{Username: "jsmith", Email: "j@dealer.test", PasswordHash: "x"}
	require.NoError(t, svc.Create(ctx, first))

	err := svc.Create(ctx, &model.User{Username: "jsmith", Email: "other@dealer.test", PasswordHash: "y"})

	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "user", dup.Kind)
	assert.Equal(t, first.ID, dup.ConflictID)
}

func TestUserUpdateEmptyHashKeepsPassword(t *testing.T) {
	svc, _, _ := newUserFixture()
	ctx := context.Background()

	u := &model.User{Username: "jsmith", PasswordHash: "original-hash"}
	require.NoError(t, svc.Create(ctx, u))

	patch := &model.User{ID: u.ID, Username: "jsmith", Email: "new@dealer.test"}
	require.NoError(t, svc.Update(ctx, patch))

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "original-hash", got.PasswordHash)
	assert.Equal(t, "new@dealer.test", got.Email)
}

func TestUserUpdateNewHashReplacesPassword(t *testing.T) {
	svc, _, _ := newUserFixture()
	ctx := context.Background()

	u := &model.User{Username: "jsmith", PasswordHash: "original-hash"}
	require.NoError(t, svc.Create(ctx, u))

	patch := &model.User{ID: u.ID, Username: "jsmith", PasswordHash: "new-hash"}
	require.NoError(t, svc.Update(ctx, patch))

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)
}

func TestUserDeleteBlockedByAssignedClient(t *testing.T) {
	svc, _, clients := newUserFixture()
	ctx := context.Background()

	u := &model.User{Username: "jsmith", PasswordHash: "x"}
	require.NoError(t, svc.Create(ctx, u))
	client := &model.Client{Name: "Buyer One", SalesPerson: u.ID}
	require.NoError(t, clients.Create(ctx, client))

	_, err := svc.Delete(ctx, u.ID)
	var inUse *InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, "user", inUse.Kind)
	assert.Equal(t, "client", inUse.Dependent)

	// Reassigning the client to another user lifts the block.
	other := &model.User{Username: "mlopez", PasswordHash: "y"}
	require.NoError(t, svc.Create(ctx, other))
	client.SalesPerson = other.ID
	require.NoError(t, clients.Update(ctx, client))

	deleted, err := svc.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, deleted.ID)
}

func TestUserDeleteUnknownID(t *testing.T) {
	svc, _, _ := newUserFixture()
	_, err := svc.Delete(context.Background(), 17)
	require.ErrorIs(t, err, ErrNotFound)
}
