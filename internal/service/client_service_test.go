package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorline/dealer-backend/internal/model"
)

func newClientFixture() (*ClientService, *memClientStore, *memSaleStore) {
	clients := newMemClientStore()
	sales := newMemSaleStore()
	return NewClientService(clients, sales), clients, sales
}

func TestClientCreateRejectsDuplicateName(t *testing.T) {
	svc, _, _ := newClientFixture()
	ctx := context.Background()

	first := &model.Client{Name: "Acme Fleet", Email: "fleet@acme.test", SalesPerson: 1}
	require.NoError(t, svc.Create(ctx, first))

	err := svc.Create(ctx, &model.Client{Name: "Acme Fleet", Email: "other@acme.test", SalesPerson: 2})

	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "client", dup.Kind)
	assert.Equal(t, first.ID, dup.ConflictID)
}

func TestClientUpdateKeepsOwnName(t *testing.T) {
	svc, _, _ := newClientFixture()
	ctx := context.Background()

	c := &model.Client{Name: "Jane Doe", Address: "1 Main St", SalesPerson: 1}
	require.NoError(t, svc.Create(ctx, c))

	c.Address = "2 Oak Ave"
	require.NoError(t, svc.Update(ctx, c))

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 Oak Ave", got.Address)
}

func TestClientUpdateRejectsTakenName(t *testing.T) {
	svc, _, _ := newClientFixture()
	ctx := context.Background()

	a := &model.Client{Name: "Jane Doe", SalesPerson: 1}
	b := &model.Client{Name: "John Roe", SalesPerson: 1}
	require.NoError(t, svc.Create(ctx, a))
	require.NoError(t, svc.Create(ctx, b))

	b.Name = "Jane Doe"
	var dup *DuplicateError
	require.ErrorAs(t, svc.Update(ctx, b), &dup)
	assert.Equal(t, a.ID, dup.ConflictID)
}

func TestClientDeleteBlockedBySale(t *testing.T) {
	svc, _, sales := newClientFixture()
	ctx := context.Background()

	c := &model.Client{Name: "Buyer One", SalesPerson: 1}
	require.NoError(t, svc.Create(ctx, c))
	sale := &model.Sale{Buyer: c.ID, SaleDate: time.Now(), Quantity: 1, Ticket: 500}
	require.NoError(t, sales.Create(ctx, sale))

	_, err := svc.Delete(ctx, c.ID)
	var inUse *InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, "client", inUse.Kind)
	assert.Equal(t, "sale", inUse.Dependent)

	_, err = sales.Delete(ctx, sale.ID)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, deleted.ID)
}

func TestClientDeleteUnknownID(t *testing.T) {
	svc, _, _ := newClientFixture()
	_, err := svc.Delete(context.Background(), 31)
	require.ErrorIs(t, err, ErrNotFound)
}
