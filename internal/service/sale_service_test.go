package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorline/dealer-backend/internal/config"
	"github.com/motorline/dealer-backend/internal/model"
)

func newSaleFixture() (*SaleService, *memSaleStore, *memSequence) {
	sales := newMemSaleStore()
	seq := newMemSequence(config.DefaultSequenceStart)
	return NewSaleService(sales, seq), sales, seq
}

func TestSaleCreateAssignsTicketFromFloor(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	sale := &model.Sale{Buyer: 1, SaleDate: time.Now(), Quantity: 1, TotalPrice: 30000}
	require.NoError(t, svc.Create(ctx, sale))
	assert.Equal(t, uint64(500), sale.Ticket)

	got, err := svc.Get(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), got.Ticket)
}

func TestSaleTicketsStrictlyIncrease(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	var last uint64
	for i := 0; i < 5; i++ {
		sale := &model.Sale{Buyer: 1, SaleDate: time.Now(), Quantity: 1}
		require.NoError(t, svc.Create(ctx, sale))
		assert.Greater(t, sale.Ticket, last)
		last = sale.Ticket
	}
}

func TestSaleCreateIgnoresCallerTicket(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	sale := &model.Sale{Buyer: 1, Ticket: 9999}
	require.NoError(t, svc.Create(ctx, sale))
	assert.Equal(t, uint64(500), sale.Ticket)
}

func TestSaleCreateFailsClosedOnAllocatorError(t *testing.T) {
	svc, sales, seq := newSaleFixture()
	ctx := context.Background()

	seq.err = errors.New("sequences table unavailable")
	err := svc.Create(ctx, &model.Sale{Buyer: 1})
	require.ErrorIs(t, err, seq.err)

	stored, listErr := sales.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, stored, "no sale may be written without a committed ticket")
}

func TestSaleFailedPersistLeavesTicketGap(t *testing.T) {
	svc, sales, _ := newSaleFixture()
	ctx := context.Background()

	first := &model.Sale{Buyer: 1}
	require.NoError(t, svc.Create(ctx, first))
	require.Equal(t, uint64(500), first.Ticket)

	// The insert fails after the number was consumed.
	sales.createErr = errors.New("insert failed")
	require.Error(t, svc.Create(ctx, &model.Sale{Buyer: 2}))
	sales.createErr = nil

	// 501 was consumed by the failed create and is never reissued.
	third := &model.Sale{Buyer: 3}
	require.NoError(t, svc.Create(ctx, third))
	assert.Equal(t, uint64(502), third.Ticket)
}

func TestSaleConcurrentCreatesGetDistinctTickets(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	const n = 200
	tickets := make([]uint64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			sale := &model.Sale{Buyer: uint64(i + 1), Quantity: 1}
			if err := svc.Create(ctx, sale); err == nil {
				tickets[i] = sale.Ticket
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for i, ticket := range tickets {
		require.NotZero(t, ticket, "create %d failed", i)
		assert.GreaterOrEqual(t, ticket, uint64(500))
		assert.False(t, seen[ticket], "ticket %d issued twice", ticket)
		seen[ticket] = true
	}
	assert.Len(t, seen, n)
}

func TestSaleUpdateCarriesTicketForward(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	sale := &model.Sale{Buyer: 1, Quantity: 1}
	require.NoError(t, svc.Create(ctx, sale))
	assigned := sale.Ticket

	patch := &model.Sale{ID: sale.ID, Buyer: 1, Quantity: 2, Ticket: 9999}
	require.NoError(t, svc.Update(ctx, patch))

	got, err := svc.Get(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, assigned, got.Ticket)
	assert.Equal(t, 2, got.Quantity)
}

func TestSaleDeleteDoesNotRecycleTicket(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	sale := &model.Sale{Buyer: 1}
	require.NoError(t, svc.Create(ctx, sale))
	_, err := svc.Delete(ctx, sale.ID)
	require.NoError(t, err)

	next := &model.Sale{Buyer: 2}
	require.NoError(t, svc.Create(ctx, next))
	assert.Equal(t, uint64(501), next.Ticket, "deleted ticket numbers stay retired")
}

func TestSaleUpdateUnknownID(t *testing.T) {
	svc, _, _ := newSaleFixture()
	err := svc.Update(context.Background(), &model.Sale{ID: 9, Buyer: 1})
	require.ErrorIs(t, err, ErrNotFound)
}
