package service

import (
	"context"
	"fmt"

	"github.com/motorline/dealer-backend/internal/config"
	"github.com/motorline/dealer-backend/internal/model"
)

// SaleStore is the persistence capability SaleService consumes.
type SaleStore interface {
	Create(ctx context.Context, s *model.Sale) error
	GetByID(ctx context.Context, id uint64) (*model.Sale, error)
	List(ctx context.Context) ([]*model.Sale, error)
	Update(ctx context.Context, s *model.Sale) error
	Delete(ctx context.Context, id uint64) (*model.Sale, error)
}

// SaleService owns the lifecycle of sale records. Every create draws
// the next ticket number from the durable `ticket` sequence before the
// insert; allocation failure aborts the create, and a number consumed
// by a create whose insert later fails is skipped, never reissued.
type SaleService struct {
	sales SaleStore
	seq   SequenceSource
}

// NewSaleService wires the sale store with the sequence allocator.
func NewSaleService(sales SaleStore, seq SequenceSource) *SaleService {
	return &SaleService{sales: sales, seq: seq}
}

// Create allocates a ticket number and stores the sale. The allocated
// number is embedded in the record before Create returns so callers
// can display it immediately.
func (s *SaleService) Create(ctx context.Context, sale *model.Sale) error {
	ticket, err := s.seq.Next(ctx, config.TicketSequence)
	if err != nil {
		// Fail closed: without a durably committed number the sale
		// must not be written.
		return fmt.Errorf("allocate ticket: %w", err)
	}
	sale.Ticket = ticket
	return s.sales.Create(ctx, sale)
}

// Get returns the sale with the given id.
func (s *SaleService) Get(ctx context.Context, id uint64) (*model.Sale, error) {
	return s.sales.GetByID(ctx, id)
}

// List returns all stored sales.
func (s *SaleService) List(ctx context.Context) ([]*model.Sale, error) {
	return s.sales.List(ctx)
}

// Update replaces the mutable fields of a sale. The ticket assigned at
// creation is carried forward regardless of what the caller supplies.
func (s *SaleService) Update(ctx context.Context, sale *model.Sale) error {
	existing, err := s.sales.GetByID(ctx, sale.ID)
	if err != nil {
		return err
	}
	sale.Ticket = existing.Ticket
	return s.sales.Update(ctx, sale)
}

// Delete removes a sale and returns the deleted record. Sales have no
// dependents; their ticket number simply becomes a permanent gap.
func (s *SaleService) Delete(ctx context.Context, id uint64) (*model.Sale, error) {
	if _, err := s.sales.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.sales.Delete(ctx, id)
}
