package service

import (
	"context"
	"fmt"

	"github.com/motorline/dealer-backend/internal/config"
	"github.com/motorline/dealer-backend/internal/model"
)

// InvoiceStore is the persistence capability InvoiceService consumes.
type InvoiceStore interface {
	Create(ctx context.Context, inv *model.Invoice) error
	GetByID(ctx context.Context, id uint64) (*model.Invoice, error)
	List(ctx context.Context) ([]*model.Invoice, error)
	Update(ctx context.Context, inv *model.Invoice) error
	Delete(ctx context.Context, id uint64) (*model.Invoice, error)
}

// InvoiceService owns the lifecycle of invoices. Invoice numbers come
// from the `receive` sequence, an independent counter from sale
// tickets, with the same consume-on-allocate contract.
type InvoiceService struct {
	invoices InvoiceStore
	seq      SequenceSource
}

// NewInvoiceService wires the invoice store with the sequence allocator.
func NewInvoiceService(invoices InvoiceStore, seq SequenceSource) *InvoiceService {
	return &InvoiceService{invoices: invoices, seq: seq}
}

// Create allocates the next invoice number and stores the invoice.
func (s *InvoiceService) Create(ctx context.Context, inv *model.Invoice) error {
	receive, err := s.seq.Next(ctx, config.ReceiveSequence)
	if err != nil {
		return fmt.Errorf("allocate invoice number: %w", err)
	}
	inv.Receive = receive
	return s.invoices.Create(ctx, inv)
}

// Get returns the invoice with the given id.
func (s *InvoiceService) Get(ctx context.Context, id uint64) (*model.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

// List returns all stored invoices.
func (s *InvoiceService) List(ctx context.Context) ([]*model.Invoice, error) {
	return s.invoices.List(ctx)
}

// Update replaces the mutable fields of an invoice, carrying the
// assigned invoice number forward.
func (s *InvoiceService) Update(ctx context.Context, inv *model.Invoice) error {
	existing, err := s.invoices.GetByID(ctx, inv.ID)
	if err != nil {
		return err
	}
	inv.Receive = existing.Receive
	return s.invoices.Update(ctx, inv)
}

// Delete removes an invoice and returns the deleted record.
func (s *InvoiceService) Delete(ctx context.Context, id uint64) (*model.Invoice, error) {
	if _, err := s.invoices.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.invoices.Delete(ctx, id)
}
