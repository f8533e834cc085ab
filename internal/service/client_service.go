package service

import (
	"context"
	"errors"

	"github.com/motorline/dealer-backend/internal/model"
	"github.com/motorline/dealer-backend/internal/repository"
)

// ClientStore is the persistence capability ClientService consumes.
type ClientStore interface {
	Create(ctx context.Context, c *model.Client) error
	GetByID(ctx context.Context, id uint64) (*model.Client, error)
	FindByName(ctx context.Context, name string) (*model.Client, error)
	List(ctx context.Context) ([]*model.Client, error)
	Update(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id uint64) (*model.Client, error)
}

// SaleProbe reports whether any sale references a client as its buyer.
type SaleProbe interface {
	ExistsByBuyer(ctx context.Context, clientID uint64) (bool, error)
}

// ClientService owns the lifecycle of client records. Client names are
// unique, and a client with sales recorded against it cannot be
// deleted.
type ClientService struct {
	clients ClientStore
	deps    []Dependent
}

// NewClientService wires the client store with its dependent table.
func NewClientService(clients ClientStore, sales SaleProbe) *ClientService {
	return &ClientService{
		clients: clients,
		deps: []Dependent{
			{Kind: "sale", Exists: sales.ExistsByBuyer},
		},
	}
}

func (s *ClientService) keyLookup(name string) naturalKeyLookup {
	return func(ctx context.Context) (uint64, bool, error) {
		existing, err := s.clients.FindByName(ctx, name)
		if errors.Is(err, repository.ErrNotFound) {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		return existing.ID, true, nil
	}
}

// Create stores a new client after verifying its name is free.
func (s *ClientService) Create(ctx context.Context, c *model.Client) error {
	if err := checkUnique(ctx, "client", s.keyLookup(c.Name), 0); err != nil {
		return err
	}
	return s.clients.Create(ctx, c)
}

// Get returns the client with the given id.
func (s *ClientService) Get(ctx context.Context, id uint64) (*model.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// List returns all stored clients.
func (s *ClientService) List(ctx context.Context) ([]*model.Client, error) {
	return s.clients.List(ctx)
}

// Update replaces every mutable field of an existing client, allowing
// it to keep its own name.
func (s *ClientService) Update(ctx context.Context, c *model.Client) error {
	if _, err := s.clients.GetByID(ctx, c.ID); err != nil {
		return err
	}
	if err := checkUnique(ctx, "client", s.keyLookup(c.Name), c.ID); err != nil {
		return err
	}
	return s.clients.Update(ctx, c)
}

// Delete removes a client unless sales still reference it as buyer.
func (s *ClientService) Delete(ctx context.Context, id uint64) (*model.Client, error) {
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := checkUnreferenced(ctx, "client", id, s.deps); err != nil {
		return nil, err
	}
	return s.clients.Delete(ctx, id)
}
