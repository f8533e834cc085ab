package service

import (
	"context"

	"github.com/motorline/dealer-backend/internal/model"
)

// InventoryStore is the persistence capability InventoryService consumes.
type InventoryStore interface {
	Create(ctx context.Context, inv *model.Inventory) error
	GetByID(ctx context.Context, id uint64) (*model.Inventory, error)
	List(ctx context.Context) ([]*model.Inventory, error)
	Update(ctx context.Context, inv *model.Inventory) error
	Delete(ctx context.Context, id uint64) (*model.Inventory, error)
}

// InventoryService owns stock records. Inventory has no natural key
// and no dependents of its own; it only acts as a dependent blocking
// car deletion.
type InventoryService struct {
	inventory InventoryStore
}

func NewInventoryService(inventory InventoryStore) *InventoryService {
	return &InventoryService{inventory: inventory}
}

func (s *InventoryService) Create(ctx context.Context, inv *model.Inventory) error {
	return s.inventory.Create(ctx, inv)
}

func (s *InventoryService) Get(ctx context.Context, id uint64) (*model.Inventory, error) {
	return s.inventory.GetByID(ctx, id)
}

func (s *InventoryService) List(ctx context.Context) ([]*model.Inventory, error) {
	return s.inventory.List(ctx)
}

func (s *InventoryService) Update(ctx context.Context, inv *model.Inventory) error {
	if _, err := s.inventory.GetByID(ctx, inv.ID); err != nil {
		return err
	}
	return s.inventory.Update(ctx, inv)
}

func (s *InventoryService) Delete(ctx context.Context, id uint64) (*model.Inventory, error) {
	return s.inventory.Delete(ctx, id)
}
