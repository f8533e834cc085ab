package service

import (
	"context"
	"errors"

	"github.com/motorline/dealer-backend/internal/model"
	"github.com/motorline/dealer-backend/internal/repository"
)

// CarStore is the persistence capability CarService consumes. It is
// satisfied by *repository.CarRepo and by in-memory fakes in tests.
type CarStore interface {
	Create(ctx context.Context, c *model.Car) error
	GetByID(ctx context.Context, id uint64) (*model.Car, error)
	FindByMakeModelYear(ctx context.Context, make, mdl string, year int) (*model.Car, error)
	List(ctx context.Context) ([]*model.Car, error)
	Update(ctx context.Context, c *model.Car) error
	Delete(ctx context.Context, id uint64) (*model.Car, error)
}

// InventoryProbe is the single lookup CarService needs from the
// inventory collection: whether any stock record references a car.
type InventoryProbe interface {
	ExistsByCarID(ctx context.Context, carID uint64) (bool, error)
}

// CarService owns the lifecycle of car records. Cars carry the
// (make, model, year) natural key and cannot be deleted while
// inventory still references them.
type CarService struct {
	cars CarStore
	deps []Dependent
}

// NewCarService wires the car store with its dependent table.
func NewCarService(cars CarStore, inventory InventoryProbe) *CarService {
	return &CarService{
		cars: cars,
		deps: []Dependent{
			{Kind: "inventory", Exists: inventory.ExistsByCarID},
		},
	}
}

func (s *CarService) keyLookup(make, mdl string, year int) naturalKeyLookup {
	return func(ctx context.Context) (uint64, bool, error) {
		existing, err := s.cars.FindByMakeModelYear(ctx, make, mdl, year)
		if errors.Is(err, repository.ErrNotFound) {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		return existing.ID, true, nil
	}
}

// Create stores a new car after verifying its natural key is free.
func (s *CarService) Create(ctx context.Context, c *model.Car) error {
	if err := checkUnique(ctx, "car", s.keyLookup(c.Make, c.Model, c.Year), 0); err != nil {
		return err
	}
	return s.cars.Create(ctx, c)
}

// Get returns the car with the given id.
func (s *CarService) Get(ctx context.Context, id uint64) (*model.Car, error) {
	return s.cars.GetByID(ctx, id)
}

// List returns all stored cars.
func (s *CarService) List(ctx context.Context) ([]*model.Car, error) {
	return s.cars.List(ctx)
}

// Update replaces every mutable field of an existing car. The record
// is allowed to keep its own natural key, so the uniqueness check
// excludes the car's id.
func (s *CarService) Update(ctx context.Context, c *model.Car) error {
	if _, err := s.cars.GetByID(ctx, c.ID); err != nil {
		return err
	}
	if err := checkUnique(ctx, "car", s.keyLookup(c.Make, c.Model, c.Year), c.ID); err != nil {
		return err
	}
	return s.cars.Update(ctx, c)
}

// Delete removes a car unless inventory still references it, returning
// the deleted record for confirmation messaging.
func (s *CarService) Delete(ctx context.Context, id uint64) (*model.Car, error) {
	if _, err := s.cars.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := checkUnreferenced(ctx, "car", id, s.deps); err != nil {
		return nil, err
	}
	return s.cars.Delete(ctx, id)
}
