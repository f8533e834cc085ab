package service

import (
	"context"
	"errors"

	"github.com/motorline/dealer-backend/internal/model"
	"github.com/motorline/dealer-backend/internal/repository"
)

// UserStore is the persistence capability UserService consumes.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id uint64) (*model.User, error)
}

// ClientProbe reports whether any client references a user as its
// sales person.
type ClientProbe interface {
	ExistsBySalesPerson(ctx context.Context, userID uint64) (bool, error)
}

// UserService owns the lifecycle of staff accounts. Usernames are
// unique, and a user still assigned to clients cannot be deleted.
// Password hashing happens before the service is called; an empty
// PasswordHash on update means "keep the current password".
type UserService struct {
	users UserStore
	deps  []Dependent
}

// NewUserService wires the user store with its dependent table.
func NewUserService(users UserStore, clients ClientProbe) *UserService {
	return &UserService{
		users: users,
		deps: []Dependent{
			{Kind: "client", Exists: clients.ExistsBySalesPerson},
		},
	}
}

func (s *UserService) keyLookup(username string) naturalKeyLookup {
	return func(ctx context.Context) (uint64, bool, error) {
		existing, err := s.users.FindByUsername(ctx, username)
		if errors.Is(err, repository.ErrNotFound) {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		return existing.ID, true, nil
	}
}

// Create stores a new user after verifying its username is free.
func (s *UserService) Create(ctx context.Context, u *model.User) error {
	if err := checkUnique(ctx, "user", s.keyLookup(u.Username), 0); err != nil {
		return err
	}
	return s.users.Create(ctx, u)
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id uint64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// List returns all stored users.
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.List(ctx)
}

// Update replaces every mutable field of an existing user, allowing it
// to keep its own username. When u.PasswordHash is empty the stored
// hash is carried forward unchanged.
func (s *UserService) Update(ctx context.Context, u *model.User) error {
	existing, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if err := checkUnique(ctx, "user", s.keyLookup(u.Username), u.ID); err != nil {
		return err
	}
	if u.PasswordHash == "" {
		u.PasswordHash = existing.PasswordHash
	}
	return s.users.Update(ctx, u)
}

// Delete removes a user unless clients still reference it as their
// sales person.
func (s *UserService) Delete(ctx context.Context, id uint64) (*model.User, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := checkUnreferenced(ctx, "user", id, s.deps); err != nil {
		return nil, err
	}
	return s.users.Delete(ctx, id)
}
