// Package service implements the record services: one per entity kind,
// each orchestrating the uniqueness check, the reference check and the
// sequence allocator around its repository. All failures are returned
// as typed values; nothing here retries or swallows errors, and no
// operation performs a partial write.
package service

import (
	"fmt"

	"github.com/motorline/dealer-backend/internal/repository"
)

// ErrNotFound is returned when the record addressed by an update or
// delete does not exist. It aliases the repository sentinel so handlers
// only need to match against the service package.
var ErrNotFound = repository.ErrNotFound

// DuplicateError reports that a create or update would give two records
// the same natural key. ConflictID identifies the record already
// holding the key.
type DuplicateError struct {
	Kind       string // entity kind, e.g. "car"
	ConflictID uint64 // id of the record holding the natural key
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s (conflicts with id %d)", e.Kind, e.ConflictID)
}

// InUseError reports that a delete was blocked because records of
// Dependent still reference the target.
type InUseError struct {
	Kind      string // kind of the record being deleted
	Dependent string // kind of the record blocking the delete
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s is referenced by %s records", e.Kind, e.Dependent)
}
