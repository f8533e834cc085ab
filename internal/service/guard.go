package service

import "context"

// naturalKeyLookup resolves the id of the record currently holding a
// candidate natural key. found is false when the key is free. Each
// record service builds one of these closures over its repository's
// fixed natural-key query; the key fields are not configurable at call
// time.
type naturalKeyLookup func(ctx context.Context) (id uint64, found bool, err error)

// checkUnique enforces a natural-key uniqueness rule. When excludeID is
// non-zero the record with that id is allowed to hold the key, which is
// how an update avoids colliding with itself. The check and the
// following store mutation are not atomic end-to-end; the store-level
// unique index is the backstop for the narrow race window.
func checkUnique(ctx context.Context, kind string, lookup naturalKeyLookup, excludeID uint64) error {
	id, found, err := lookup(ctx)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if excludeID != 0 && id == excludeID {
		return nil
	}
	return &DuplicateError{Kind: kind, ConflictID: id}
}

// Dependent names a dependent collection/field pair whose records block
// deletion of a target record. Exists must report whether any record of
// that kind references the given target id.
type Dependent struct {
	Kind   string
	Exists func(ctx context.Context, targetID uint64) (bool, error)
}

// checkUnreferenced walks the dependent table in declaration order and
// stops at the first dependent that still references the target. Only
// one blocking kind is ever reported per failure.
func checkUnreferenced(ctx context.Context, kind string, targetID uint64, deps []Dependent) error {
	for _, d := range deps {
		ok, err := d.Exists(ctx, targetID)
		if err != nil {
			return err
		}
		if ok {
			return &InUseError{Kind: kind, Dependent: d.Kind}
		}
	}
	return nil
}
