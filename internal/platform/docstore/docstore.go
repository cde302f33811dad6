// Package docstore is a name-keyed JSON document store. Documents are read
// and written whole; a missing document reads as absent and the caller
// supplies the default. Update performs an optimistic read-modify-write so
// concurrent writers cannot silently drop each other's changes.
package docstore

import "context"

// UpdateFunc receives the current raw document (nil when missing) and
// returns the replacement document to persist.
type UpdateFunc func(raw []byte) (interface{}, error)

type Store interface {
	// Read unmarshals the named document into out. Returns false when the
	// document does not exist; out is left untouched in that case.
	Read(ctx context.Context, name string, out interface{}) (bool, error)

	// Write overwrites the named document.
	Write(ctx context.Context, name string, doc interface{}) error

	// Update atomically replaces the named document with the result of
	// apply. Conflicting concurrent updates are retried.
	Update(ctx context.Context, name string, apply UpdateFunc) error
}
