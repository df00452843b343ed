// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/roster/internal/models"
)

// PersonStore defines the interface for person storage operations.
// The controllers only talk to this interface, so the backend (SQLite today)
// can be swapped or faked in tests.
type PersonStore interface {
	// ListPeople returns every stored person ordered by ID.
	ListPeople(ctx context.Context) ([]models.Person, error)

	// InsertPerson persists a new person and returns the assigned ID.
	// Any ID already set on person is ignored.
	InsertPerson(ctx context.Context, person models.Person) (int64, error)

	// UpdatePerson replaces the row identified by old.ID with the fields of updated.
	// Returns an error if the row does not exist.
	UpdatePerson(ctx context.Context, old, updated models.Person) error

	// DeletePerson removes the row identified by person.ID.
	// Returns an error if the row does not exist.
	DeletePerson(ctx context.Context, person models.Person) error

	// Close releases any resources held by the store.
	Close() error
}
