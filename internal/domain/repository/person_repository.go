// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"venmito/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for person persistence.
var (
	// ErrPersonNotFound is returned when no person matches a lookup.
	ErrPersonNotFound = errors.New("person not found")
	// ErrDuplicatePerson is returned when a write collides with another person's email.
	ErrDuplicatePerson = errors.New("person already exists")
)

// PersonRepository defines the interface for person-related database operations.
type PersonRepository interface {
	// FindByEmail retrieves a person by exact email.
	FindByEmail(ctx context.Context, email string) (*entity.Person, error)

	// FindByEmailOrTelephone retrieves the first person (lowest id) whose email or telephone matches.
	// Empty arguments are ignored; when both are empty ErrPersonNotFound is returned.
	FindByEmailOrTelephone(ctx context.Context, email, telephone string) (*entity.Person, error)

	// FindByTelephone retrieves the first person with the exact telephone.
	FindByTelephone(ctx context.Context, telephone string) (*entity.Person, error)

	// FindByIdentifier retrieves the first person with the exact external identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Person, error)

	// CreatePerson persists a new person and fills in generated values.
	CreatePerson(ctx context.Context, person *entity.Person) error

	// UpdatePerson overwrites the stored person with the same ID.
	UpdatePerson(ctx context.Context, person *entity.Person) error

	// ListPeople returns every person with their devices.
	ListPeople(ctx context.Context) ([]*entity.Person, error)
}
