package usecase

import (
	"context"

	"venmito/internal/domain/entity"
)

// PeopleUsecase reconciles people uploads against stored people.
type PeopleUsecase interface {
	// UploadPeople upserts people by email and replaces their device links.
	UploadPeople(ctx context.Context, records []RawRecord) (*BatchResult[*entity.Person], error)

	// ListPeople returns every person with devices.
	ListPeople(ctx context.Context) ([]*entity.Person, error)
}
