package postgres

import (
	"context"

	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
	"venmito/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// personRepository implements the repository.PersonRepository interface using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{
		db: db,
	}
}

// FindByEmail retrieves a person by exact email.
func (repo *personRepository) FindByEmail(ctx context.Context, email string) (*entity.Person, error) {
	if email == "" {
		return nil, repository.ErrPersonNotFound
	}

	return repo.first(ctx, "failed to find person by email", "email = ?", email)
}

// FindByEmailOrTelephone retrieves the lowest-id person matching either value.
func (repo *personRepository) FindByEmailOrTelephone(ctx context.Context, email, telephone string) (*entity.Person, error) {
	switch {
	case email != "" && telephone != "":
		return repo.first(ctx, "failed to find person by email or telephone", "email = ? OR telephone = ?", email, telephone)
	case email != "":
		return repo.first(ctx, "failed to find person by email", "email = ?", email)
	case telephone != "":
		return repo.first(ctx, "failed to find person by telephone", "telephone = ?", telephone)
	default:
		return nil, repository.ErrPersonNotFound
	}
}

// FindByTelephone retrieves the lowest-id person with the exact telephone.
func (repo *personRepository) FindByTelephone(ctx context.Context, telephone string) (*entity.Person, error) {
	if telephone == "" {
		return nil, repository.ErrPersonNotFound
	}

	return repo.first(ctx, "failed to find person by telephone", "telephone = ?", telephone)
}

// FindByIdentifier retrieves the lowest-id person with the exact identifier.
func (repo *personRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Person, error) {
	if identifier == "" {
		return nil, repository.ErrPersonNotFound
	}

	return repo.first(ctx, "failed to find person by identifier", "identifier = ?", identifier)
}

func (repo *personRepository) first(ctx context.Context, msg string, query string, args ...any) (*entity.Person, error) {
	var personM model.PersonModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("id ASC").
		First(&personM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, storageError(err, msg)
	}

	return toPersonDomain(&personM), nil
}

// CreatePerson persists a new person.
func (repo *personRepository) CreatePerson(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)

	if err := repo.db.WithContext(ctx).Omit("Devices").Create(personM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePerson
		}

		return storageError(err, "failed to create person")
	}

	person.ID = personM.ID
	person.CreatedAt = personM.CreatedAt
	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// UpdatePerson overwrites every column of the stored person.
func (repo *personRepository) UpdatePerson(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)

	result := repo.db.WithContext(ctx).
		Model(&model.PersonModel{ID: person.ID}).
		Select("identifier", "first_name", "last_name", "telephone", "email", "city", "country", "address", "dob", "updated_at").
		Updates(personM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePerson
		}

		return storageError(result.Error, "failed to update person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// ListPeople returns every person with devices, read from a replica when one is configured.
func (repo *personRepository) ListPeople(ctx context.Context) ([]*entity.Person, error) {
	var personModels []*model.PersonModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Devices", func(db *gorm.DB) *gorm.DB { return db.Order("devices.id ASC") }).
		Order("id ASC").
		Find(&personModels).Error; err != nil {
		return nil, storageError(err, "failed to list people")
	}

	people := make([]*entity.Person, 0, len(personModels))
	for _, personM := range personModels {
		people = append(people, toPersonDomain(personM))
	}

	return people, nil
}

// --- Mapper Functions ---

func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	person := &entity.Person{
		ID:         data.ID,
		Identifier: derefString(data.Identifier),
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Telephone:  derefString(data.Telephone),
		Email:      derefString(data.Email),
		City:       data.City,
		Country:    data.Country,
		Address:    data.Address,
		DOB:        data.DOB,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if len(data.Devices) > 0 {
		person.Devices = make([]*entity.Device, 0, len(data.Devices))
		for _, deviceM := range data.Devices {
			person.Devices = append(person.Devices, toDeviceDomain(deviceM))
		}
	}

	return person
}

func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	return &model.PersonModel{
		ID:         data.ID,
		Identifier: nullableString(data.Identifier),
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Telephone:  nullableString(data.Telephone),
		Email:      nullableString(data.Email),
		City:       data.City,
		Country:    data.Country,
		Address:    data.Address,
		DOB:        data.DOB,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toPersonSummary(data *model.PersonModel) *entity.PersonSummary {
	if data == nil {
		return nil
	}

	return toPersonDomain(data).Summary()
}

// nullableString stores empty strings as NULL so that unique indexes ignore them.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
