// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "venmito/internal/delivery/context"
	"venmito/internal/domain/constants"
	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
	"venmito/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// peopleService implements the PeopleUsecase interface.
type peopleService struct {
	runner     *BatchRunner
	personRepo repository.PersonRepository
	logger     *slog.Logger
}

// PeopleServiceParams holds dependencies for PeopleService, injected by Fx.
type PeopleServiceParams struct {
	fx.In

	Runner     *BatchRunner
	PersonRepo repository.PersonRepository
	Logger     *slog.Logger
}

// NewPeopleService is the constructor for peopleService.
func NewPeopleService(params PeopleServiceParams) usecase.PeopleUsecase {
	return &peopleService{
		runner:     params.Runner,
		personRepo: params.PersonRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *peopleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadPeople upserts every row by email. Rows with devices get their links replaced.
func (srv *peopleService) UploadPeople(ctx context.Context, records []usecase.RawRecord) (*usecase.BatchResult[*entity.Person], error) {
	return runBatch(ctx, srv.runner, batchPolicy{family: constants.FamilyPeople}, records, srv.upsertPerson)
}

func (srv *peopleService) upsertPerson(ctx context.Context, repos repository.RepositoryFactory, record usecase.RawRecord) (*entity.Person, error) {
	rec, err := srv.runner.normalizer.person(record)
	if err != nil {
		return nil, skipRow(usecase.SkipInvalidRecord, "", "%v", err)
	}
	key := identifierKey(rec.Email, rec.Identifier)

	if rec.RawDOB != "" {
		srv.log(ctx).Warn("Ignoring unparseable date of birth",
			slog.String("key", key),
			slog.String("dob", rec.RawDOB),
		)
	}

	incoming := &entity.Person{
		Identifier: rec.Identifier,
		FirstName:  rec.FirstName,
		LastName:   rec.LastName,
		Telephone:  rec.Telephone,
		Email:      rec.Email,
		City:       rec.City,
		Country:    rec.Country,
		Address:    rec.Address,
		DOB:        rec.DOB,
	}

	personRepo := repos.NewPersonRepository()
	person, err := srv.findExisting(ctx, personRepo, rec.Email)
	if err != nil {
		return nil, err
	}

	if person == nil {
		person = incoming
		if err := personRepo.CreatePerson(ctx, person); err != nil {
			return nil, personWriteError(err, key, "failed to create person")
		}
	} else {
		person.Merge(incoming)
		if err := personRepo.UpdatePerson(ctx, person); err != nil {
			return nil, personWriteError(err, key, "failed to update person")
		}
	}

	if len(rec.Devices) > 0 {
		devices, err := srv.replaceDevices(ctx, repos, person, rec.Devices)
		if err != nil {
			return nil, err
		}
		person.Devices = devices
	}

	return person, nil
}

// findExisting returns nil without error when the person is new. An empty email never matches.
func (srv *peopleService) findExisting(ctx context.Context, personRepo repository.PersonRepository, email string) (*entity.Person, error) {
	if email == "" {
		return nil, nil
	}

	person, err := personRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find person by email")
	}

	return person, nil
}

func personWriteError(err error, key, msg string) error {
	if errors.Is(err, repository.ErrDuplicatePerson) {
		return skipRow(usecase.SkipStorageError, key, "%v", err)
	}

	return errors.Wrap(err, msg)
}

// replaceDevices drops the person's links and links the named devices, reusing devices by name.
// A device that fails to link is logged and left out; the person row still counts as written.
func (srv *peopleService) replaceDevices(ctx context.Context, repos repository.RepositoryFactory, person *entity.Person, names []string) ([]*entity.Device, error) {
	log := srv.log(ctx).With(slog.Uint64("person_id", uint64(person.ID)))

	err := repos.Savepoint(ctx, func(sp repository.RepositoryFactory) error {
		return sp.NewDeviceRepository().DeleteLinksByPerson(ctx, person.ID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrStorageUnavailable) {
			return nil, err
		}
		log.Warn("Failed to clear device links, keeping existing links", slog.Any("error", err))

		return nil, nil
	}

	devices := make([]*entity.Device, 0, len(names))
	for _, name := range names {
		var linked *entity.Device
		err := repos.Savepoint(ctx, func(sp repository.RepositoryFactory) error {
			device, err := linkDevice(ctx, sp.NewDeviceRepository(), person.ID, name)
			linked = device

			return err
		})
		if err != nil {
			if errors.Is(err, repository.ErrStorageUnavailable) {
				return nil, err
			}
			log.Warn("Failed to link device", slog.String("device", name), slog.Any("error", err))

			continue
		}
		devices = append(devices, linked)
	}

	return devices, nil
}

func linkDevice(ctx context.Context, deviceRepo repository.DeviceRepository, personID uint, name string) (*entity.Device, error) {
	device, err := deviceRepo.FindDeviceByName(ctx, name)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		device = &entity.Device{DeviceName: name}
		err = deviceRepo.CreateDevice(ctx, device)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve device %q", name)
	}

	if err := deviceRepo.LinkDevice(ctx, &entity.PersonDevice{PersonID: personID, DeviceID: device.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to link device %q", name)
	}

	return device, nil
}

// ListPeople returns every person with devices.
func (srv *peopleService) ListPeople(ctx context.Context) ([]*entity.Person, error) {
	people, err := srv.personRepo.ListPeople(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list people")
	}

	return people, nil
}
