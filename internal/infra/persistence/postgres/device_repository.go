package postgres

import (
	"context"
	"time"

	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
	"venmito/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindDeviceByName retrieves the lowest-id device with the exact name.
// Names are not unique in storage, so earlier duplicates win.
func (repo *deviceRepository) FindDeviceByName(ctx context.Context, name string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_name = ?", name).
		Order("id ASC").
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, storageError(err, "failed to find device by name")
	}

	return toDeviceDomain(&deviceM), nil
}

// CreateDevice persists a new device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		return storageError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// DeleteLinksByPerson removes every device link of the person. Device rows are kept.
func (repo *deviceRepository) DeleteLinksByPerson(ctx context.Context, personID uint) error {
	if err := repo.db.WithContext(ctx).
		Where("people_id = ?", personID).
		Delete(&model.PersonDeviceModel{}).Error; err != nil {
		return storageError(err, "failed to delete device links")
	}

	return nil
}

// LinkDevice inserts the link; an existing (person, device) pair is left as is.
func (repo *deviceRepository) LinkDevice(ctx context.Context, link *entity.PersonDevice) error {
	linkM := &model.PersonDeviceModel{
		PeopleID:     link.PersonID,
		DeviceID:     link.DeviceID,
		AssignedDate: link.AssignedDate,
	}
	if linkM.AssignedDate.IsZero() {
		linkM.AssignedDate = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "people_id"}, {Name: "device_id"}},
			DoNothing: true,
		}).
		Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrDeviceNotFound, "invalid person or device reference")
		}

		return storageError(err, "failed to link device")
	}

	link.ID = linkM.ID
	link.AssignedDate = linkM.AssignedDate
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:         data.ID,
		DeviceName: data.DeviceName,
		DeviceType: derefString(data.DeviceType),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:         data.ID,
		DeviceName: data.DeviceName,
		DeviceType: nullableString(data.DeviceType),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
