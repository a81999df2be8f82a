package repository

import (
	"context"

	"venmito/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for devices and their links to people.
type DeviceRepository interface {
	// FindDeviceByName retrieves the first device (lowest id) with the exact name.
	FindDeviceByName(ctx context.Context, name string) (*entity.Device, error)

	// CreateDevice persists a new device.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// DeleteLinksByPerson removes every person-device link of the person.
	DeleteLinksByPerson(ctx context.Context, personID uint) error

	// LinkDevice inserts a person-device link. An existing (person, device) pair is left untouched.
	LinkDevice(ctx context.Context, link *entity.PersonDevice) error
}
