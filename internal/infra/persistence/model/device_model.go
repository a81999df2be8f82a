package model

import (
	"time"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// Device names are not unique; lookups take the lowest id.
type DeviceModel struct {
	ID         uint    `gorm:"primaryKey"`
	DeviceName string  `gorm:"type:varchar(100);not null"`
	DeviceType *string `gorm:"type:varchar(50)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// PersonDeviceModel is the join row between people and devices. (PeopleID, DeviceID) is unique.
type PersonDeviceModel struct {
	ID           uint      `gorm:"primaryKey"`
	PeopleID     uint      `gorm:"not null;uniqueIndex:idx_people_devices_pair"`
	DeviceID     uint      `gorm:"not null;uniqueIndex:idx_people_devices_pair"`
	AssignedDate time.Time `gorm:"type:date;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonDeviceModel) TableName() string {
	return "people_devices"
}
