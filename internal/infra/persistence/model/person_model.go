package model

import (
	"time"
)

// PersonModel mirrors the 'people' table. Email is unique when present.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type PersonModel struct {
	ID         uint       `gorm:"primaryKey"`
	Identifier *string    `gorm:"type:varchar(50);index"`
	FirstName  string     `gorm:"type:varchar(100)"`
	LastName   string     `gorm:"type:varchar(100);not null"`
	Telephone  *string    `gorm:"type:varchar(50);index"`
	Email      *string    `gorm:"type:varchar(255);uniqueIndex"`
	City       string     `gorm:"type:varchar(100)"`
	Country    string     `gorm:"type:varchar(100)"`
	Address    string     `gorm:"type:varchar(255)"`
	DOB        *time.Time `gorm:"column:dob;type:date"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Devices []*DeviceModel `gorm:"many2many:people_devices;foreignKey:ID;joinForeignKey:PeopleID;references:ID;joinReferences:DeviceID"`
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "people"
}
