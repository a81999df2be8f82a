package model

import (
	"time"
)

// PromotionModel mirrors the 'promotions' table.
type PromotionModel struct {
	ID            uint      `gorm:"primaryKey"`
	PeopleID      *uint     `gorm:"index"`
	Promotion     string    `gorm:"type:varchar(255);not null"`
	Responded     bool      `gorm:"not null;default:false"`
	PromotionDate time.Time `gorm:"type:date;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Person *PersonModel `gorm:"foreignKey:PeopleID"`
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}
