package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferModel mirrors the 'transfers' table. Rows are never deduplicated.
type TransferModel struct {
	ID          uint            `gorm:"primaryKey"`
	SenderID    uint            `gorm:"not null;index"`
	RecipientID uint            `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Sender    *PersonModel `gorm:"foreignKey:SenderID"`
	Recipient *PersonModel `gorm:"foreignKey:RecipientID"`
}

// TableName explicitly sets the table name for GORM.
func (TransferModel) TableName() string {
	return "transfers"
}
