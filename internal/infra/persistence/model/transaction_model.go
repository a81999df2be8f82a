package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemModel mirrors the 'items' catalog table.
type ItemModel struct {
	ID           uint            `gorm:"primaryKey"`
	Name         string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	DefaultPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// TransactionModel mirrors the 'transactions' table.
type TransactionModel struct {
	ID              uint            `gorm:"primaryKey"`
	ExternalID      *string         `gorm:"type:varchar(100);index"`
	PeopleID        *uint           `gorm:"index"`
	Phone           string          `gorm:"type:varchar(50);index"`
	Store           string          `gorm:"type:varchar(255);not null"`
	TransactionDate time.Time       `gorm:"type:date;not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Person *PersonModel            `gorm:"foreignKey:PeopleID"`
	Items  []*TransactionItemModel `gorm:"foreignKey:TransactionID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionItemModel mirrors the 'transaction_items' table. The same item may repeat within a transaction.
type TransactionItemModel struct {
	ID            uint            `gorm:"primaryKey"`
	TransactionID uint            `gorm:"not null;index"`
	ItemID        uint            `gorm:"not null;index"`
	Quantity      int             `gorm:"not null;default:1"`
	PricePerItem  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Item *ItemModel `gorm:"foreignKey:ItemID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionItemModel) TableName() string {
	return "transaction_items"
}
