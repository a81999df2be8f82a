package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog line. Names are unique.
type Item struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Transaction is a purchase at a store. ExternalID is the dedup key across uploads.
type Transaction struct {
	ID              uint            `json:"id"`
	ExternalID      string          `json:"external_id"`
	PersonID        *uint           `json:"people_id"`
	Phone           string          `json:"phone"`
	Store           string          `json:"store"`
	TransactionDate time.Time       `json:"transaction_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Person *PersonSummary     `json:"person,omitempty"`
	Items  []*TransactionItem `json:"items,omitempty"`
}

// TransactionItem is one purchased line. The same item may appear more than once per transaction.
type TransactionItem struct {
	ID            uint            `json:"id"`
	TransactionID uint            `json:"transaction_id"`
	ItemID        uint            `json:"item_id"`
	ItemName      string          `json:"itemName,omitempty"`
	Quantity      int             `json:"quantity"`
	PricePerItem  decimal.Decimal `json:"pricePerItem"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
