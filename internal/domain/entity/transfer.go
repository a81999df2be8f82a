package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer moves an amount from a sender to a recipient. Transfers have no dedup key.
type Transfer struct {
	ID          uint            `json:"id"`
	SenderID    uint            `json:"sender_id"`
	RecipientID uint            `json:"recipient_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Sender    *PersonSummary `json:"sender,omitempty"`
	Recipient *PersonSummary `json:"recipient,omitempty"`
}
