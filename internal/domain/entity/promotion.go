package entity

import "time"

// Promotion records whether a person responded to a promotion offered on a given date.
// (PersonID, Promotion, PromotionDate) is the dedup key.
type Promotion struct {
	ID            uint      `json:"id"`
	PersonID      *uint     `json:"people_id"`
	Promotion     string    `json:"promotion"`
	Responded     bool      `json:"responded"`
	PromotionDate time.Time `json:"promotion_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Person *PersonSummary `json:"person,omitempty"` // Loaded only by listings.
}
