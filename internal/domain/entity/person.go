// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Person is an identity record reconciled from people, promotion, transfer and transaction uploads.
type Person struct {
	ID         uint       `json:"id"`         // Surrogate key.
	Identifier string     `json:"identifier"` // External identifier used to match transfer parties.
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Telephone  string     `json:"telephone"`
	Email      string     `json:"email"` // Soft-unique business key for people uploads.
	City       string     `json:"city"`
	Country    string     `json:"country"`
	Address    string     `json:"address,omitempty"` // Free-form location when no city was given.
	DOB        *time.Time `json:"dob"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Devices []*Device `json:"devices,omitempty"` // Loaded only by listings.
}

// FullName joins the first and last name.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Merge copies every non-empty field of incoming onto p. The surrogate id is kept.
func (p *Person) Merge(incoming *Person) {
	if incoming.Identifier != "" {
		p.Identifier = incoming.Identifier
	}
	if incoming.FirstName != "" {
		p.FirstName = incoming.FirstName
	}
	if incoming.LastName != "" {
		p.LastName = incoming.LastName
	}
	if incoming.Telephone != "" {
		p.Telephone = incoming.Telephone
	}
	if incoming.Email != "" {
		p.Email = incoming.Email
	}
	if incoming.City != "" {
		p.City = incoming.City
	}
	if incoming.Country != "" {
		p.Country = incoming.Country
	}
	if incoming.Address != "" {
		p.Address = incoming.Address
	}
	if incoming.DOB != nil {
		p.DOB = incoming.DOB
	}
}

// PersonSummary is the minimal view of a person embedded in other listings.
type PersonSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Email      string `json:"email,omitempty"`
	Telephone  string `json:"telephone,omitempty"`
}

// Summary builds the embedded view of the person.
func (p *Person) Summary() *PersonSummary {
	if p == nil {
		return nil
	}

	return &PersonSummary{
		ID:         p.ID,
		Name:       p.FullName(),
		Identifier: p.Identifier,
		Email:      p.Email,
		Telephone:  p.Telephone,
	}
}
