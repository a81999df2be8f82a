package entity

import "time"

// Device is a device-type label such as "Android", "iPhone" or "Desktop".
// Device names carry no uniqueness guarantee in storage.
type Device struct {
	ID         uint      `json:"id"`
	DeviceName string    `json:"device_name"`
	DeviceType string    `json:"device_type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PersonDevice links a person to a device. (PersonID, DeviceID) is unique.
type PersonDevice struct {
	ID           uint      `json:"id"`
	PersonID     uint      `json:"people_id"`
	DeviceID     uint      `json:"device_id"`
	AssignedDate time.Time `json:"assigned_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
