package entities

import "time"

// Property is a service address owned by exactly one Customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// GateCode and AccessNotes support the field crew; empty string means
// "no value".
type Property struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	GateCode     string    `json:"gate_code,omitempty"`
	AccessNotes  string    `json:"access_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
