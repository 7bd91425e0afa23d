package response

import (
	"aquaops/internal/domain/entities"
	"time"
)

type PropertyResponse struct {
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

func FromProperty(p entities.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		AddressLine1: p.AddressLine1,
		AddressLine2: p.AddressLine2,
		City:         p.City,
		State:        p.State,
		Zip:          p.Zip,
		GateCode:     p.GateCode,
		AccessNotes:  p.AccessNotes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProperties(ps []entities.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProperty(p))
	}
	return out
}
