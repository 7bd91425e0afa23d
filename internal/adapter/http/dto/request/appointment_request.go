package request

import "aquaops/internal/domain/patch"

type AppointmentCreateRequest struct {
	CustomerID string `json:"customer_id"`
	PropertyID string `json:"property_id"`
	Service    string `json:"service"`
	StartsAt   string `json:"starts_at"`
	EndsAt     string `json:"ends_at"`
	Notes      string `json:"notes"`
}

type AppointmentUpdateRequest struct {
	PropertyID patch.String `json:"property_id"`
	Service    patch.String `json:"service"`
	StartsAt   patch.String `json:"starts_at"`
	EndsAt     patch.String `json:"ends_at"`
	Notes      patch.String `json:"notes"`
	Status     patch.String `json:"status"`
}
