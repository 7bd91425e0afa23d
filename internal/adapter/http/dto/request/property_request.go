package request

import "aquaops/internal/domain/patch"

type PropertyCreateRequest struct {
	CustomerID   string `json:"customer_id"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	GateCode     string `json:"gate_code"`
	AccessNotes  string `json:"access_notes"`
}

type PropertyUpdateRequest struct {
	AddressLine1 patch.String `json:"address_line1"`
	AddressLine2 patch.String `json:"address_line2"`
	City         patch.String `json:"city"`
	State        patch.String `json:"state"`
	Zip          patch.String `json:"zip"`
	GateCode     patch.String `json:"gate_code"`
	AccessNotes  patch.String `json:"access_notes"`
}
