package request

import "aquaops/internal/domain/patch"

type CustomerCreateRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	LeadSource string `json:"lead_source"`
}

// CustomerUpdateRequest uses patch fields so an omitted key leaves the
// stored value alone while an explicit null or empty string clears it.
type CustomerUpdateRequest struct {
	Name       patch.String `json:"name"`
	Phone      patch.String `json:"phone"`
	Email      patch.String `json:"email"`
	LeadSource patch.String `json:"lead_source"`
}
