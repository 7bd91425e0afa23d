package request

import (
	"aquaops/internal/domain/patch"
	"strings"
)

// LineItemRequest is one priced row. Quantity and unit price accept JSON
// numbers or numeric strings; the intake form sends whichever it has.
type LineItemRequest struct {
	ID             string       `json:"id"`
	Description    string       `json:"description"`
	Quantity       patch.Number `json:"quantity"`
	UnitPriceCents patch.Int    `json:"unit_price_cents"`
}

type EstimateCreateRequest struct {
	CustomerID string            `json:"customer_id"`
	PoolID     string            `json:"pool_id"`
	Items      []LineItemRequest `json:"items"`
	TaxRate    patch.Number      `json:"tax_rate"`
	Notes      string            `json:"notes"`
	ValidUntil string            `json:"valid_until"`
}

// EstimateUpdateRequest carries a partial update. Omitted fields stay as
// stored; a present item list replaces the stored one wholesale.
type EstimateUpdateRequest struct {
	PoolID     patch.String       `json:"pool_id"`
	Items      *[]LineItemRequest `json:"items"`
	TaxRate    patch.Number       `json:"tax_rate"`
	Notes      patch.String       `json:"notes"`
	ValidUntil patch.String       `json:"valid_until"`
}

// EstimateStatusRequest is the body of a status change.
type EstimateStatusRequest struct {
	Status string `json:"status"`
}

func (r EstimateStatusRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
