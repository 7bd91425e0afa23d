package response

import (
	"aquaops/internal/domain/entities"
	"aquaops/pkg/format"
	"time"
)

type LineItemResponse struct {
	ID               string  `json:"id"`
	Description      string  `json:"description"`
	Quantity         float64 `json:"quantity"`
	UnitPriceCents   int64   `json:"unit_price_cents"`
	TotalCents       int64   `json:"total_cents"`
	UnitPriceDisplay string  `json:"unit_price_display"`
	TotalDisplay     string  `json:"total_display"`
}

// EstimateResponse mirrors the stored estimate plus ready-to-render money
// strings, so API consumers never do cent arithmetic.
type EstimateResponse struct {
	ID              string             `json:"id"`
	CustomerID      string             `json:"customer_id"`
	PoolID          string             `json:"pool_id,omitempty"`
	Items           []LineItemResponse `json:"items"`
	TaxRate         float64            `json:"tax_rate"`
	TaxRateDisplay  string             `json:"tax_rate_display"`
	Notes           string             `json:"notes,omitempty"`
	ValidUntil      string             `json:"valid_until,omitempty"`
	Status          string             `json:"status"`
	SubtotalCents   int64              `json:"subtotal_cents"`
	TaxCents        int64              `json:"tax_cents"`
	TotalCents      int64              `json:"total_cents"`
	SubtotalDisplay string             `json:"subtotal_display"`
	TaxDisplay      string             `json:"tax_display"`
	TotalDisplay    string             `json:"total_display"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.Items))
	for _, li := range e.Items {
		items = append(items, LineItemResponse{
			ID:               li.ID,
			Description:      li.Description,
			Quantity:         li.Quantity,
			UnitPriceCents:   li.UnitPriceCents,
			TotalCents:       li.TotalCents,
			UnitPriceDisplay: format.Currency(li.UnitPriceCents),
			TotalDisplay:     format.Currency(li.TotalCents),
		})
	}

	return EstimateResponse{
		ID:              e.ID,
		CustomerID:      e.CustomerID,
		PoolID:          e.PoolID,
		Items:           items,
		TaxRate:         e.TaxRate,
		TaxRateDisplay:  format.Percent(e.TaxRate),
		Notes:           e.Notes,
		ValidUntil:      e.ValidUntil,
		Status:          string(e.Status),
		SubtotalCents:   e.SubtotalCents,
		TaxCents:        e.TaxCents,
		TotalCents:      e.TotalCents,
		SubtotalDisplay: format.Currency(e.SubtotalCents),
		TaxDisplay:      format.Currency(e.TaxCents),
		TotalDisplay:    format.Currency(e.TotalCents),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}
