package response

import (
	"aquaops/internal/domain/entities"
	"aquaops/pkg/format"
	"time"
)

type DepositPaymentResponse struct {
	ID            string    `json:"id"`
	EstimateID    string    `json:"estimate_id"`
	AmountCents   int64     `json:"amount_cents"`
	AmountDisplay string    `json:"amount_display"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		ID:                 p.ID,
		EstimateID:         p.EstimateID,
		AmountCents:        p.AmountCents,
		AmountDisplay:      format.Currency(p.AmountCents),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
