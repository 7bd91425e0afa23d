package response

import (
	"encoding/json"
	"testing"
	"time"

	"aquaops/internal/domain/entities"
)

func TestFromDepositPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.DepositPayment{
		ID:                 "mp-123",
		EstimateID:         "e-1",
		AmountCents:        93625,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"id":"mp-123","status":"approved"}`),
		ProviderPayload:    map[string]interface{}{"id": "mp-123", "status": "approved"},
	}

	res := FromDepositPayment(p)
	if res.ID != "mp-123" || res.EstimateID != "e-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.AmountCents != 93625 || res.AmountDisplay != "$936.25" {
		t.Fatalf("unexpected amount fields: %+v", res)
	}
	if res.Status != "approved" || !res.Date.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ProviderPayloadRaw == "" || res.ProviderPayload["status"] != "approved" {
		t.Fatalf("provider payload not carried through: %+v", res)
	}
}
