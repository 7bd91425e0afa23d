package request

import (
	"aquaops/internal/domain/patch"
	"encoding/json"
)

// DepositCreateRequest is the body for taking a deposit on an estimate.
//
// provider_payload is forwarded to the gateway as-is (raw JSON) to support
// varying Mercado Pago schemas. amount_cents overrides the standard deposit;
// absent or zero means charge the default fraction of the estimate total.
type DepositCreateRequest struct {
	AmountCents     patch.Int       `json:"amount_cents"`
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
