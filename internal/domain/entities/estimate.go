package entities

import "time"

// EstimateStatus represents the lifecycle of a customer estimate.
//
// Domain notes:
//   - The admin service is the source of truth for estimate state.
//   - Transitions are a fixed closed table, not scattered conditionals,
//     so the workflow stays auditable and testable in isolation.

type EstimateStatus string

const (
	EstimateStatusDraft         EstimateStatus = "draft"
	EstimateStatusSent          EstimateStatus = "sent"
	EstimateStatusInternalFinal EstimateStatus = "internal_final"
	EstimateStatusConverted     EstimateStatus = "converted"
	EstimateStatusDeclined      EstimateStatus = "declined"
)

// estimateStatusTransitions maps each status to the statuses it may legally
// move to. converted is terminal; declined -> draft is the only reopen path.
var estimateStatusTransitions = map[EstimateStatus][]EstimateStatus{
	EstimateStatusDraft:         {EstimateStatusSent},
	EstimateStatusSent:          {EstimateStatusInternalFinal, EstimateStatusConverted, EstimateStatusDeclined},
	EstimateStatusInternalFinal: {EstimateStatusConverted, EstimateStatusDeclined},
	EstimateStatusConverted:     {},
	EstimateStatusDeclined:      {EstimateStatusDraft},
}

// Valid reports whether s is one of the known statuses.
func (s EstimateStatus) Valid() bool {
	_, ok := estimateStatusTransitions[s]
	return ok
}

// CanTransitionTo answers whether the status may move to target. It only
// answers the query; the use case performing the write enforces it.
func (s EstimateStatus) CanTransitionTo(target EstimateStatus) bool {
	for _, allowed := range estimateStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// LineItem is a priced entry owned by exactly one Estimate. It has no
// independent lifecycle.
type LineItem struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	TotalCents     int64   `json:"total_cents"`
}

// Estimate is a quote offered to a customer, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - line items are stored as a nested list attribute on the item
//
// Monetary representation:
//   - all amounts are integer cents; Subtotal/Tax/Total are derived from the
//     items and tax rate on every write and never accepted from callers.
type Estimate struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customer_id"`
	PoolID        string         `json:"pool_id,omitempty"`
	Items         []LineItem     `json:"items"`
	TaxRate       float64        `json:"tax_rate"`
	Notes         string         `json:"notes,omitempty"`
	ValidUntil    string         `json:"valid_until,omitempty"`
	Status        EstimateStatus `json:"status"`
	SubtotalCents int64          `json:"subtotal_cents"`
	TaxCents      int64          `json:"tax_cents"`
	TotalCents    int64          `json:"total_cents"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
