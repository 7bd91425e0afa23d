package repository

import (
	"reflect"
	"testing"
	"time"

	"aquaops/internal/domain/entities"
)

func TestEstimateItemRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 123456789, time.UTC)
	original := entities.Estimate{
		ID:         "est-1",
		CustomerID: "cus-1",
		PoolID:     "pool-1",
		Items: []entities.LineItem{
			{ID: "li-1", Description: "Weekly service", Quantity: 4, UnitPriceCents: 4500, TotalCents: 18000},
			{ID: "li-2", Description: "Filter cleaning", Quantity: 1, UnitPriceCents: 12500, TotalCents: 12500},
		},
		TaxRate:       0.0825,
		Notes:         "gate code on file",
		ValidUntil:    "2026-04-14",
		Status:        entities.EstimateStatusSent,
		SubtotalCents: 30500,
		TaxCents:      2516,
		TotalCents:    33016,
		CreatedAt:     created,
		UpdatedAt:     created.Add(time.Hour),
	}

	got := fromEstimateItem(toEstimateItem(original))
	if !got.CreatedAt.Equal(original.CreatedAt) || !got.UpdatedAt.Equal(original.UpdatedAt) {
		t.Fatalf("timestamps changed: got %v / %v", got.CreatedAt, got.UpdatedAt)
	}
	got.CreatedAt, got.UpdatedAt = original.CreatedAt, original.UpdatedAt
	if !reflect.DeepEqual(got, original) {
		t.Fatalf("round trip changed the estimate:\n got %+v\nwant %+v", got, original)
	}
}

func TestEstimateItemOptionalFieldsOmitted(t *testing.T) {
	it := toEstimateItem(entities.Estimate{ID: "est-1", CustomerID: "cus-1", Status: entities.EstimateStatusDraft})
	if it.PoolID != "" || it.Notes != "" || it.ValidUntil != "" {
		t.Fatalf("expected empty optional attributes, got %+v", it)
	}
	if it.Items == nil {
		t.Fatal("items should marshal as an empty list, not null")
	}
}
