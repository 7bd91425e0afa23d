package usecase

import (
	"aquaops/internal/domain/entities"
	"aquaops/internal/domain/patch"
	"aquaops/internal/domain/validate"
	mock_interfaces "aquaops/internal/usecase/interfaces/mocks"
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
)

func newEstimateMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIEstimateRepository, *mock_interfaces.MockICustomerRepository, *mock_interfaces.MockIPoolRepository, *EstimateUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	poolRepo := mock_interfaces.NewMockIPoolRepository(ctrl)
	return ctrl, repo, customerRepo, poolRepo, NewEstimateUseCase(repo, customerRepo, poolRepo)
}

func numberVal(v float64) patch.Number { return patch.Number{Value: v, Set: true} }
func intVal(v int64) patch.Int         { return patch.Int{Value: v, Set: true} }

func TestEstimateCreate_DerivesTotals(t *testing.T) {
	ctrl, repo, customerRepo, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	customerRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
		func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
			if e.Status != entities.EstimateStatusDraft {
				t.Fatalf("new estimates must start draft, got %s", e.Status)
			}
			if e.SubtotalCents != 350000 {
				t.Fatalf("subtotal = %d, want 350000", e.SubtotalCents)
			}
			if e.TaxCents != 24500 {
				t.Fatalf("tax = %d, want 24500", e.TaxCents)
			}
			if e.TotalCents != 374500 {
				t.Fatalf("total = %d, want 374500", e.TotalCents)
			}
			if len(e.Items) != 2 {
				t.Fatalf("expected 2 items, got %d", len(e.Items))
			}
			if e.Items[0].ID == "" || e.Items[1].ID == "" {
				t.Fatal("expected generated line item ids")
			}
			if e.Items[0].TotalCents != 300000 {
				t.Fatalf("first line total = %d, want 300000", e.Items[0].TotalCents)
			}
			return e, nil
		})

	got, err := uc.Create(context.Background(), CreateEstimateInput{
		CustomerID: "c-1",
		Items: []LineItemInput{
			{Description: "Weekly service (monthly)", Quantity: numberVal(2), UnitPriceCents: intVal(150000)},
			{Description: "Filter cleaning", Quantity: numberVal(1), UnitPriceCents: intVal(50000)},
		},
		TaxRate: numberVal(0.07),
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got.TotalCents != 374500 {
		t.Fatalf("returned total = %d, want 374500", got.TotalCents)
	}
}

func TestEstimateCreate_RequiresItems(t *testing.T) {
	ctrl, _, _, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	_, err := uc.Create(context.Background(), CreateEstimateInput{CustomerID: "c-1"})

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "items" {
		t.Fatalf("expected a single items error, got %v", verrs)
	}
}

func TestEstimateCreate_FieldErrors(t *testing.T) {
	ctrl, _, _, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	_, err := uc.Create(context.Background(), CreateEstimateInput{
		CustomerID: "c-1",
		Items: []LineItemInput{
			{Description: "", Quantity: patch.Number{Invalid: true}, UnitPriceCents: intVal(-5)},
		},
		TaxRate:    numberVal(1.5),
		ValidUntil: "2024-02-30",
	})

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	fields := map[string]bool{}
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"tax_rate", "valid_until", "items[0].description", "items[0].quantity", "items[0].unit_price_cents"} {
		if !fields[want] {
			t.Errorf("expected error on %s, got %v", want, verrs)
		}
	}
}

func TestEstimateCreate_CustomerMissing(t *testing.T) {
	ctrl, _, customerRepo, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	customerRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Customer{}, nil)

	_, err := uc.Create(context.Background(), CreateEstimateInput{
		CustomerID: "ghost",
		Items:      []LineItemInput{{Description: "Service", Quantity: numberVal(1), UnitPriceCents: intVal(100)}},
	})
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestEstimateCreate_PoolMissing(t *testing.T) {
	ctrl, _, customerRepo, poolRepo, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	customerRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
	poolRepo.EXPECT().GetByID(gomock.Any(), "ghost-pool").Return(entities.Pool{}, nil)

	_, err := uc.Create(context.Background(), CreateEstimateInput{
		CustomerID: "c-1",
		PoolID:     "ghost-pool",
		Items:      []LineItemInput{{Description: "Service", Quantity: numberVal(1), UnitPriceCents: intVal(100)}},
	})
	if !errors.Is(err, ErrPoolNotFound) {
		t.Fatalf("expected ErrPoolNotFound, got %v", err)
	}
}

func TestEstimateChangeStatus_Allowed(t *testing.T) {
	ctrl, repo, _, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Status: entities.EstimateStatusDraft}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), "e-1", entities.EstimateStatusSent).
		Return(entities.Estimate{ID: "e-1", Status: entities.EstimateStatusSent}, nil)

	got, err := uc.ChangeStatus(context.Background(), "e-1", "sent")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got.Status != entities.EstimateStatusSent {
		t.Fatalf("status = %s, want sent", got.Status)
	}
}

func TestEstimateChangeStatus_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		current entities.EstimateStatus
		target  string
	}{
		{"draft cannot convert directly", entities.EstimateStatusDraft, "converted"},
		{"draft cannot decline", entities.EstimateStatusDraft, "declined"},
		{"converted is terminal", entities.EstimateStatusConverted, "draft"},
		{"sent cannot reopen", entities.EstimateStatusSent, "draft"},
		{"internal_final cannot go back to sent", entities.EstimateStatusInternalFinal, "sent"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, repo, _, _, uc := newEstimateMocks(t)
			defer ctrl.Finish()

			repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Status: tc.current}, nil)

			_, err := uc.ChangeStatus(context.Background(), "e-1", tc.target)
			if !errors.Is(err, ErrInvalidStatusTransition) {
				t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
			}
		})
	}
}

func TestEstimateChangeStatus_ReopenDeclined(t *testing.T) {
	ctrl, repo, _, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Status: entities.EstimateStatusDeclined}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), "e-1", entities.EstimateStatusDraft).
		Return(entities.Estimate{ID: "e-1", Status: entities.EstimateStatusDraft}, nil)

	if _, err := uc.ChangeStatus(context.Background(), "e-1", "draft"); err != nil {
		t.Fatalf("declined -> draft should be allowed, got %v", err)
	}
}

func TestEstimateChangeStatus_UnknownTarget(t *testing.T) {
	ctrl, _, _, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	_, err := uc.ChangeStatus(context.Background(), "e-1", "archived")
	if !errors.Is(err, ErrUnknownEstimateStatus) {
		t.Fatalf("expected ErrUnknownEstimateStatus, got %v", err)
	}
}

func TestEstimateUpdate_ReplacesItemsAndRecomputes(t *testing.T) {
	ctrl, repo, _, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	existing := entities.Estimate{
		ID:         "e-1",
		CustomerID: "c-1",
		Status:     entities.EstimateStatusDraft,
		TaxRate:    0.07,
		Items: []entities.LineItem{
			{ID: "li-1", Description: "Old line", Quantity: 1, UnitPriceCents: 100, TotalCents: 100},
		},
		SubtotalCents: 100,
		TaxCents:      7,
		TotalCents:    107,
	}
	repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
		func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
			if len(e.Items) != 1 || e.Items[0].ID != "li-1" {
				t.Fatalf("expected caller-supplied item id kept, got %+v", e.Items)
			}
			if e.SubtotalCents != 300000 || e.TaxCents != 21000 || e.TotalCents != 321000 {
				t.Fatalf("totals not recomputed: %d/%d/%d", e.SubtotalCents, e.TaxCents, e.TotalCents)
			}
			return e, nil
		})

	items := []LineItemInput{
		{ID: "li-1", Description: "New line", Quantity: numberVal(2), UnitPriceCents: intVal(150000)},
	}
	_, err := uc.Update(context.Background(), "e-1", UpdateEstimateInput{Items: &items})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestEstimateUpdate_EmptyItemListRejected(t *testing.T) {
	ctrl, repo, _, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Status: entities.EstimateStatusDraft}, nil)

	empty := []LineItemInput{}
	_, err := uc.Update(context.Background(), "e-1", UpdateEstimateInput{Items: &empty})

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "items" {
		t.Fatalf("expected a single items error, got %v", verrs)
	}
}

func TestEstimateList_UnknownStatusFilter(t *testing.T) {
	ctrl, _, _, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	_, err := uc.List(context.Background(), "", "bogus")
	if !errors.Is(err, ErrUnknownEstimateStatus) {
		t.Fatalf("expected ErrUnknownEstimateStatus, got %v", err)
	}
}

func TestEstimateList_PassesFilters(t *testing.T) {
	ctrl, repo, _, _, uc := newEstimateMocks(t)
	defer ctrl.Finish()

	repo.EXPECT().List(gomock.Any(), "c-1", entities.EstimateStatusSent).Return([]entities.Estimate{}, nil)

	if _, err := uc.List(context.Background(), " c-1 ", "SENT"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}
