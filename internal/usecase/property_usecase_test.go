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

func newPropertyMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIPropertyRepository, *mock_interfaces.MockICustomerRepository, *PropertyUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	return ctrl, repo, customerRepo, NewPropertyUseCase(repo, customerRepo)
}

func TestPropertyCreate_Success(t *testing.T) {
	ctrl, repo, customerRepo, uc := newPropertyMocks(t)
	defer ctrl.Finish()

	customerRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1"}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Property{})).DoAndReturn(
		func(_ context.Context, p entities.Property) (entities.Property, error) {
			if p.ID == "" {
				t.Fatal("expected a generated id")
			}
			if p.State != "TX" {
				t.Fatalf("state = %q, want uppercased TX", p.State)
			}
			if p.AddressLine1 != "214 Lakeshore Dr" {
				t.Fatalf("address_line1 = %q, want trimmed", p.AddressLine1)
			}
			return p, nil
		})

	_, err := uc.Create(context.Background(), CreatePropertyInput{
		CustomerID:   "cus-1",
		AddressLine1: "  214 Lakeshore Dr  ",
		City:         "Austin",
		State:        "tx",
		Zip:          "78701",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestPropertyCreate_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		in    CreatePropertyInput
		field string
	}{
		{"missing address", CreatePropertyInput{CustomerID: "cus-1", City: "Austin", State: "TX", Zip: "78701"}, "address_line1"},
		{"bad state", CreatePropertyInput{CustomerID: "cus-1", AddressLine1: "214 Lakeshore Dr", City: "Austin", State: "ZZ", Zip: "78701"}, "state"},
		{"bad zip", CreatePropertyInput{CustomerID: "cus-1", AddressLine1: "214 Lakeshore Dr", City: "Austin", State: "TX", Zip: "787"}, "zip"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, _, _, uc := newPropertyMocks(t)
			defer ctrl.Finish()

			_, err := uc.Create(context.Background(), tc.in)
			var verrs validate.Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected validation errors, got %v", err)
			}
			found := false
			for _, fe := range verrs {
				if fe.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected a failure on %q, got %v", tc.field, verrs)
			}
		})
	}
}

func TestPropertyCreate_UnknownCustomer(t *testing.T) {
	ctrl, _, customerRepo, uc := newPropertyMocks(t)
	defer ctrl.Finish()

	customerRepo.EXPECT().GetByID(gomock.Any(), "cus-missing").Return(entities.Customer{}, nil)

	_, err := uc.Create(context.Background(), CreatePropertyInput{
		CustomerID:   "cus-missing",
		AddressLine1: "214 Lakeshore Dr",
		City:         "Austin",
		State:        "TX",
		Zip:          "78701",
	})
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestPropertyGetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl, _, _, uc := newPropertyMocks(t)
		defer ctrl.Finish()

		if _, err := uc.GetByID(context.Background(), "   "); !errors.Is(err, ErrInvalidPropertyID) {
			t.Fatalf("expected ErrInvalidPropertyID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _, uc := newPropertyMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "p-missing").Return(entities.Property{}, nil)

		if _, err := uc.GetByID(context.Background(), "p-missing"); !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("expected ErrPropertyNotFound, got %v", err)
		}
	})
}

func TestPropertyUpdate_PatchSemantics(t *testing.T) {
	current := entities.Property{
		ID:           "p-1",
		CustomerID:   "cus-1",
		AddressLine1: "214 Lakeshore Dr",
		City:         "Austin",
		State:        "TX",
		Zip:          "78701",
		GateCode:     "1234",
	}

	t.Run("omitted fields stay, null clears gate code", func(t *testing.T) {
		ctrl, repo, _, uc := newPropertyMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Property{})).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) {
				if p.AddressLine1 != "214 Lakeshore Dr" {
					t.Fatalf("address_line1 = %q, want untouched", p.AddressLine1)
				}
				if p.GateCode != "" {
					t.Fatalf("gate_code = %q, want cleared", p.GateCode)
				}
				if p.City != "Round Rock" {
					t.Fatalf("city = %q, want Round Rock", p.City)
				}
				return p, nil
			})

		_, err := uc.Update(context.Background(), "p-1", UpdatePropertyInput{
			City:     patch.String{Value: "Round Rock", Set: true},
			GateCode: patch.String{Set: true, Null: true},
		})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})

	t.Run("required field cannot be cleared", func(t *testing.T) {
		ctrl, repo, _, uc := newPropertyMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(current, nil)

		_, err := uc.Update(context.Background(), "p-1", UpdatePropertyInput{
			AddressLine1: patch.String{Set: true, Null: true},
		})
		var verrs validate.Errors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected validation errors, got %v", err)
		}
	})
}

func TestPropertyDelete(t *testing.T) {
	t.Run("missing row maps to not found", func(t *testing.T) {
		ctrl, repo, _, uc := newPropertyMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().Delete(gomock.Any(), "p-missing").Return(false, nil)

		if err := uc.Delete(context.Background(), "p-missing"); !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("expected ErrPropertyNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, _, uc := newPropertyMocks(t)
		defer ctrl.Finish()

		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "p-1"); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})
}
