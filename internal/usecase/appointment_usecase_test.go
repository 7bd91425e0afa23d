package usecase

import (
	"aquaops/internal/domain/entities"
	"aquaops/internal/domain/patch"
	"aquaops/internal/domain/validate"
	mock_interfaces "aquaops/internal/usecase/interfaces/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func newAppointmentMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIAppointmentRepository, *mock_interfaces.MockICustomerRepository, *mock_interfaces.MockIPropertyRepository, *AppointmentUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	propertyRepo := mock_interfaces.NewMockIPropertyRepository(ctrl)
	return ctrl, repo, customerRepo, propertyRepo, NewAppointmentUseCase(repo, customerRepo, propertyRepo)
}

func TestAppointmentCreate_Success(t *testing.T) {
	ctrl, repo, customerRepo, propertyRepo, uc := newAppointmentMocks(t)
	defer ctrl.Finish()

	customerRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
	propertyRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Property{ID: "p-1", CustomerID: "c-1"}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
		func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
			if a.Status != entities.AppointmentStatusScheduled {
				t.Fatalf("new appointments must start scheduled, got %s", a.Status)
			}
			if a.Service != entities.AppointmentServiceEstimateVisit {
				t.Fatalf("service = %s", a.Service)
			}
			if !a.EndsAt.After(a.StartsAt) {
				t.Fatalf("window inverted: %v .. %v", a.StartsAt, a.EndsAt)
			}
			return a, nil
		})

	_, err := uc.Create(context.Background(), CreateAppointmentInput{
		CustomerID: "c-1",
		PropertyID: "p-1",
		Service:    "estimate_visit",
		StartsAt:   "2026-03-16T14:00:00Z",
		EndsAt:     "2026-03-16T15:30:00Z",
		Notes:      "Measure for new heater",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestAppointmentCreate_WindowInverted(t *testing.T) {
	ctrl, _, _, _, uc := newAppointmentMocks(t)
	defer ctrl.Finish()

	_, err := uc.Create(context.Background(), CreateAppointmentInput{
		CustomerID: "c-1",
		Service:    "maintenance",
		StartsAt:   "2026-03-16T15:00:00Z",
		EndsAt:     "2026-03-16T14:00:00Z",
	})

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "ends_at" {
		t.Fatalf("expected a single ends_at error, got %v", verrs)
	}
}

func TestAppointmentCreate_PropertyNotOwned(t *testing.T) {
	ctrl, _, customerRepo, propertyRepo, uc := newAppointmentMocks(t)
	defer ctrl.Finish()

	customerRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
	propertyRepo.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Property{ID: "p-9", CustomerID: "someone-else"}, nil)

	_, err := uc.Create(context.Background(), CreateAppointmentInput{
		CustomerID: "c-1",
		PropertyID: "p-9",
		Service:    "repair",
		StartsAt:   "2026-03-16T14:00:00Z",
		EndsAt:     "2026-03-16T15:00:00Z",
	})
	if !errors.Is(err, ErrPropertyNotOwned) {
		t.Fatalf("expected ErrPropertyNotOwned, got %v", err)
	}
}

func TestAppointmentListWindow_ParsesBounds(t *testing.T) {
	ctrl, repo, _, _, uc := newAppointmentMocks(t)
	defer ctrl.Finish()

	repo.EXPECT().ListWindow(gomock.Any(), gomock.Any(), gomock.Any(), "c-1").DoAndReturn(
		func(_ context.Context, from, to time.Time, _ string) ([]entities.Appointment, error) {
			if got := from.Format(time.RFC3339); got != "2026-03-16T00:00:00Z" {
				t.Fatalf("from = %s", got)
			}
			// Inclusive date bound: the following midnight.
			if got := to.Format(time.RFC3339); got != "2026-03-23T00:00:00Z" {
				t.Fatalf("to = %s", got)
			}
			return nil, nil
		})

	_, err := uc.ListWindow(context.Background(), "2026-03-16", "2026-03-22", "c-1")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestAppointmentListWindow_BadBound(t *testing.T) {
	ctrl, _, _, _, uc := newAppointmentMocks(t)
	defer ctrl.Finish()

	_, err := uc.ListWindow(context.Background(), "next tuesday", "", "")

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "from" {
		t.Fatalf("expected a single from error, got %v", verrs)
	}
}

func TestAppointmentUpdate_CompletesVisit(t *testing.T) {
	ctrl, repo, _, _, uc := newAppointmentMocks(t)
	defer ctrl.Finish()

	existing := entities.Appointment{
		ID:         "a-1",
		CustomerID: "c-1",
		Service:    entities.AppointmentServiceMaintenance,
		StartsAt:   time.Date(2026, time.March, 16, 14, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2026, time.March, 16, 15, 0, 0, 0, time.UTC),
		Status:     entities.AppointmentStatusScheduled,
	}
	repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
		func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
			if a.Status != entities.AppointmentStatusCompleted {
				t.Fatalf("status = %s, want completed", a.Status)
			}
			if a.Service != entities.AppointmentServiceMaintenance {
				t.Fatalf("service should be unchanged, got %s", a.Service)
			}
			return a, nil
		})

	_, err := uc.Update(context.Background(), "a-1", UpdateAppointmentInput{
		Status: patch.String{Value: "completed", Set: true},
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestAppointmentUpdate_RejectsInvertedWindow(t *testing.T) {
	ctrl, repo, _, _, uc := newAppointmentMocks(t)
	defer ctrl.Finish()

	existing := entities.Appointment{
		ID:         "a-1",
		CustomerID: "c-1",
		Service:    entities.AppointmentServiceMaintenance,
		StartsAt:   time.Date(2026, time.March, 16, 14, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2026, time.March, 16, 15, 0, 0, 0, time.UTC),
		Status:     entities.AppointmentStatusScheduled,
	}
	repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(existing, nil)

	_, err := uc.Update(context.Background(), "a-1", UpdateAppointmentInput{
		StartsAt: patch.String{Value: "2026-03-16T16:00:00Z", Set: true},
	})

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "ends_at" {
		t.Fatalf("expected a single ends_at error, got %v", verrs)
	}
}

func TestAppointmentDelete_NotFound(t *testing.T) {
	ctrl, repo, _, _, uc := newAppointmentMocks(t)
	defer ctrl.Finish()

	repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

	if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}
