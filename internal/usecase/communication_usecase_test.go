package usecase

import (
	"aquaops/internal/domain/entities"
	"aquaops/internal/domain/validate"
	mock_interfaces "aquaops/internal/usecase/interfaces/mocks"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func newCommunicationMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockICommunicationRepository, *mock_interfaces.MockICustomerRepository, *CommunicationUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICommunicationRepository(ctrl)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	return ctrl, repo, customerRepo, NewCommunicationUseCase(repo, customerRepo)
}

func TestCommunicationLog_Success(t *testing.T) {
	ctrl, repo, customerRepo, uc := newCommunicationMocks(t)
	defer ctrl.Finish()

	customerRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Communication{})).DoAndReturn(
		func(_ context.Context, c entities.Communication) (entities.Communication, error) {
			if c.ID == "" {
				t.Fatal("expected generated id")
			}
			if c.Type != entities.CommunicationTypeCall || c.Direction != entities.CommunicationInbound {
				t.Fatalf("unexpected classification %s/%s", c.Type, c.Direction)
			}
			if got := c.OccurredAt.Format(time.RFC3339); got != "2026-03-10T15:00:00Z" {
				t.Fatalf("occurred_at = %s", got)
			}
			return c, nil
		})

	_, err := uc.Log(context.Background(), LogCommunicationInput{
		CustomerID: "c-1",
		Type:       "call",
		Direction:  "inbound",
		Summary:    "Asked about green water after the storm",
		OccurredAt: "2026-03-10T09:00:00-06:00",
		LoggedBy:   "dana",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestCommunicationLog_DefaultsOccurredAt(t *testing.T) {
	ctrl, repo, customerRepo, uc := newCommunicationMocks(t)
	defer ctrl.Finish()

	customerRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
	before := time.Now().UTC()
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Communication{})).DoAndReturn(
		func(_ context.Context, c entities.Communication) (entities.Communication, error) {
			if c.OccurredAt.Before(before) {
				t.Fatalf("occurred_at %v earlier than test start %v", c.OccurredAt, before)
			}
			return c, nil
		})

	_, err := uc.Log(context.Background(), LogCommunicationInput{
		CustomerID: "c-1",
		Type:       "text",
		Direction:  "outbound",
		Summary:    "Sent reschedule confirmation",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestCommunicationLog_Invalid(t *testing.T) {
	ctrl, _, _, uc := newCommunicationMocks(t)
	defer ctrl.Finish()

	_, err := uc.Log(context.Background(), LogCommunicationInput{
		CustomerID: "c-1",
		Type:       "fax",
		Direction:  "sideways",
		Summary:    "",
		OccurredAt: "yesterday",
	})

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	fields := map[string]bool{}
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"type", "direction", "summary", "occurred_at"} {
		if !fields[want] {
			t.Errorf("expected error on %s, got %v", want, verrs)
		}
	}
}

func TestCommunicationLog_LoggedByLength(t *testing.T) {
	tests := []struct {
		name     string
		loggedBy string
		wantErr  bool
	}{
		{"long name accepted", strings.Repeat("d", 150), false},
		{"200 chars accepted", strings.Repeat("d", 200), false},
		{"201 chars rejected", strings.Repeat("d", 201), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, repo, customerRepo, uc := newCommunicationMocks(t)
			defer ctrl.Finish()

			if !tc.wantErr {
				customerRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c entities.Communication) (entities.Communication, error) {
						return c, nil
					})
			}

			_, err := uc.Log(context.Background(), LogCommunicationInput{
				CustomerID: "c-1",
				Type:       "email",
				Direction:  "outbound",
				Summary:    "Seasonal opening quote follow-up",
				LoggedBy:   tc.loggedBy,
			})

			if tc.wantErr {
				var verrs validate.Errors
				if !errors.As(err, &verrs) {
					t.Fatalf("expected validate.Errors, got %v", err)
				}
				found := false
				for _, fe := range verrs {
					if fe.Field == "logged_by" {
						found = true
					}
				}
				if !found {
					t.Fatalf("expected error on logged_by, got %v", verrs)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected success, got %v", err)
			}
		})
	}
}

func TestCommunicationList_ClampsLimit(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		expect int32
	}{
		{"default", 0, 20},
		{"negative", -5, 20},
		{"capped", 500, 100},
		{"as requested", 50, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, repo, _, uc := newCommunicationMocks(t)
			defer ctrl.Finish()

			repo.EXPECT().List(gomock.Any(), gomock.AssignableToTypeOf(entities.CommunicationFilter{})).DoAndReturn(
				func(_ context.Context, f entities.CommunicationFilter) (entities.CommunicationPage, error) {
					if f.Limit != tc.expect {
						t.Fatalf("limit = %d, want %d", f.Limit, tc.expect)
					}
					return entities.CommunicationPage{}, nil
				})

			if _, err := uc.List(context.Background(), ListCommunicationsInput{Limit: tc.limit}); err != nil {
				t.Fatalf("expected success, got %v", err)
			}
		})
	}
}

func TestCommunicationList_DateRange(t *testing.T) {
	ctrl, repo, _, uc := newCommunicationMocks(t)
	defer ctrl.Finish()

	repo.EXPECT().List(gomock.Any(), gomock.AssignableToTypeOf(entities.CommunicationFilter{})).DoAndReturn(
		func(_ context.Context, f entities.CommunicationFilter) (entities.CommunicationPage, error) {
			if got := f.From.Format("2006-01-02"); got != "2026-03-01" {
				t.Fatalf("from = %s", got)
			}
			// To is inclusive, so the bound is the following midnight.
			if got := f.To.Format("2006-01-02"); got != "2026-03-16" {
				t.Fatalf("to = %s", got)
			}
			return entities.CommunicationPage{}, nil
		})

	_, err := uc.List(context.Background(), ListCommunicationsInput{From: "2026-03-01", To: "2026-03-15"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestCommunicationList_BadCursor(t *testing.T) {
	ctrl, _, _, uc := newCommunicationMocks(t)
	defer ctrl.Finish()

	_, err := uc.List(context.Background(), ListCommunicationsInput{Cursor: "not-base64!!"})

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "cursor" {
		t.Fatalf("expected a single cursor error, got %v", verrs)
	}
}

func TestCommunicationList_IssuedCursorPassesThrough(t *testing.T) {
	ctrl, repo, _, uc := newCommunicationMocks(t)
	defer ctrl.Finish()

	// A cursor in the exact shape the repository hands out: the flattened
	// LastEvaluatedKey as JSON, RawURLEncoding (unpadded). A payload whose
	// length needs padding under StdEncoding must still round-trip.
	key, err := json.Marshal(map[string]string{
		"id":          "com-7",
		"customer_id": "cus-1",
		"occurred_at": "2026-03-14T09:30:00.000000000Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	cursor := base64.RawURLEncoding.EncodeToString(key)

	repo.EXPECT().List(gomock.Any(), gomock.AssignableToTypeOf(entities.CommunicationFilter{})).DoAndReturn(
		func(_ context.Context, f entities.CommunicationFilter) (entities.CommunicationPage, error) {
			if f.Cursor != cursor {
				t.Fatalf("cursor not forwarded, got %q", f.Cursor)
			}
			return entities.CommunicationPage{}, nil
		})

	if _, err := uc.List(context.Background(), ListCommunicationsInput{Cursor: cursor}); err != nil {
		t.Fatalf("expected the issued cursor to be accepted, got %v", err)
	}
}

func TestCommunicationDelete_NotFound(t *testing.T) {
	ctrl, repo, _, uc := newCommunicationMocks(t)
	defer ctrl.Finish()

	repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

	if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrCommunicationNotFound) {
		t.Fatalf("expected ErrCommunicationNotFound, got %v", err)
	}
}
