package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aquaops/internal/adapter/http/handlers/mocks"
	"aquaops/internal/domain/entities"
	"aquaops/internal/domain/validate"
	"aquaops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleHandlerEstimate() entities.Estimate {
	now := time.Now().UTC()
	return entities.Estimate{
		ID:         "est-1",
		CustomerID: "cus-1",
		Items: []entities.LineItem{
			{ID: "li-1", Description: "Weekly service", Quantity: 4, UnitPriceCents: 4500, TotalCents: 18000},
		},
		TaxRate:       0.0825,
		Status:        entities.EstimateStatusDraft,
		SubtotalCents: 18000,
		TaxCents:      1485,
		TotalCents:    19485,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestEstimateHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		h := NewEstimateHandler(uc, customers)

		r := gin.New()
		r.POST("/v1/estimates", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		h := NewEstimateHandler(uc, customers)

		r := gin.New()
		r.POST("/v1/estimates", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrCustomerNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"customer_id":"cus-missing","items":[{"description":"Weekly service","quantity":4,"unit_price_cents":4500}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("empty items rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		h := NewEstimateHandler(uc, customers)

		r := gin.New()
		r.POST("/v1/estimates", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, validate.Errors{}.Add("items", "at least one line item is required").AsError())

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"customer_id":"cus-1","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		h := NewEstimateHandler(uc, customers)

		r := gin.New()
		r.POST("/v1/estimates", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sampleHandlerEstimate(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"customer_id":"cus-1","tax_rate":0.0825,"items":[{"description":"Weekly service","quantity":4,"unit_price_cents":4500}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" || body["total_cents"] != float64(19485) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["total_display"] != "$194.85" {
			t.Fatalf("unexpected total display: %v", body["total_display"])
		}
	})
}

func TestEstimateHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("send success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		h := NewEstimateHandler(uc, customers)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/status", h.ChangeStatus)

		sent := sampleHandlerEstimate()
		sent.Status = entities.EstimateStatusSent
		uc.EXPECT().ChangeStatus(gomock.Any(), "est-1", "sent").Return(sent, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/status", bytes.NewBufferString(`{"status":"sent"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status is trimmed before dispatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		h := NewEstimateHandler(uc, customers)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/status", h.ChangeStatus)

		sent := sampleHandlerEstimate()
		sent.Status = entities.EstimateStatusSent
		uc.EXPECT().ChangeStatus(gomock.Any(), "est-1", "sent").Return(sent, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/status", bytes.NewBufferString(`{"status":"  sent  "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		h := NewEstimateHandler(uc, customers)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "est-1", "converted").Return(entities.Estimate{}, usecase.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/status", bytes.NewBufferString(`{"status":"converted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		h := NewEstimateHandler(uc, customers)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "est-1", "archived").Return(entities.Estimate{}, usecase.ErrUnknownEstimateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/status", bytes.NewBufferString(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ExportPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		h := NewEstimateHandler(uc, customers)

		r := gin.New()
		r.GET("/v1/estimates/:id/export/pdf", h.ExportPDF)

		uc.EXPECT().GetByID(gomock.Any(), "est-missing").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-missing/export/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing customer does not block the export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		customers := mocks.NewMockICustomerUseCase(ctrl)
		h := NewEstimateHandler(uc, customers)

		r := gin.New()
		r.GET("/v1/estimates/:id/export/pdf", h.ExportPDF)

		uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(sampleHandlerEstimate(), nil)
		customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{}, usecase.ErrCustomerNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1/export/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if !strings.HasPrefix(w.Body.String(), "%PDF-") {
			t.Fatal("body does not look like a PDF")
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid estimate id", usecase.ErrInvalidEstimateID, http.StatusBadRequest},
		{"invalid customer id", usecase.ErrInvalidCustomerID, http.StatusBadRequest},
		{"unknown status", usecase.ErrUnknownEstimateStatus, http.StatusBadRequest},
		{"illegal transition", usecase.ErrInvalidStatusTransition, http.StatusConflict},
		{"customer not found", usecase.ErrCustomerNotFound, http.StatusNotFound},
		{"pool not found", usecase.ErrPoolNotFound, http.StatusNotFound},
		{"estimate not found", usecase.ErrEstimateNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapEstimateError(tc.err).HTTPStatus; got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
