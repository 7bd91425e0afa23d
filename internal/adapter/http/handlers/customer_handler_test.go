package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aquaops/internal/adapter/http/handlers/mocks"
	"aquaops/internal/domain/entities"
	"aquaops/internal/domain/validate"
	"aquaops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, validate.Errors{}.Add("phone", "phone must have at least 10 digits").AsError())

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Dana Rivers","phone":"555"}`))
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
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.Create)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), usecase.CreateCustomerInput{Name: "Dana Rivers", Phone: "512-555-0134", LeadSource: entities.LeadSourceReferral}).
			Return(entities.Customer{ID: "cus-1", Name: "Dana Rivers", Phone: "512-555-0134", LeadSource: entities.LeadSourceReferral, CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Dana Rivers","phone":"512-555-0134","lead_source":"referral"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "cus-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCustomerHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the search query through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/customers", h.List)

		uc.EXPECT().List(gomock.Any(), "dana").Return([]entities.Customer{{ID: "cus-1", Name: "Dana Rivers", Phone: "512-555-0134"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers?q=dana", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "cus-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/customers", h.List)

		uc.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/customers/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "cus-missing").Return(entities.Customer{}, usecase.ErrCustomerNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers/cus-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/customers/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1", Name: "Dana Rivers", Phone: "512-555-0134"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers/cus-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.DELETE("/v1/customers/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "cus-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/cus-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.DELETE("/v1/customers/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "not-a-uuid").Return(usecase.ErrInvalidCustomerID)

		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/not-a-uuid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	r := gin.New()
	r.GET("/v1/customers/export", h.Export)

	uc.EXPECT().List(gomock.Any(), "").Return([]entities.Customer{{ID: "cus-1", Name: "Dana Rivers", Phone: "512-555-0134"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/customers/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatal("expected a non-empty workbook")
	}
}

func TestMapCustomerError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid id", usecase.ErrInvalidCustomerID, http.StatusBadRequest},
		{"not found", usecase.ErrCustomerNotFound, http.StatusNotFound},
		{"validation", validate.Errors{}.Add("name", "name is required").AsError(), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapCustomerError(tc.err).HTTPStatus; got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
