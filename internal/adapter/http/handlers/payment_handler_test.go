package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"construtora_xpto/internal/adapter/http/handlers/mocks"
	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreatePaymentByQuotationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quotation_id", h.CreatePaymentByQuotationID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quotation not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quotation_id", h.CreatePaymentByQuotationID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.Payment{}, usecase.ErrQuotationNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1",
			bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("envelope payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quotation_id", h.CreatePaymentByQuotationID)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.Payment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload: %v", err)
				}
				if _, wrapped := m["mp_payload"]; wrapped {
					t.Fatalf("envelope was not unwrapped: %s", payload)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.Payment{ID: "pay-1", QuotationID: "q-1", Date: now, Status: entities.PaymentStatusApproved}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1",
			bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["id"] != "pay-1" || resp["status"] != "approved" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("empty body becomes an empty object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quotation_id", h.CreatePaymentByQuotationID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "q-1", json.RawMessage("{}")).
			Return(entities.Payment{ID: "pay-1", QuotationID: "q-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPaymentByQuotationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quotation_id", h.GetPaymentByQuotationID)

		uc.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("latest payment wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quotation_id", h.GetPaymentByQuotationID)

		now := time.Now().UTC()
		old := entities.Payment{ID: "pay-old", QuotationID: "q-1", Date: now.Add(-time.Hour), Status: entities.PaymentStatusApproved}
		latest := entities.Payment{ID: "pay-new", QuotationID: "q-1", Date: now, Status: entities.PaymentStatusApproved}
		uc.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Payment{old, latest}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["id"] != "pay-new" {
			t.Fatalf("expected latest payment, got %v", resp)
		}
	})
}
