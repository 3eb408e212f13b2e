package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"construtora_xpto/internal/adapter/http/handlers/mocks"
	"construtora_xpto/internal/adapter/http/middleware"
	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// withIdentity stands in for the access gate in handler tests.
func withIdentity(identity middleware.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityKey, identity)
		c.Next()
	}
}

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"project_id":"proj-404"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateQuotationInput{})).Return(entities.Quotation{
			ID: "q-1", ProjectID: "proj-1", TotalAmount: 50000, Status: entities.QuotationStatusPending,
		}, nil)

		body := `{"project_id":"proj-1","line_items":[{"description":"materials","amount":25000},{"description":"labor","amount":25000}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["id"] != "q-1" || resp["status"] != "pending" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestQuotationHandler_ApproveQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/approve", h.ApproveQuotation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("identity without user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/approve",
			withIdentity(middleware.Identity{Email: "admin@acme.com", Role: entities.RoleAdmin}),
			h.ApproveQuotation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/approve",
			withIdentity(middleware.Identity{UserID: "user-1", Email: "joe@acme.com", Role: entities.RoleUser}),
			h.ApproveQuotation)

		uc.EXPECT().Approve(gomock.Any(), "q-1", "user-1").
			Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("already approved maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/approve",
			withIdentity(middleware.Identity{UserID: "user-1", Role: entities.RoleUser}),
			h.ApproveQuotation)

		uc.EXPECT().Approve(gomock.Any(), "q-1", "user-1").
			Return(entities.Quotation{}, usecase.ErrQuotationAlreadyApproved)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp["code"] != "QUOTATION_ALREADY_APPROVED" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestQuotationHandler_RejectQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved cannot be rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/reject",
			withIdentity(middleware.Identity{UserID: "sup-1", Role: entities.RoleSupervisor}),
			h.RejectQuotation)

		uc.EXPECT().Reject(gomock.Any(), "q-1", "sup-1").
			Return(entities.Quotation{}, usecase.ErrCannotRejectApproved)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_GetQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_UpdateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("resubmission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotations/:id", h.UpdateQuotation)

		uc.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, input usecase.UpdateQuotationInput) (entities.Quotation, error) {
				if input.Status == nil || *input.Status != entities.QuotationStatusPending {
					t.Fatalf("expected pending status, got %+v", input.Status)
				}
				return entities.Quotation{ID: "q-1", Status: entities.QuotationStatusPending}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotations/q-1", bytes.NewBufferString(`{"status":"pending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
