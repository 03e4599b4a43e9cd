package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadmarket/internal/adapter/http/handlers/mocks"
	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_PostJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadAllocatorUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.PostJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"trade_category":"painting"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unpaid estimate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadAllocatorUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().PostJob(gomock.Any(), gomock.Any()).Return(entities.JobListing{}, usecase.ErrEstimateNotPaid)

		r := gin.New()
		r.POST("/v1/jobs", h.PostJob)

		body := `{"owner_customer_id":"cust-1","trade_category":"painting","postcode":"SW1A 1AA","estimate_id":"est-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reused estimate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadAllocatorUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().PostJob(gomock.Any(), gomock.Any()).Return(entities.JobListing{}, usecase.ErrEstimateAlreadyReferenced)

		r := gin.New()
		r.POST("/v1/jobs", h.PostJob)

		body := `{"owner_customer_id":"cust-2","trade_category":"painting","postcode":"SW1A 1AA","estimate_id":"est-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadAllocatorUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().PostJob(gomock.Any(), gomock.Any()).Return(entities.JobListing{
			ID:              "job-1",
			OwnerCustomerID: "cust-1",
			TradeCategory:   entities.TradeCategoryPainting,
			Postcode:        "SW1A 1AA",
			MaxSlots:        entities.DefaultMaxSlots,
		}, nil)

		r := gin.New()
		r.POST("/v1/jobs", h.PostJob)

		body := `{"owner_customer_id":"cust-1","trade_category":"painting","postcode":"SW1A 1AA"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp struct {
			ID         string `json:"id"`
			Status     string `json:"status"`
			SlotsTaken int    `json:"slots_taken"`
			MaxSlots   int    `json:"max_slots"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.ID != "job-1" || resp.Status != "open" || resp.SlotsTaken != 0 || resp.MaxSlots != 4 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestJobHandler_PurchaseLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(t *testing.T, h *JobHandler, body string) *httptest.ResponseRecorder {
		t.Helper()
		r := gin.New()
		r.POST("/v1/jobs/:job_id/leads", h.PurchaseLead)
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing professional id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockILeadAllocatorUseCase(ctrl))

		if w := post(t, h, `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient credits maps to 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadAllocatorUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().PurchaseLead(gomock.Any(), "job-1", "p1").Return(usecase.LeadPurchase{}, entities.ErrInsufficientCredits)

		if w := post(t, h, `{"professional_id":"p1"}`); w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("slots full maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadAllocatorUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().PurchaseLead(gomock.Any(), "job-1", "p1").Return(usecase.LeadPurchase{}, entities.ErrSlotsFull)

		if w := post(t, h, `{"professional_id":"p1"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("repeat purchase maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadAllocatorUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().PurchaseLead(gomock.Any(), "job-1", "p1").Return(usecase.LeadPurchase{}, entities.ErrAlreadyPurchased)

		if w := post(t, h, `{"professional_id":"p1"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadAllocatorUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().PurchaseLead(gomock.Any(), "job-1", "p1").Return(usecase.LeadPurchase{
			Record: entities.LeadPurchaseRecord{ID: "r1", JobID: "job-1", ProfessionalID: "p1", CreditsCharged: 6},
			Job: entities.JobListing{
				ID:        "job-1",
				MaxSlots:  entities.DefaultMaxSlots,
				Occupants: []string{"p1"},
			},
			NewBalance: 24,
		}, nil)

		w := post(t, h, `{"professional_id":"p1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			CreditsCharged int64 `json:"credits_charged"`
			NewBalance     int64 `json:"new_balance"`
			SlotsTaken     int   `json:"slots_taken"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.CreditsCharged != 6 || resp.NewBalance != 24 || resp.SlotsTaken != 1 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadAllocatorUseCase(ctrl)
	h := NewJobHandler(uc)

	uc.EXPECT().GetJob(gomock.Any(), "job-1").Return(entities.JobListing{}, usecase.ErrJobNotFound)

	r := gin.New()
	r.GET("/v1/jobs/:job_id", h.GetJob)

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
