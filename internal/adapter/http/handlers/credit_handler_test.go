package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadmarket/internal/adapter/http/handlers/mocks"
	"leadmarket/internal/domain/entities"
	"leadmarket/internal/domain/policy"
	"leadmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCreditHandler_RegisterProfessional(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICreditLedgerUseCase(ctrl)
	h := NewCreditHandler(uc)

	exp := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().Register(gomock.Any(), true, gomock.Any()).Return(entities.Professional{
		ID:               "p1",
		IsPremium:        true,
		PremiumExpiresAt: &exp,
	}, nil)

	r := gin.New()
	r.POST("/v1/professionals", h.RegisterProfessional)

	body := `{"is_premium":true,"premium_expires_at":"2026-12-01T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/professionals", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var resp struct {
		ID            string `json:"id"`
		CreditBalance int64  `json:"credit_balance"`
		IsPremium     bool   `json:"is_premium"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.ID != "p1" || resp.CreditBalance != 0 || !resp.IsPremium {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreditHandler_GetBalance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditLedgerUseCase(ctrl)
		h := NewCreditHandler(uc)

		uc.EXPECT().Balance(gomock.Any(), "p1").Return(int64(0), usecase.ErrProfessionalNotFound)

		r := gin.New()
		r.GET("/v1/professionals/:professional_id/balance", h.GetBalance)

		req := httptest.NewRequest(http.MethodGet, "/v1/professionals/p1/balance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditLedgerUseCase(ctrl)
		h := NewCreditHandler(uc)

		uc.EXPECT().Balance(gomock.Any(), "p1").Return(int64(18), nil)

		r := gin.New()
		r.GET("/v1/professionals/:professional_id/balance", h.GetBalance)

		req := httptest.NewRequest(http.MethodGet, "/v1/professionals/p1/balance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			ProfessionalID string `json:"professional_id"`
			CreditBalance  int64  `json:"credit_balance"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.ProfessionalID != "p1" || resp.CreditBalance != 18 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestCreditHandler_Grants(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("trial credits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditLedgerUseCase(ctrl)
		h := NewCreditHandler(uc)

		uc.EXPECT().GrantTrialCredits(gomock.Any(), "p1").Return(policy.TrialCreditAmount, nil)

		r := gin.New()
		r.POST("/v1/professionals/:professional_id/trial-credits", h.GrantTrialCredits)

		req := httptest.NewRequest(http.MethodPost, "/v1/professionals/p1/trial-credits", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("referral reward", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditLedgerUseCase(ctrl)
		h := NewCreditHandler(uc)

		uc.EXPECT().GrantReferralReward(gomock.Any(), "p1").Return(int64(24), nil)

		r := gin.New()
		r.POST("/v1/professionals/:professional_id/referral-rewards", h.GrantReferralReward)

		req := httptest.NewRequest(http.MethodPost, "/v1/professionals/p1/referral-rewards", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCreditHandler_ListCreditPackages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewCreditHandler(mocks.NewMockICreditLedgerUseCase(ctrl))

	r := gin.New()
	r.GET("/v1/credit-packages", h.ListCreditPackages)

	req := httptest.NewRequest(http.MethodGet, "/v1/credit-packages", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []struct {
		ID             string `json:"id"`
		Credits        int64  `json:"credits"`
		EstimatedLeads int64  `json:"estimated_leads"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp) != len(policy.CreditPackages) {
		t.Fatalf("expected %d packages, got %d", len(policy.CreditPackages), len(resp))
	}
	// Sorted by credits ascending; the advisory figure rides along.
	if resp[0].ID != "starter" || resp[0].EstimatedLeads != 2 {
		t.Fatalf("unexpected first package: %+v", resp[0])
	}
}
