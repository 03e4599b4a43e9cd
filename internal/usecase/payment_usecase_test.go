package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/domain/policy"
	mock_interfaces "leadmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo         *mock_interfaces.MockIPaymentRecordRepository
	estimateRepo *mock_interfaces.MockIEstimateRepository
	creditRepo   *mock_interfaces.MockICreditRepository
	gateway      *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(t *testing.T) (*PaymentUseCase, paymentMocks, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:         mock_interfaces.NewMockIPaymentRecordRepository(ctrl),
		estimateRepo: mock_interfaces.NewMockIEstimateRepository(ctrl),
		creditRepo:   mock_interfaces.NewMockICreditRepository(ctrl),
		gateway:      mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewPaymentUseCase(m.repo, m.estimateRepo, m.creditRepo, m.gateway)
	return uc, m, ctrl
}

var approvedResp = json.RawMessage(`{"id":"mp-1","status":"approved","status_detail":"accredited"}`)

func timeAt(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parsing %s: %v", s, err)
	}
	return parsed
}

func TestPaymentUseCase_PayEstimate(t *testing.T) {
	t.Run("invalid estimate id", func(t *testing.T) {
		uc, _, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		if _, err := uc.PayEstimate(context.Background(), "  ", nil); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("non-json payload", func(t *testing.T) {
		uc, _, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		if _, err := uc.PayEstimate(context.Background(), "est-1", json.RawMessage("{nope")); !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		m.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		if _, err := uc.PayEstimate(context.Background(), "est-1", nil); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		m.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Paid: true}, nil)

		if _, err := uc.PayEstimate(context.Background(), "est-1", nil); !errors.Is(err, entities.ErrEstimateAlreadyPaid) {
			t.Fatalf("expected ErrEstimateAlreadyPaid, got %v", err)
		}
	})

	t.Run("denied by provider", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		m.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "rejected", json.RawMessage(`{"status":"rejected"}`), nil)

		if _, err := uc.PayEstimate(context.Background(), "est-1", nil); !errors.Is(err, ErrPaymentDenied) {
			t.Fatalf("expected ErrPaymentDenied, got %v", err)
		}
	})

	t.Run("unauthorized gateway error is mapped", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		m.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		if _, err := uc.PayEstimate(context.Background(), "est-1", nil); !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("approved charge marks the estimate paid", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		m.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				// The server forces the fee amount regardless of the client body.
				if got := req["transaction_amount"].(float64); int64(got) != policy.EstimateFeeAmount {
					t.Fatalf("expected amount %d, got %v", policy.EstimateFeeAmount, got)
				}
				if req["external_reference"] != "est-1" {
					t.Fatalf("expected external_reference est-1, got %v", req["external_reference"])
				}
				return "mp-1", "approved", approvedResp, nil
			})
		m.estimateRepo.EXPECT().MarkPaid(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Paid: true}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
				if p.Kind != entities.PaymentKindEstimate {
					t.Fatalf("expected estimate kind, got %s", p.Kind)
				}
				if p.Amount != policy.EstimateFeeAmount {
					t.Fatalf("expected amount %d, got %d", policy.EstimateFeeAmount, p.Amount)
				}
				if p.Status != entities.PaymentStatusApproved {
					t.Fatalf("expected approved, got %s", p.Status)
				}
				return p, nil
			})

		record, err := uc.PayEstimate(context.Background(), "est-1", json.RawMessage(`{"transaction_amount":1,"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.ID != "mp-1" {
			t.Fatalf("expected provider id mp-1, got %s", record.ID)
		}
	})

	t.Run("concurrent paid transition keeps the record", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		m.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", approvedResp, nil)
		m.estimateRepo.EXPECT().MarkPaid(gomock.Any(), "est-1").Return(entities.Estimate{}, entities.ErrEstimateAlreadyPaid)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) { return p, nil })

		if _, err := uc.PayEstimate(context.Background(), "est-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_PurchaseCreditPackage(t *testing.T) {
	t.Run("unknown package", func(t *testing.T) {
		uc, _, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		if _, _, err := uc.PurchaseCreditPackage(context.Background(), "p1", "mega", nil); !errors.Is(err, ErrUnknownCreditPackage) {
			t.Fatalf("expected ErrUnknownCreditPackage, got %v", err)
		}
	})

	t.Run("professional not found", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		m.creditRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Professional{}, nil)

		if _, _, err := uc.PurchaseCreditPackage(context.Background(), "p1", "starter", nil); !errors.Is(err, ErrProfessionalNotFound) {
			t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
		}
	})

	t.Run("approved charge credits the ledger", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		pkg := policy.CreditPackages["trade"]

		m.creditRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Professional{ID: "p1", CreditBalance: 2}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if got := req["transaction_amount"].(float64); int64(got) != pkg.PriceAmount {
					t.Fatalf("expected amount %d, got %v", pkg.PriceAmount, got)
				}
				return "mp-2", "approved", approvedResp, nil
			})
		m.creditRepo.EXPECT().Credit(gomock.Any(), "p1", pkg.Credits).Return(entities.Professional{ID: "p1", CreditBalance: 32}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
				if p.Kind != entities.PaymentKindCreditPackage {
					t.Fatalf("expected credit_package kind, got %s", p.Kind)
				}
				if p.PackageID != "trade" {
					t.Fatalf("expected package trade, got %s", p.PackageID)
				}
				return p, nil
			})

		record, newBalance, err := uc.PurchaseCreditPackage(context.Background(), "p1", "trade", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if newBalance != 32 {
			t.Fatalf("expected balance 32, got %d", newBalance)
		}
		if record.Amount != pkg.PriceAmount {
			t.Fatalf("expected amount %d, got %d", pkg.PriceAmount, record.Amount)
		}
	})

	t.Run("credit grant failure after charge is surfaced", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		m.creditRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Professional{ID: "p1"}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-3", "approved", approvedResp, nil)
		m.creditRepo.EXPECT().Credit(gomock.Any(), "p1", policy.CreditPackages["starter"].Credits).Return(entities.Professional{}, errors.New("db down"))

		if _, _, err := uc.PurchaseCreditPackage(context.Background(), "p1", "starter", nil); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestPaymentUseCase_LatestByReferenceID(t *testing.T) {
	t.Run("empty list means not found", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().ListByReferenceID(gomock.Any(), "est-1").Return(nil, nil)

		if _, err := uc.LatestByReferenceID(context.Background(), "est-1"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("picks the newest record", func(t *testing.T) {
		uc, m, ctrl := newPaymentUseCase(t)
		defer ctrl.Finish()

		older := entities.PaymentRecord{ID: "a", Date: timeAt(t, "2026-01-01T10:00:00Z")}
		newer := entities.PaymentRecord{ID: "b", Date: timeAt(t, "2026-01-02T10:00:00Z")}
		m.repo.EXPECT().ListByReferenceID(gomock.Any(), "est-1").Return([]entities.PaymentRecord{older, newer}, nil)

		got, err := uc.LatestByReferenceID(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "b" {
			t.Fatalf("expected b, got %s", got.ID)
		}
	})
}
