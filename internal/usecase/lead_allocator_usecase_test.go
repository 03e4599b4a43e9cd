package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/domain/policy"
	mock_interfaces "leadmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type allocatorMocks struct {
	jobRepo      *mock_interfaces.MockIJobListingRepository
	creditRepo   *mock_interfaces.MockICreditRepository
	purchaseRepo *mock_interfaces.MockILeadPurchaseRepository
	estimateRepo *mock_interfaces.MockIEstimateRepository
}

func newAllocator(t *testing.T) (*LeadAllocatorUseCase, allocatorMocks, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := allocatorMocks{
		jobRepo:      mock_interfaces.NewMockIJobListingRepository(ctrl),
		creditRepo:   mock_interfaces.NewMockICreditRepository(ctrl),
		purchaseRepo: mock_interfaces.NewMockILeadPurchaseRepository(ctrl),
		estimateRepo: mock_interfaces.NewMockIEstimateRepository(ctrl),
	}
	uc := NewLeadAllocatorUseCase(m.jobRepo, m.creditRepo, m.purchaseRepo, m.estimateRepo)
	return uc, m, ctrl
}

func openJob(occupants ...string) entities.JobListing {
	return entities.JobListing{
		ID:              "job-1",
		OwnerCustomerID: "cust-1",
		TradeCategory:   entities.TradeCategoryPainting,
		Postcode:        "SW1A 1AA",
		MaxSlots:        entities.DefaultMaxSlots,
		Occupants:       occupants,
	}
}

func TestLeadAllocatorUseCase_PostJob(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc, _, ctrl := newAllocator(t)
		defer ctrl.Finish()

		_, err := uc.PostJob(context.Background(), PostJobCommand{OwnerCustomerID: "cust-1"})
		if !errors.Is(err, ErrInvalidJobListing) {
			t.Fatalf("expected ErrInvalidJobListing, got %v", err)
		}
	})

	t.Run("linked estimate must exist", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.PostJob(context.Background(), PostJobCommand{
			OwnerCustomerID: "cust-1",
			TradeCategory:   entities.TradeCategoryPainting,
			EstimateID:      "est-1",
			Postcode:        "SW1A 1AA",
		})
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("linked estimate must be paid", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Paid: false}, nil)

		_, err := uc.PostJob(context.Background(), PostJobCommand{
			OwnerCustomerID: "cust-1",
			TradeCategory:   entities.TradeCategoryPainting,
			EstimateID:      "est-1",
			Postcode:        "SW1A 1AA",
		})
		if !errors.Is(err, ErrEstimateNotPaid) {
			t.Fatalf("expected ErrEstimateNotPaid, got %v", err)
		}
	})

	t.Run("estimate backs at most one listing", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Paid: true}, nil)
		m.jobRepo.EXPECT().GetByEstimateID(gomock.Any(), "est-1").Return(openJob(), nil)

		_, err := uc.PostJob(context.Background(), PostJobCommand{
			OwnerCustomerID: "cust-2",
			TradeCategory:   entities.TradeCategoryPainting,
			EstimateID:      "est-1",
			Postcode:        "SW1A 1AA",
		})
		if !errors.Is(err, ErrEstimateAlreadyReferenced) {
			t.Fatalf("expected ErrEstimateAlreadyReferenced, got %v", err)
		}
	})

	t.Run("paid unreferenced estimate links", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Paid: true}, nil)
		m.jobRepo.EXPECT().GetByEstimateID(gomock.Any(), "est-1").Return(entities.JobListing{}, nil)
		m.jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.JobListing) (entities.JobListing, error) { return j, nil })

		job, err := uc.PostJob(context.Background(), PostJobCommand{
			OwnerCustomerID: "cust-1",
			TradeCategory:   entities.TradeCategoryPainting,
			EstimateID:      "est-1",
			Postcode:        "SW1A 1AA",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.EstimateID != "est-1" {
			t.Fatalf("expected estimate reference, got %q", job.EstimateID)
		}
	})

	t.Run("success opens four slots", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.JobListing) (entities.JobListing, error) {
				if j.ID == "" {
					t.Fatal("expected generated id")
				}
				if j.MaxSlots != entities.DefaultMaxSlots {
					t.Fatalf("expected %d slots, got %d", entities.DefaultMaxSlots, j.MaxSlots)
				}
				if len(j.Occupants) != 0 {
					t.Fatalf("expected no occupants, got %v", j.Occupants)
				}
				return j, nil
			})

		job, err := uc.PostJob(context.Background(), PostJobCommand{
			OwnerCustomerID: "cust-1",
			TradeCategory:   entities.TradeCategoryPainting,
			Postcode:        "SW1A 1AA",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status() != entities.JobStatusOpen {
			t.Fatalf("expected open, got %s", job.Status())
		}
	})
}

func TestLeadAllocatorUseCase_GetJob(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, ctrl := newAllocator(t)
		defer ctrl.Finish()

		if _, err := uc.GetJob(context.Background(), " "); !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.JobListing{}, nil)

		if _, err := uc.GetJob(context.Background(), "job-1"); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestLeadAllocatorUseCase_PurchaseLead(t *testing.T) {
	t.Run("job not found", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.JobListing{}, nil)

		if _, err := uc.PurchaseLead(context.Background(), "job-1", "p1"); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("occupant overflow is rejected loudly", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		corrupt := openJob("a", "b", "c", "d", "e")
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(corrupt, nil)

		if _, err := uc.PurchaseLead(context.Background(), "job-1", "p1"); !errors.Is(err, entities.ErrInvariantViolation) {
			t.Fatalf("expected ErrInvariantViolation, got %v", err)
		}
	})

	t.Run("repeat purchase is rejected before full check", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		// p1 already occupies a slot on a full job; the answer must be
		// "already purchased", not "slots full".
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob("p1", "p2", "p3", "p4"), nil)

		if _, err := uc.PurchaseLead(context.Background(), "job-1", "p1"); !errors.Is(err, entities.ErrAlreadyPurchased) {
			t.Fatalf("expected ErrAlreadyPurchased, got %v", err)
		}
	})

	t.Run("full job is rejected before any debit", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob("a", "b", "c", "d"), nil)

		if _, err := uc.PurchaseLead(context.Background(), "job-1", "p1"); !errors.Is(err, entities.ErrSlotsFull) {
			t.Fatalf("expected ErrSlotsFull, got %v", err)
		}
	})

	t.Run("insufficient credits leaves the job untouched", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob(), nil)
		m.creditRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Professional{ID: "p1", CreditBalance: 2}, nil)
		m.creditRepo.EXPECT().Debit(gomock.Any(), "p1", policy.StandardLeadCost).Return(entities.Professional{}, entities.ErrInsufficientCredits)

		if _, err := uc.PurchaseLead(context.Background(), "job-1", "p1"); !errors.Is(err, entities.ErrInsufficientCredits) {
			t.Fatalf("expected ErrInsufficientCredits, got %v", err)
		}
	})

	t.Run("standard purchase charges six credits", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob(), nil)
		m.creditRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Professional{ID: "p1", CreditBalance: 12}, nil)
		m.creditRepo.EXPECT().Debit(gomock.Any(), "p1", policy.StandardLeadCost).Return(entities.Professional{ID: "p1", CreditBalance: 6}, nil)
		m.jobRepo.EXPECT().GrantSlot(gomock.Any(), "job-1", "p1").Return(openJob("p1"), nil)
		m.purchaseRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.LeadPurchaseRecord) (entities.LeadPurchaseRecord, error) {
				if r.CreditsCharged != policy.StandardLeadCost {
					t.Fatalf("expected %d charged, got %d", policy.StandardLeadCost, r.CreditsCharged)
				}
				return r, nil
			})

		purchase, err := uc.PurchaseLead(context.Background(), "job-1", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if purchase.Record.CreditsCharged != policy.StandardLeadCost {
			t.Fatalf("expected %d, got %d", policy.StandardLeadCost, purchase.Record.CreditsCharged)
		}
		if purchase.NewBalance != 6 {
			t.Fatalf("expected new balance 6, got %d", purchase.NewBalance)
		}
		if len(purchase.Job.Occupants) != 1 {
			t.Fatalf("expected one occupant, got %v", purchase.Job.Occupants)
		}
	})

	t.Run("premium status is evaluated at purchase time", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		exp := now.Add(time.Hour)
		premium := entities.Professional{ID: "p1", CreditBalance: 12, IsPremium: true, PremiumExpiresAt: &exp}

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob(), nil)
		m.creditRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(premium, nil)
		m.creditRepo.EXPECT().Debit(gomock.Any(), "p1", policy.PremiumLeadCost).Return(entities.Professional{ID: "p1", CreditBalance: 8}, nil)
		m.jobRepo.EXPECT().GrantSlot(gomock.Any(), "job-1", "p1").Return(openJob("p1"), nil)
		m.purchaseRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.LeadPurchaseRecord) (entities.LeadPurchaseRecord, error) { return r, nil })

		purchase, err := uc.PurchaseLead(context.Background(), "job-1", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if purchase.Record.CreditsCharged != policy.PremiumLeadCost {
			t.Fatalf("expected %d, got %d", policy.PremiumLeadCost, purchase.Record.CreditsCharged)
		}
	})

	t.Run("expired premium charges standard cost", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		exp := now.Add(-time.Minute)
		lapsed := entities.Professional{ID: "p1", CreditBalance: 12, IsPremium: true, PremiumExpiresAt: &exp}

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob(), nil)
		m.creditRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(lapsed, nil)
		m.creditRepo.EXPECT().Debit(gomock.Any(), "p1", policy.StandardLeadCost).Return(entities.Professional{ID: "p1", CreditBalance: 6}, nil)
		m.jobRepo.EXPECT().GrantSlot(gomock.Any(), "job-1", "p1").Return(openJob("p1"), nil)
		m.purchaseRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.LeadPurchaseRecord) (entities.LeadPurchaseRecord, error) { return r, nil })

		if _, err := uc.PurchaseLead(context.Background(), "job-1", "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost grant race refunds the debit", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		// Last slot taken between our read and the conditional grant.
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob("a", "b", "c"), nil)
		m.creditRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Professional{ID: "p1", CreditBalance: 12}, nil)
		m.creditRepo.EXPECT().Debit(gomock.Any(), "p1", policy.StandardLeadCost).Return(entities.Professional{ID: "p1", CreditBalance: 6}, nil)
		m.jobRepo.EXPECT().GrantSlot(gomock.Any(), "job-1", "p1").Return(entities.JobListing{}, entities.ErrSlotsFull)
		m.creditRepo.EXPECT().Credit(gomock.Any(), "p1", policy.StandardLeadCost).Return(entities.Professional{ID: "p1", CreditBalance: 12}, nil)

		if _, err := uc.PurchaseLead(context.Background(), "job-1", "p1"); !errors.Is(err, entities.ErrSlotsFull) {
			t.Fatalf("expected ErrSlotsFull, got %v", err)
		}
	})

	t.Run("failed compensation surfaces the refund error", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob(), nil)
		m.creditRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Professional{ID: "p1", CreditBalance: 12}, nil)
		m.creditRepo.EXPECT().Debit(gomock.Any(), "p1", policy.StandardLeadCost).Return(entities.Professional{ID: "p1", CreditBalance: 6}, nil)
		m.jobRepo.EXPECT().GrantSlot(gomock.Any(), "job-1", "p1").Return(entities.JobListing{}, entities.ErrAlreadyPurchased)
		m.creditRepo.EXPECT().Credit(gomock.Any(), "p1", policy.StandardLeadCost).Return(entities.Professional{}, errors.New("db down"))

		_, err := uc.PurchaseLead(context.Background(), "job-1", "p1")
		if err == nil || errors.Is(err, entities.ErrAlreadyPurchased) {
			t.Fatalf("expected compensation failure error, got %v", err)
		}
	})

	t.Run("audit append failure does not void the purchase", func(t *testing.T) {
		uc, m, ctrl := newAllocator(t)
		defer ctrl.Finish()

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob(), nil)
		m.creditRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Professional{ID: "p1", CreditBalance: 12}, nil)
		m.creditRepo.EXPECT().Debit(gomock.Any(), "p1", policy.StandardLeadCost).Return(entities.Professional{ID: "p1", CreditBalance: 6}, nil)
		m.jobRepo.EXPECT().GrantSlot(gomock.Any(), "job-1", "p1").Return(openJob("p1"), nil)
		m.purchaseRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.LeadPurchaseRecord{}, errors.New("audit table down"))

		purchase, err := uc.PurchaseLead(context.Background(), "job-1", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if purchase.NewBalance != 6 {
			t.Fatalf("expected new balance 6, got %d", purchase.NewBalance)
		}
	})
}
