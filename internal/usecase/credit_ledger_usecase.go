package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/domain/policy"
	"leadmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProfessionalNotFound  = errors.New("professional not found")
	ErrInvalidProfessionalID = errors.New("invalid professional id")
	ErrInvalidCreditAmount   = errors.New("invalid credit amount")
)

// ICreditLedgerUseCase owns professional credit balances.
//
// Debit and Credit are atomic per professional; Balance is a snapshot that
// callers must not use to pre-validate a debit (the debit's own guard is the
// check that counts). Trial and referral grants trust the caller's
// eligibility decision; this engine only exposes the grant primitives.
type ICreditLedgerUseCase interface {
	Register(ctx context.Context, isPremium bool, premiumExpiresAt *time.Time) (entities.Professional, error)
	Balance(ctx context.Context, professionalID string) (int64, error)
	Debit(ctx context.Context, professionalID string, amount int64) (int64, error)
	Credit(ctx context.Context, professionalID string, amount int64) (int64, error)
	GrantTrialCredits(ctx context.Context, professionalID string) (int64, error)
	GrantReferralReward(ctx context.Context, professionalID string) (int64, error)
}

type CreditLedgerUseCase struct {
	repo interfaces.ICreditRepository
}

var _ ICreditLedgerUseCase = (*CreditLedgerUseCase)(nil)

func NewCreditLedgerUseCase(repo interfaces.ICreditRepository) *CreditLedgerUseCase {
	return &CreditLedgerUseCase{repo: repo}
}

func (u *CreditLedgerUseCase) Register(ctx context.Context, isPremium bool, premiumExpiresAt *time.Time) (entities.Professional, error) {
	p := entities.Professional{
		ID:               uuid.NewString(),
		CreditBalance:    0,
		IsPremium:        isPremium,
		PremiumExpiresAt: premiumExpiresAt,
		CreatedAt:        time.Now().UTC(),
	}
	return u.repo.Create(ctx, p)
}

func (u *CreditLedgerUseCase) Balance(ctx context.Context, professionalID string) (int64, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return 0, ErrInvalidProfessionalID
	}

	p, err := u.repo.GetByID(ctx, professionalID)
	if err != nil {
		return 0, err
	}
	if p.ID == "" {
		return 0, ErrProfessionalNotFound
	}
	if p.CreditBalance < 0 {
		log.Printf("[credits][usecase] ALERT negative balance read professional_id=%s balance=%d", p.ID, p.CreditBalance)
		return 0, fmt.Errorf("%w: negative balance for professional %s", entities.ErrInvariantViolation, p.ID)
	}
	return p.CreditBalance, nil
}

func (u *CreditLedgerUseCase) Debit(ctx context.Context, professionalID string, amount int64) (int64, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return 0, ErrInvalidProfessionalID
	}
	if amount <= 0 {
		return 0, ErrInvalidCreditAmount
	}

	p, err := u.repo.Debit(ctx, professionalID, amount)
	if err != nil {
		return 0, err
	}
	if p.ID == "" {
		return 0, ErrProfessionalNotFound
	}
	return p.CreditBalance, nil
}

func (u *CreditLedgerUseCase) Credit(ctx context.Context, professionalID string, amount int64) (int64, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return 0, ErrInvalidProfessionalID
	}
	if amount < 0 {
		return 0, ErrInvalidCreditAmount
	}

	p, err := u.repo.Credit(ctx, professionalID, amount)
	if err != nil {
		return 0, err
	}
	if p.ID == "" {
		return 0, ErrProfessionalNotFound
	}
	return p.CreditBalance, nil
}

// GrantTrialCredits credits the fixed trial amount. The caller (an external
// eligibility collaborator) is responsible for the once-per-identity check.
func (u *CreditLedgerUseCase) GrantTrialCredits(ctx context.Context, professionalID string) (int64, error) {
	log.Printf("[credits][usecase] trial grant professional_id=%s amount=%d", professionalID, policy.TrialCreditAmount)
	return u.Credit(ctx, professionalID, policy.TrialCreditAmount)
}

// GrantReferralReward credits the referral reward to an already vetted
// professional.
func (u *CreditLedgerUseCase) GrantReferralReward(ctx context.Context, professionalID string) (int64, error) {
	log.Printf("[credits][usecase] referral reward professional_id=%s amount=%d", professionalID, policy.ReferralRewardAmount)
	return u.Credit(ctx, professionalID, policy.ReferralRewardAmount)
}
