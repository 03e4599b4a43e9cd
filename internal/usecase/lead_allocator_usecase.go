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
	ErrJobNotFound               = errors.New("job listing not found")
	ErrInvalidJobID              = errors.New("invalid job id")
	ErrInvalidJobListing         = errors.New("invalid job listing")
	ErrEstimateNotPaid           = errors.New("estimate is not paid")
	ErrEstimateAlreadyReferenced = errors.New("estimate already backs another job listing")
)

// PostJobCommand carries the fields a customer supplies when posting a job.
type PostJobCommand struct {
	OwnerCustomerID string
	TradeCategory   entities.TradeCategory
	EstimateID      string
	Postcode        string
}

// LeadPurchase is the result of a successful PurchaseLead.
type LeadPurchase struct {
	Record     entities.LeadPurchaseRecord
	Job        entities.JobListing
	NewBalance int64
}

// ILeadAllocatorUseCase owns job-listing lifecycle and slot occupancy.
type ILeadAllocatorUseCase interface {
	PostJob(ctx context.Context, cmd PostJobCommand) (entities.JobListing, error)
	GetJob(ctx context.Context, id string) (entities.JobListing, error)
	PurchaseLead(ctx context.Context, jobID, professionalID string) (LeadPurchase, error)
}

type LeadAllocatorUseCase struct {
	jobRepo      interfaces.IJobListingRepository
	creditRepo   interfaces.ICreditRepository
	purchaseRepo interfaces.ILeadPurchaseRepository
	estimateRepo interfaces.IEstimateRepository

	// now is swappable so tests can pin the premium evaluation instant.
	now func() time.Time
}

var _ ILeadAllocatorUseCase = (*LeadAllocatorUseCase)(nil)

func NewLeadAllocatorUseCase(
	jobRepo interfaces.IJobListingRepository,
	creditRepo interfaces.ICreditRepository,
	purchaseRepo interfaces.ILeadPurchaseRepository,
	estimateRepo interfaces.IEstimateRepository,
) *LeadAllocatorUseCase {
	return &LeadAllocatorUseCase{
		jobRepo:      jobRepo,
		creditRepo:   creditRepo,
		purchaseRepo: purchaseRepo,
		estimateRepo: estimateRepo,
		now:          time.Now,
	}
}

func (u *LeadAllocatorUseCase) PostJob(ctx context.Context, cmd PostJobCommand) (entities.JobListing, error) {
	cmd.OwnerCustomerID = strings.TrimSpace(cmd.OwnerCustomerID)
	cmd.Postcode = strings.TrimSpace(cmd.Postcode)
	cmd.EstimateID = strings.TrimSpace(cmd.EstimateID)
	if cmd.OwnerCustomerID == "" || cmd.Postcode == "" || cmd.TradeCategory == "" {
		return entities.JobListing{}, ErrInvalidJobListing
	}

	if cmd.EstimateID != "" {
		est, err := u.estimateRepo.GetByID(ctx, cmd.EstimateID)
		if err != nil {
			return entities.JobListing{}, err
		}
		if est.ID == "" {
			return entities.JobListing{}, ErrEstimateNotFound
		}
		if !est.Paid {
			return entities.JobListing{}, ErrEstimateNotPaid
		}
		// An estimate is consumed by the listing it backs; it cannot be
		// reused to publish a second one.
		existing, err := u.jobRepo.GetByEstimateID(ctx, cmd.EstimateID)
		if err != nil {
			return entities.JobListing{}, err
		}
		if existing.ID != "" {
			return entities.JobListing{}, ErrEstimateAlreadyReferenced
		}
	}

	j := entities.JobListing{
		ID:              uuid.NewString(),
		OwnerCustomerID: cmd.OwnerCustomerID,
		TradeCategory:   cmd.TradeCategory,
		EstimateID:      cmd.EstimateID,
		Postcode:        cmd.Postcode,
		MaxSlots:        entities.DefaultMaxSlots,
		PostedAt:        time.Now().UTC(),
	}
	return u.jobRepo.Create(ctx, j)
}

func (u *LeadAllocatorUseCase) GetJob(ctx context.Context, id string) (entities.JobListing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobListing{}, ErrInvalidJobID
	}

	j, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return entities.JobListing{}, err
	}
	if j.ID == "" {
		return entities.JobListing{}, ErrJobNotFound
	}
	return j, nil
}

// PurchaseLead sells one lead slot: premium-aware cost lookup, atomic debit,
// atomic slot grant, audit record. The debit and the grant must both happen
// or neither; if the grant loses a race after the debit succeeded, the debit
// is rolled back with a compensating credit before the conflict is returned.
func (u *LeadAllocatorUseCase) PurchaseLead(ctx context.Context, jobID, professionalID string) (LeadPurchase, error) {
	jobID = strings.TrimSpace(jobID)
	professionalID = strings.TrimSpace(professionalID)
	if jobID == "" {
		return LeadPurchase{}, ErrInvalidJobID
	}
	if professionalID == "" {
		return LeadPurchase{}, ErrInvalidProfessionalID
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return LeadPurchase{}, err
	}
	if job.ID == "" {
		return LeadPurchase{}, ErrJobNotFound
	}
	if n := len(job.Occupants); n > job.MaxSlots {
		log.Printf("[leads][usecase] ALERT occupant overflow job_id=%s occupants=%d max=%d", job.ID, n, job.MaxSlots)
		return LeadPurchase{}, fmt.Errorf("%w: occupant overflow on job %s", entities.ErrInvariantViolation, job.ID)
	}
	if job.HasOccupant(professionalID) {
		return LeadPurchase{}, entities.ErrAlreadyPurchased
	}
	if job.Full() {
		return LeadPurchase{}, entities.ErrSlotsFull
	}

	prof, err := u.creditRepo.GetByID(ctx, professionalID)
	if err != nil {
		return LeadPurchase{}, err
	}
	if prof.ID == "" {
		return LeadPurchase{}, ErrProfessionalNotFound
	}

	// Cost is evaluated here, at purchase time, never from a cached quote:
	// premium status can expire between quote and purchase.
	cost := policy.LeadCost(prof, u.now())

	debited, err := u.creditRepo.Debit(ctx, professionalID, cost)
	if err != nil {
		return LeadPurchase{}, err
	}
	if debited.ID == "" {
		return LeadPurchase{}, ErrProfessionalNotFound
	}

	granted, err := u.jobRepo.GrantSlot(ctx, jobID, professionalID)
	if err != nil || granted.ID == "" {
		if err == nil {
			err = ErrJobNotFound
		}
		return LeadPurchase{}, u.compensateDebit(ctx, jobID, professionalID, cost, err)
	}

	record := entities.LeadPurchaseRecord{
		ID:             uuid.NewString(),
		JobID:          jobID,
		ProfessionalID: professionalID,
		CreditsCharged: cost,
		PurchasedAt:    time.Now().UTC(),
	}
	if _, aerr := u.purchaseRepo.Append(ctx, record); aerr != nil {
		// The debit and the grant are the authoritative state; the record is
		// reconstruction data. Keep the purchase, flag the gap.
		log.Printf("[leads][usecase] ALERT audit append failed job_id=%s professional_id=%s err=%v", jobID, professionalID, aerr)
	}

	log.Printf("[leads][usecase] lead sold job_id=%s professional_id=%s cost=%d occupants=%d", jobID, professionalID, cost, len(granted.Occupants))
	return LeadPurchase{Record: record, Job: granted, NewBalance: debited.CreditBalance}, nil
}

// compensateDebit undoes a debit whose slot grant lost the race, restoring
// the state the purchase would have had if rejected before the debit.
func (u *LeadAllocatorUseCase) compensateDebit(ctx context.Context, jobID, professionalID string, cost int64, cause error) error {
	log.Printf("[leads][usecase] slot grant conflict, refunding job_id=%s professional_id=%s cost=%d cause=%v", jobID, professionalID, cost, cause)
	if _, cerr := u.creditRepo.Credit(ctx, professionalID, cost); cerr != nil {
		log.Printf("[leads][usecase] ALERT compensation failed job_id=%s professional_id=%s cost=%d err=%v", jobID, professionalID, cost, cerr)
		return fmt.Errorf("compensating credit failed after slot conflict: %w", cerr)
	}
	return cause
}
