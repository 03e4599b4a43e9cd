package memory

import (
	"context"
	"sync"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase/interfaces"
)

// EstimateRepository holds estimates under one mutex; estimates see no
// hot-path contention.
type EstimateRepository struct {
	mu    sync.Mutex
	items map[string]entities.Estimate
}

var _ interfaces.IEstimateRepository = (*EstimateRepository)(nil)

func NewEstimateRepository() *EstimateRepository {
	return &EstimateRepository{items: make(map[string]entities.Estimate)}
}

func (r *EstimateRepository) Create(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; ok {
		return entities.Estimate{}, entities.ErrInvariantViolation
	}
	r.items[e.ID] = e
	return e, nil
}

func (r *EstimateRepository) GetByID(_ context.Context, id string) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *EstimateRepository) MarkPaid(_ context.Context, id string) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	if e.Paid {
		return entities.Estimate{}, entities.ErrEstimateAlreadyPaid
	}
	e.Paid = true
	r.items[id] = e
	return e, nil
}

// LeadPurchaseRepository is the in-memory audit trail.
type LeadPurchaseRepository struct {
	mu      sync.Mutex
	records []entities.LeadPurchaseRecord
}

var _ interfaces.ILeadPurchaseRepository = (*LeadPurchaseRepository)(nil)

func NewLeadPurchaseRepository() *LeadPurchaseRepository {
	return &LeadPurchaseRepository{}
}

func (r *LeadPurchaseRepository) Append(_ context.Context, rec entities.LeadPurchaseRecord) (entities.LeadPurchaseRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *LeadPurchaseRepository) ListByJobID(_ context.Context, jobID string) ([]entities.LeadPurchaseRecord, error) {
	return r.filter(func(rec entities.LeadPurchaseRecord) bool { return rec.JobID == jobID }), nil
}

func (r *LeadPurchaseRepository) ListByProfessionalID(_ context.Context, professionalID string) ([]entities.LeadPurchaseRecord, error) {
	return r.filter(func(rec entities.LeadPurchaseRecord) bool { return rec.ProfessionalID == professionalID }), nil
}

func (r *LeadPurchaseRepository) filter(keep func(entities.LeadPurchaseRecord) bool) []entities.LeadPurchaseRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.LeadPurchaseRecord, 0)
	for _, rec := range r.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// PaymentRecordRepository is the in-memory payment store.
type PaymentRecordRepository struct {
	mu    sync.Mutex
	items map[string]entities.PaymentRecord
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordRepository)(nil)

func NewPaymentRecordRepository() *PaymentRecordRepository {
	return &PaymentRecordRepository{items: make(map[string]entities.PaymentRecord)}
}

func (r *PaymentRecordRepository) Create(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return entities.PaymentRecord{}, entities.ErrInvariantViolation
	}
	r.items[p.ID] = p
	return p, nil
}

func (r *PaymentRecordRepository) GetByID(_ context.Context, id string) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *PaymentRecordRepository) ListByReferenceID(_ context.Context, referenceID string) ([]entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.PaymentRecord, 0)
	for _, p := range r.items {
		if p.ReferenceID == referenceID {
			out = append(out, p)
		}
	}
	return out, nil
}
