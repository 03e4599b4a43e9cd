// Package memory implements the repository interfaces over in-process maps.
//
// It backs the STORAGE=memory local mode and the concurrency test suite. The
// locking discipline mirrors what DynamoDB gives the production repositories:
// one lock per entity, so operations on different professionals or different
// jobs never contend, while operations on the same entity are strictly
// ordered.
package memory

import (
	"context"
	"sync"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase/interfaces"
)

type creditEntry struct {
	mu   sync.Mutex
	prof entities.Professional
}

// CreditRepository holds professional balances guarded per professional.
type CreditRepository struct {
	mu      sync.RWMutex
	entries map[string]*creditEntry
}

var _ interfaces.ICreditRepository = (*CreditRepository)(nil)

func NewCreditRepository() *CreditRepository {
	return &CreditRepository{entries: make(map[string]*creditEntry)}
}

func (r *CreditRepository) Create(_ context.Context, p entities.Professional) (entities.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[p.ID]; ok {
		return entities.Professional{}, entities.ErrInvariantViolation
	}
	r.entries[p.ID] = &creditEntry{prof: p}
	return p, nil
}

func (r *CreditRepository) GetByID(_ context.Context, id string) (entities.Professional, error) {
	e := r.entry(id)
	if e == nil {
		return entities.Professional{}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prof, nil
}

func (r *CreditRepository) Debit(_ context.Context, id string, amount int64) (entities.Professional, error) {
	e := r.entry(id)
	if e == nil {
		return entities.Professional{}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.prof.CreditBalance < amount {
		return entities.Professional{}, entities.ErrInsufficientCredits
	}
	e.prof.CreditBalance -= amount
	return e.prof, nil
}

func (r *CreditRepository) Credit(_ context.Context, id string, amount int64) (entities.Professional, error) {
	e := r.entry(id)
	if e == nil {
		return entities.Professional{}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prof.CreditBalance += amount
	return e.prof, nil
}

func (r *CreditRepository) entry(id string) *creditEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[id]
}
