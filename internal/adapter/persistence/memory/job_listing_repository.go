package memory

import (
	"context"
	"sync"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase/interfaces"
)

type jobEntry struct {
	mu  sync.Mutex
	job entities.JobListing
}

// JobListingRepository holds listings guarded per job, so two purchases
// racing for the same job's last slot are serialized while purchases on
// different jobs run independently.
type JobListingRepository struct {
	mu      sync.RWMutex
	entries map[string]*jobEntry
}

var _ interfaces.IJobListingRepository = (*JobListingRepository)(nil)

func NewJobListingRepository() *JobListingRepository {
	return &JobListingRepository{entries: make(map[string]*jobEntry)}
}

func (r *JobListingRepository) Create(_ context.Context, j entities.JobListing) (entities.JobListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[j.ID]; ok {
		return entities.JobListing{}, entities.ErrInvariantViolation
	}
	r.entries[j.ID] = &jobEntry{job: copyJob(j)}
	return j, nil
}

func (r *JobListingRepository) GetByID(_ context.Context, id string) (entities.JobListing, error) {
	e := r.entry(id)
	if e == nil {
		return entities.JobListing{}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyJob(e.job), nil
}

func (r *JobListingRepository) GetByEstimateID(_ context.Context, estimateID string) (entities.JobListing, error) {
	if estimateID == "" {
		return entities.JobListing{}, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		e.mu.Lock()
		j := e.job
		e.mu.Unlock()
		if j.EstimateID == estimateID {
			return copyJob(j), nil
		}
	}
	return entities.JobListing{}, nil
}

// GrantSlot re-checks the duplicate and slot-count rules under the job's own
// lock, making the check and the insert one atomic step.
func (r *JobListingRepository) GrantSlot(_ context.Context, jobID, professionalID string) (entities.JobListing, error) {
	e := r.entry(jobID)
	if e == nil {
		return entities.JobListing{}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.job.HasOccupant(professionalID) {
		return entities.JobListing{}, entities.ErrAlreadyPurchased
	}
	if e.job.Full() {
		return entities.JobListing{}, entities.ErrSlotsFull
	}
	e.job.Occupants = append(e.job.Occupants, professionalID)
	return copyJob(e.job), nil
}

func (r *JobListingRepository) entry(id string) *jobEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[id]
}

func copyJob(j entities.JobListing) entities.JobListing {
	out := j
	out.Occupants = append([]string(nil), j.Occupants...)
	return out
}
