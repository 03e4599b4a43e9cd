package interfaces

import (
	"context"
	"leadmarket/internal/domain/entities"
)

// IJobListingRepository abstracts persistence for job listings and their
// lead slots.
//
// GrantSlot is the only mutation path for the occupant set. It must be an
// atomic check-and-insert per job: it fails with entities.ErrSlotsFull or
// entities.ErrAlreadyPurchased without touching the set, and two concurrent
// grants on the same job are strictly ordered. Grants on different jobs must
// not contend with each other.
type IJobListingRepository interface {
	Create(ctx context.Context, j entities.JobListing) (entities.JobListing, error)
	GetByID(ctx context.Context, id string) (entities.JobListing, error)
	// GetByEstimateID returns the listing backed by the estimate, or a
	// zero-value listing when none references it. An estimate backs at most
	// one listing.
	GetByEstimateID(ctx context.Context, estimateID string) (entities.JobListing, error)
	GrantSlot(ctx context.Context, jobID, professionalID string) (entities.JobListing, error)
}
