package interfaces

import (
	"context"
	"leadmarket/internal/domain/entities"
)

// ILeadPurchaseRepository is the append-only audit trail of lead sales.
type ILeadPurchaseRepository interface {
	Append(ctx context.Context, r entities.LeadPurchaseRecord) (entities.LeadPurchaseRecord, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.LeadPurchaseRecord, error)
	ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.LeadPurchaseRecord, error)
}
