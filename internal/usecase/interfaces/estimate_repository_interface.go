package interfaces

import (
	"context"
	"leadmarket/internal/domain/entities"
)

// IEstimateRepository abstracts persistence for estimates.
//
// MarkPaid is the sealed paid transition: it only flips paid from false to
// true and fails with entities.ErrEstimateAlreadyPaid on a repeat. It is
// called exclusively by the payment flow after gateway approval.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	MarkPaid(ctx context.Context, id string) (entities.Estimate, error)
}
