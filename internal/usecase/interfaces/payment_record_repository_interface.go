package interfaces

import (
	"context"
	"leadmarket/internal/domain/entities"
)

// IPaymentRecordRepository abstracts persistence for processed provider
// payments.
type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByReferenceID(ctx context.Context, referenceID string) ([]entities.PaymentRecord, error)
}
