package interfaces

import (
	"context"
	"leadmarket/internal/domain/entities"
)

// ICreditRepository abstracts persistence for Professional credit balances.
//
// Debit and Credit are the only mutation paths for a balance and must be
// atomic per professional: Debit fails closed with
// entities.ErrInsufficientCredits and leaves the balance untouched when the
// amount exceeds it. Lookups return a zero-value Professional (nil error)
// when the id is unknown.
type ICreditRepository interface {
	Create(ctx context.Context, p entities.Professional) (entities.Professional, error)
	GetByID(ctx context.Context, id string) (entities.Professional, error)
	Debit(ctx context.Context, id string, amount int64) (entities.Professional, error)
	Credit(ctx context.Context, id string, amount int64) (entities.Professional, error)
}
