package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/domain/pricing"
	"leadmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// IEstimateUseCase exposes the customer-side estimate operations: price a
// request, read it back, and convert the stored range for a display locale.
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, req entities.EstimateRequest) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	DisplayPrice(ctx context.Context, id, locale string) (entities.PriceRange, string, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	engine    *pricing.Engine
	converter *pricing.LocaleConverter
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, engine *pricing.Engine, converter *pricing.LocaleConverter) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, engine: engine, converter: converter}
}

// CreateEstimate prices the request and persists the resulting estimate with
// paid unset. Pricing errors (pricing.ErrInvalidRequest,
// pricing.ErrUnknownPackage) pass through to the caller.
func (u *EstimateUseCase) CreateEstimate(ctx context.Context, req entities.EstimateRequest) (entities.Estimate, error) {
	price, err := u.engine.CalculateEstimate(req)
	if err != nil {
		return entities.Estimate{}, err
	}

	e := entities.Estimate{
		ID:        uuid.NewString(),
		Request:   req,
		Price:     price,
		Paid:      false,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// DisplayPrice converts the stored base-currency range for a display locale
// and returns the range with its currency code. Unknown locales fall back to
// the base locale.
func (u *EstimateUseCase) DisplayPrice(ctx context.Context, id, locale string) (entities.PriceRange, string, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PriceRange{}, "", err
	}
	converted, currency := u.converter.Convert(e.Price, strings.TrimSpace(locale))
	return converted, currency, nil
}
