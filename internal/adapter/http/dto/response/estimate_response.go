package response

import (
	"time"

	"leadmarket/internal/domain/entities"
)

type PriceRangeResponse struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type EstimateResponse struct {
	ID        string             `json:"id"`
	Price     PriceRangeResponse `json:"price"`
	Paid      bool               `json:"paid"`
	CreatedAt time.Time          `json:"created_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:        e.ID,
		Price:     PriceRangeResponse{Min: e.Price.Min, Max: e.Price.Max},
		Paid:      e.Paid,
		CreatedAt: e.CreatedAt,
	}
}

// DisplayPriceResponse is a locale-converted price range. Formatting (symbol,
// grouping) is the UI's concern; only the numbers and the currency code are
// returned.
type DisplayPriceResponse struct {
	EstimateID string             `json:"estimate_id"`
	Locale     string             `json:"locale"`
	Currency   string             `json:"currency"`
	Price      PriceRangeResponse `json:"price"`
}
