package response

import (
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/domain/policy"
)

type ProfessionalResponse struct {
	ID               string     `json:"id"`
	CreditBalance    int64      `json:"credit_balance"`
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromProfessional(p entities.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ID:               p.ID,
		CreditBalance:    p.CreditBalance,
		IsPremium:        p.IsPremium,
		PremiumExpiresAt: p.PremiumExpiresAt,
		CreatedAt:        p.CreatedAt,
	}
}

type BalanceResponse struct {
	ProfessionalID string `json:"professional_id"`
	CreditBalance  int64  `json:"credit_balance"`
}

// CreditPackageResponse lists a purchasable bundle. EstimatedLeads is
// advisory display text derived from the standard lead cost; the ledger
// never reads it.
type CreditPackageResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Credits        int64  `json:"credits"`
	PriceAmount    int64  `json:"price_amount"`
	EstimatedLeads int64  `json:"estimated_leads"`
}

func FromCreditPackage(p policy.CreditPackage) CreditPackageResponse {
	return CreditPackageResponse{
		ID:             p.ID,
		Name:           p.Name,
		Credits:        p.Credits,
		PriceAmount:    p.PriceAmount,
		EstimatedLeads: policy.EstimatedLeads(p),
	}
}
