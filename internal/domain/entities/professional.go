package entities

import "time"

// Professional is a trade professional who buys leads with credits.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CreditBalance is a whole-credit count, never negative, mutated only through
// ICreditRepository.Debit/Credit. Reads of the balance are snapshots and may
// be stale by the time a caller acts on them; the debit's own guard is the
// authoritative check.
type Professional struct {
	ID               string     `json:"id"`
	CreditBalance    int64      `json:"credit_balance"`
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// PremiumActiveAt reports whether the premium discount applies at the given
// instant. Expiry at the exact instant does not count as active.
func (p Professional) PremiumActiveAt(now time.Time) bool {
	return p.IsPremium && p.PremiumExpiresAt != nil && p.PremiumExpiresAt.After(now)
}
