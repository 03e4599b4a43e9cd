package request

import "time"

// RegisterProfessionalRequest creates a professional with an empty balance.
// Premium fields are set by the subscription flow owner; they are accepted
// here because registration is the only write path for them in this engine.
type RegisterProfessionalRequest struct {
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at"`
}
