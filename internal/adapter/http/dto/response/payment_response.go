package response

import (
	"time"

	"leadmarket/internal/domain/entities"
)

type PaymentResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	ReferenceID string    `json:"reference_id"`
	PackageID   string    `json:"package_id,omitempty"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	// NewBalance is set on credit package purchases only.
	NewBalance *int64 `json:"new_balance,omitempty"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		Kind:        string(p.Kind),
		ReferenceID: p.ReferenceID,
		PackageID:   p.PackageID,
		Amount:      p.Amount,
		Date:        p.Date,
		Status:      string(p.Status),
	}
}

func FromCreditPackagePurchase(p entities.PaymentRecord, newBalance int64) PaymentResponse {
	resp := FromPaymentRecord(p)
	resp.NewBalance = &newBalance
	return resp
}
