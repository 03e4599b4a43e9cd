package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentKind distinguishes the two money-in flows.

type PaymentKind string

const (
	// PaymentKindEstimate confirms a customer's estimate payment and seals
	// the estimate's paid transition.
	PaymentKindEstimate PaymentKind = "estimate"
	// PaymentKindCreditPackage tops up a professional's credit balance.
	PaymentKindCreditPackage PaymentKind = "credit_package"
)

// PaymentRecord is a processed provider payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference_id-index): reference_id (estimate id or professional id)
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging. (Both are kept because provider schemas vary.)
type PaymentRecord struct {
	ID          string        `json:"id"`
	Kind        PaymentKind   `json:"kind"`
	ReferenceID string        `json:"reference_id"`
	PackageID   string        `json:"package_id,omitempty"`
	Amount      int64         `json:"amount"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
