package request

import "encoding/json"

// PurchaseCreditPackageRequest buys a credit bundle. ProviderPayload is
// forwarded to the payment provider verbatim apart from the server-side
// amount; an absent payload is fine in mock mode.
type PurchaseCreditPackageRequest struct {
	PackageID       string          `json:"package_id" binding:"required"`
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
