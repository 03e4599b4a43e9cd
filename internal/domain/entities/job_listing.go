package entities

import "time"

// TradeCategory identifies the trade a job listing belongs to.

type TradeCategory string

const (
	TradeCategoryPainting   TradeCategory = "painting"
	TradeCategoryPlastering TradeCategory = "plastering"
	TradeCategoryFlooring   TradeCategory = "flooring"
	TradeCategoryTiling     TradeCategory = "tiling"
	TradeCategoryCarpentry  TradeCategory = "carpentry"
)

// JobStatus is derived from slot occupancy. Open -> Full is one-way; a listing
// never reopens and is never deleted (kept for history).

type JobStatus string

const (
	JobStatusOpen JobStatus = "open"
	JobStatusFull JobStatus = "full"
)

// DefaultMaxSlots is the number of professionals who may unlock contact
// details for one listing.
const DefaultMaxSlots = 4

// JobListing is a customer's posted job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - occupants: string set, mutated only through IJobListingRepository.GrantSlot
//
// Invariant: len(Occupants) <= MaxSlots and no professional id appears twice.
type JobListing struct {
	ID              string        `json:"id"`
	OwnerCustomerID string        `json:"owner_customer_id"`
	TradeCategory   TradeCategory `json:"trade_category"`
	EstimateID      string        `json:"estimate_id,omitempty"`
	Postcode        string        `json:"postcode"`
	MaxSlots        int           `json:"max_slots"`
	Occupants       []string      `json:"occupants"`
	PostedAt        time.Time     `json:"posted_at"`
}

// Full reports whether every slot has been sold.
func (j JobListing) Full() bool {
	return len(j.Occupants) >= j.MaxSlots
}

// HasOccupant reports whether the professional already holds a slot.
func (j JobListing) HasOccupant(professionalID string) bool {
	for _, id := range j.Occupants {
		if id == professionalID {
			return true
		}
	}
	return false
}

// Status derives the listing state from occupancy.
func (j JobListing) Status() JobStatus {
	if j.Full() {
		return JobStatusFull
	}
	return JobStatusOpen
}

// LeadPurchaseRecord is the append-only audit trail of slot sales: one record
// per successful purchase, used to reconstruct ledger history.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//   - GSI2 (professional_id-index): professional_id
type LeadPurchaseRecord struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	ProfessionalID string    `json:"professional_id"`
	CreditsCharged int64     `json:"credits_charged"`
	PurchasedAt    time.Time `json:"purchased_at"`
}
