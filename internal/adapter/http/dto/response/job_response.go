package response

import (
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase"
)

type JobListingResponse struct {
	ID              string    `json:"id"`
	OwnerCustomerID string    `json:"owner_customer_id"`
	TradeCategory   string    `json:"trade_category"`
	EstimateID      string    `json:"estimate_id,omitempty"`
	Postcode        string    `json:"postcode"`
	Status          string    `json:"status"`
	SlotsTaken      int       `json:"slots_taken"`
	MaxSlots        int       `json:"max_slots"`
	PostedAt        time.Time `json:"posted_at"`
}

func FromJobListing(j entities.JobListing) JobListingResponse {
	return JobListingResponse{
		ID:              j.ID,
		OwnerCustomerID: j.OwnerCustomerID,
		TradeCategory:   string(j.TradeCategory),
		EstimateID:      j.EstimateID,
		Postcode:        j.Postcode,
		Status:          string(j.Status()),
		SlotsTaken:      len(j.Occupants),
		MaxSlots:        j.MaxSlots,
		PostedAt:        j.PostedAt,
	}
}

type LeadPurchaseResponse struct {
	JobID          string    `json:"job_id"`
	ProfessionalID string    `json:"professional_id"`
	CreditsCharged int64     `json:"credits_charged"`
	NewBalance     int64     `json:"new_balance"`
	SlotsTaken     int       `json:"slots_taken"`
	MaxSlots       int       `json:"max_slots"`
	PurchasedAt    time.Time `json:"purchased_at"`
}

func FromLeadPurchase(p usecase.LeadPurchase) LeadPurchaseResponse {
	return LeadPurchaseResponse{
		JobID:          p.Record.JobID,
		ProfessionalID: p.Record.ProfessionalID,
		CreditsCharged: p.Record.CreditsCharged,
		NewBalance:     p.NewBalance,
		SlotsTaken:     len(p.Job.Occupants),
		MaxSlots:       p.Job.MaxSlots,
		PurchasedAt:    p.Record.PurchasedAt,
	}
}
