package request

import (
	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase"
)

// PostJobRequest is the customer-facing job posting payload.
type PostJobRequest struct {
	OwnerCustomerID string `json:"owner_customer_id" binding:"required"`
	TradeCategory   string `json:"trade_category" binding:"required"`
	EstimateID      string `json:"estimate_id"`
	Postcode        string `json:"postcode" binding:"required"`
}

func (r PostJobRequest) ToCommand() usecase.PostJobCommand {
	return usecase.PostJobCommand{
		OwnerCustomerID: r.OwnerCustomerID,
		TradeCategory:   entities.TradeCategory(r.TradeCategory),
		EstimateID:      r.EstimateID,
		Postcode:        r.Postcode,
	}
}

// PurchaseLeadRequest identifies the professional buying a slot.
type PurchaseLeadRequest struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
}
