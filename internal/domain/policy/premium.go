// Package policy holds the marketplace tariff rules: lead costs per tier and
// the fixed credit grants. Everything here is pure so the purchase transaction
// can evaluate cost at purchase time, never from a cached quote.
package policy

import (
	"time"

	"leadmarket/internal/domain/entities"
)

const (
	// StandardLeadCost is the credits charged per lead at the standard tier.
	StandardLeadCost int64 = 6
	// PremiumLeadCost is the discounted charge while a premium subscription
	// is active.
	PremiumLeadCost int64 = 4

	// TrialCreditAmount is granted once per professional identity. Eligibility
	// is the caller's decision; this package only defines the amount.
	TrialCreditAmount int64 = 12
	// ReferralRewardAmount is granted per vetted referral.
	ReferralRewardAmount int64 = 6

	// EstimateFeeAmount is the base-currency fee a customer pays to unlock a
	// detailed estimate.
	EstimateFeeAmount int64 = 10
)

// LeadCost returns the credits to charge the professional for one lead at the
// given instant. Premium pricing applies only while the subscription is
// unexpired; an expired premium flag charges standard cost.
func LeadCost(p entities.Professional, now time.Time) int64 {
	if p.PremiumActiveAt(now) {
		return PremiumLeadCost
	}
	return StandardLeadCost
}

// CreditPackage is a purchasable credit bundle. PriceAmount is in whole
// base-currency units.
type CreditPackage struct {
	ID          string
	Name        string
	Credits     int64
	PriceAmount int64
}

// CreditPackages lists the bundles offered at checkout.
var CreditPackages = map[string]CreditPackage{
	"starter": {ID: "starter", Name: "Starter", Credits: 12, PriceAmount: 20},
	"trade":   {ID: "trade", Name: "Trade", Credits: 30, PriceAmount: 45},
	"pro":     {ID: "pro", Name: "Pro", Credits: 72, PriceAmount: 96},
}

// EstimatedLeads is the advisory "about N leads" figure shown next to a
// package. It is display text only and is never read by the ledger.
func EstimatedLeads(p CreditPackage) int64 {
	return p.Credits / StandardLeadCost
}
