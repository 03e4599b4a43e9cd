package policy

import (
	"testing"
	"time"

	"leadmarket/internal/domain/entities"
)

func TestLeadCost(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("standard professional pays standard cost", func(t *testing.T) {
		p := entities.Professional{ID: "p1"}
		if got := LeadCost(p, now); got != StandardLeadCost {
			t.Fatalf("expected %d, got %d", StandardLeadCost, got)
		}
	})

	t.Run("active premium pays discounted cost", func(t *testing.T) {
		exp := now.Add(24 * time.Hour)
		p := entities.Professional{ID: "p1", IsPremium: true, PremiumExpiresAt: &exp}
		if got := LeadCost(p, now); got != PremiumLeadCost {
			t.Fatalf("expected %d, got %d", PremiumLeadCost, got)
		}
	})

	t.Run("expired premium pays standard cost", func(t *testing.T) {
		exp := now.Add(-time.Minute)
		p := entities.Professional{ID: "p1", IsPremium: true, PremiumExpiresAt: &exp}
		if got := LeadCost(p, now); got != StandardLeadCost {
			t.Fatalf("expected %d, got %d", StandardLeadCost, got)
		}
	})

	t.Run("expiry at the exact instant is not active", func(t *testing.T) {
		exp := now
		p := entities.Professional{ID: "p1", IsPremium: true, PremiumExpiresAt: &exp}
		if got := LeadCost(p, now); got != StandardLeadCost {
			t.Fatalf("expected %d, got %d", StandardLeadCost, got)
		}
	})

	t.Run("premium flag without expiry pays standard cost", func(t *testing.T) {
		p := entities.Professional{ID: "p1", IsPremium: true}
		if got := LeadCost(p, now); got != StandardLeadCost {
			t.Fatalf("expected %d, got %d", StandardLeadCost, got)
		}
	})
}

func TestEstimatedLeads(t *testing.T) {
	cases := map[string]int64{
		"starter": 2,
		"trade":   5,
		"pro":     12,
	}
	for id, want := range cases {
		pkg, ok := CreditPackages[id]
		if !ok {
			t.Fatalf("missing package %s", id)
		}
		if got := EstimatedLeads(pkg); got != want {
			t.Fatalf("package %s: expected %d estimated leads, got %d", id, want, got)
		}
	}
}
