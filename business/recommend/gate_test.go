//go:build !integration

package recommend

import (
	"testing"

	"glowSkincare/domain"
)

func TestGate_Decide(t *testing.T) {
	g := NewGate(3, 6)

	tests := []struct {
		tier domain.SubscriptionTier
		want GateDecision
	}{
		{domain.SubscriptionTier{Level: domain.TierNone, Status: domain.StatusActive}, GateDecision{false, false, 1}},
		{domain.SubscriptionTier{Level: domain.TierStandard, Status: domain.StatusActive}, GateDecision{true, false, 3}},
		{domain.SubscriptionTier{Level: domain.TierPremium, Status: domain.StatusActive}, GateDecision{true, true, 6}},
	}

	for _, tt := range tests {
		if got := g.Decide(tt.tier); got != tt.want {
			t.Errorf("Decide(%+v) = %+v, want %+v", tt.tier, got, tt.want)
		}
	}
}

func TestGate_InactiveStatusIsNone(t *testing.T) {
	g := NewGate(3, 6)
	none := g.Decide(domain.NoSubscription)

	for _, level := range []domain.TierLevel{domain.TierNone, domain.TierStandard, domain.TierPremium} {
		for _, status := range []domain.SubscriptionStatus{domain.StatusCancelled, domain.StatusExpired} {
			got := g.Decide(domain.SubscriptionTier{Level: level, Status: status})
			if got != none {
				t.Errorf("Decide(%s, %s) = %+v, want %+v", level, status, got, none)
			}
			if got.Personalized {
				t.Errorf("Decide(%s, %s) is personalized", level, status)
			}
		}
	}
}

func TestGate_EveryLevelHasARow(t *testing.T) {
	g := NewGate(2, 2)
	for _, level := range []domain.TierLevel{domain.TierNone, domain.TierStandard, domain.TierPremium} {
		if _, ok := g.table[level]; !ok {
			t.Errorf("no decision for %s", level)
		}
	}
	for level, d := range g.table {
		if level != domain.TierNone && d.ProductDepth < minPaidDepth {
			t.Errorf("%s depth %d below %d", level, d.ProductDepth, minPaidDepth)
		}
	}
}

func TestGate_UnknownLevelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Decide() with unknown level did not panic")
		}
	}()
	NewGate(3, 6).Decide(domain.SubscriptionTier{Level: "gold", Status: domain.StatusActive})
}

func TestEngine_DepthsNeverBelowMinimum(t *testing.T) {
	e := NewEngine(Config{StandardDepth: 1, PremiumDepth: -4})

	if d := e.Decide(domain.SubscriptionTier{Level: domain.TierStandard, Status: domain.StatusActive}); d.ProductDepth != minPaidDepth {
		t.Errorf("standard depth = %d, want %d", d.ProductDepth, minPaidDepth)
	}
	if d := e.Decide(domain.SubscriptionTier{Level: domain.TierPremium, Status: domain.StatusActive}); d.ProductDepth != minPaidDepth {
		t.Errorf("premium depth = %d, want %d", d.ProductDepth, minPaidDepth)
	}
}
