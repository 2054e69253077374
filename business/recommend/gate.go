package recommend

import (
	"fmt"

	"glowSkincare/domain"
)

// GateDecision shapes how rich a recommendation is for a subscription tier.
type GateDecision struct {
	Personalized   bool `json:"personalized"`
	IncludeRoutine bool `json:"include_routine"`
	ProductDepth   int  `json:"product_depth"`
}

// Gate is the decision table from tier level to GateDecision.
type Gate struct {
	table map[domain.TierLevel]GateDecision
}

func NewGate(standardDepth, premiumDepth int) Gate {
	return Gate{
		table: map[domain.TierLevel]GateDecision{
			domain.TierNone:     {Personalized: false, IncludeRoutine: false, ProductDepth: 1},
			domain.TierStandard: {Personalized: true, IncludeRoutine: false, ProductDepth: standardDepth},
			domain.TierPremium:  {Personalized: true, IncludeRoutine: true, ProductDepth: premiumDepth},
		},
	}
}

// Decide returns the row for tier. Cancelled and expired subscriptions get
// the same row as no subscription. An unknown level panics.
func (g Gate) Decide(tier domain.SubscriptionTier) GateDecision {
	level := tier.Level
	if !tier.Active() {
		level = domain.TierNone
	}

	d, ok := g.table[level]
	if !ok {
		panic(fmt.Sprintf("recommend: no gate decision for tier %q", tier.Level))
	}
	return d
}
