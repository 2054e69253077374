package recommend

import (
	"cmp"
	"fmt"
	"slices"

	"glowSkincare/business/catalog"
	"glowSkincare/domain"
)

const (
	SummaryPersonalized = "Based on your personalized analysis, here are the best products for your %s skin."
	SummaryGeneral      = "Here are some general skincare recommendations. Upgrade to Premium for personalized analysis!"
	SummaryNoMatches    = "No products match your skin profile yet. Try again later or clear your filters to browse the full catalog."
)

// Engine ranks a catalog for a profile under a subscription tier.
type Engine struct {
	gate Gate
	cfg  Config
}

func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		gate: NewGate(cfg.StandardDepth, cfg.PremiumDepth),
		cfg:  cfg,
	}
}

func (e *Engine) Decide(tier domain.SubscriptionTier) GateDecision {
	return e.gate.Decide(tier)
}

// Recommend decides the gate once for tier and ranks the catalog with it.
func (e *Engine) Recommend(profile domain.SkinProfile, tier domain.SubscriptionTier, products []domain.Product) (domain.RecommendationResult, error) {
	return Rank(profile, e.gate.Decide(tier), products, e.cfg.RoutineRules, e.cfg.RoutineSize)
}

// Rank filters products for the profile, orders them by rating then review
// count (ties keep catalog order), truncates to the decision's depth and
// attaches a routine when the decision includes one.
//
// An incomplete profile is returned as a *domain.ValidationError. Products
// or profiles holding values outside their domain panic.
func Rank(profile domain.SkinProfile, decision GateDecision, products []domain.Product, rules []RoutineRule, routineSize int) (domain.RecommendationResult, error) {
	if missing := profile.MissingFields(); len(missing) > 0 {
		return domain.RecommendationResult{}, &domain.ValidationError{Fields: missing, Reason: "incomplete skin profile"}
	}
	mustBeValidProfile(profile)
	for _, p := range products {
		mustBeValidProduct(p)
	}

	// face-scan profiles have no goal, so only skin type narrows them
	ranked := catalog.Filter(products, catalog.Criteria{
		SkinType: profile.SkinType,
		Goal:     profile.SkincareGoal,
	})

	result := domain.RecommendationResult{
		Personalized: decision.Personalized,
		Products:     []domain.Product{},
	}

	if len(ranked) == 0 {
		result.Summary = SummaryNoMatches
		return result, nil
	}

	slices.SortStableFunc(ranked, func(a, b domain.Product) int {
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return cmp.Compare(b.ReviewsCount, a.ReviewsCount)
	})

	if decision.ProductDepth > 0 && len(ranked) > decision.ProductDepth {
		ranked = ranked[:decision.ProductDepth]
	}
	result.Products = ranked

	if decision.IncludeRoutine {
		result.Routine = buildRoutine(ranked, rules, routineSize)
	}

	if decision.Personalized {
		result.Summary = fmt.Sprintf(SummaryPersonalized, lowerFirst(string(profile.SkinType)))
	} else {
		result.Summary = SummaryGeneral
	}

	return result, nil
}

func mustBeValidProfile(p domain.SkinProfile) {
	if !p.SkinType.Valid() {
		panic(fmt.Sprintf("recommend: profile skin type %q is not a skin type", p.SkinType))
	}
	for _, c := range p.MainConcerns {
		if !c.Valid() {
			panic(fmt.Sprintf("recommend: profile concern %q is not a concern", c))
		}
	}
	if p.AgeGroup != "" && !p.AgeGroup.Valid() {
		panic(fmt.Sprintf("recommend: profile age group %q is not an age group", p.AgeGroup))
	}
	if p.SkincareGoal != "" && !p.SkincareGoal.Valid() {
		panic(fmt.Sprintf("recommend: profile goal %q is not a skincare goal", p.SkincareGoal))
	}
	if p.DetectedSkinTone != nil && !p.DetectedSkinTone.Valid() {
		panic(fmt.Sprintf("recommend: profile skin tone %q is not a skin tone", *p.DetectedSkinTone))
	}
	if p.Confidence != nil && (*p.Confidence < 0 || *p.Confidence > 1) {
		panic(fmt.Sprintf("recommend: profile confidence %v outside [0,1]", *p.Confidence))
	}
}

func mustBeValidProduct(p domain.Product) {
	if p.Rating < 0 || p.Rating > 5 {
		panic(fmt.Sprintf("recommend: product %s rating %v outside [0,5]", p.ID, p.Rating))
	}
	if p.ReviewsCount < 0 {
		panic(fmt.Sprintf("recommend: product %s has negative reviews count %d", p.ID, p.ReviewsCount))
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
