package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glowSkincare/domain"
	"glowSkincare/pkg/logger"
	"glowSkincare/pkg/metrics"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// TierResolver returns the subscription tier of a user. User id 0 is anonymous.
type TierResolver interface {
	CurrentTier(ctx context.Context, userID uint) (domain.SubscriptionTier, error)
}

// ProfileReader reads the user's most recently submitted profile.
type ProfileReader interface {
	LatestProfile(ctx context.Context, userID uint) (domain.SkinProfile, error)
}

type RecommendService struct {
	engine      *Engine
	productRepo ProductRepository
	tiers       TierResolver
	profiles    ProfileReader
}

func NewRecommendService(
	engine *Engine,
	productRepo ProductRepository,
	tiers TierResolver,
	profiles ProfileReader,
) *RecommendService {
	return &RecommendService{
		engine:      engine,
		productRepo: productRepo,
		tiers:       tiers,
		profiles:    profiles,
	}
}

// Recommend fetches the catalog and the caller's tier, then ranks the
// catalog for profile.
func (s *RecommendService) Recommend(ctx context.Context, userID uint, profile domain.SkinProfile) (domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()

	tier := domain.NoSubscription
	if userID != 0 {
		t, err := s.tiers.CurrentTier(ctx, userID)
		if err != nil {
			logger.Error("failed to resolve subscription tier", err)
			return domain.RecommendationResult{}, err
		}
		tier = t
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load catalog", err)
		return domain.RecommendationResult{}, err
	}

	result, err := s.engine.Recommend(profile, tier, products)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			logger.Error("incomplete profile reached the ranker",
				"trace_id", TraceIDFromContext(ctx),
				"user_id", userID,
				"source", profile.Source,
				"missing", verr.Fields,
			)
		}
		return domain.RecommendationResult{}, err
	}

	metrics.RecommendTotal.WithLabelValues(string(effectiveLevel(tier)), string(profile.Source)).Inc()
	if len(result.Products) == 0 {
		metrics.RecommendEmpty.Inc()
	}

	logger.Debug("recommendation",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", userID,
		"tier", tier.Level,
		"status", tier.Status,
		"source", profile.Source,
		"catalog_size", len(products),
		"results", len(result.Products),
		"personalized", result.Personalized,
		"routine", result.Routine != nil,
	)

	return result, nil
}

// RecommendLatest recommends for the user's last stored profile.
func (s *RecommendService) RecommendLatest(ctx context.Context, userID uint) (domain.RecommendationResult, error) {
	if userID == 0 {
		return domain.RecommendationResult{}, domain.ErrUnauthenticated
	}

	profile, err := s.profiles.LatestProfile(ctx, userID)
	if err != nil {
		return domain.RecommendationResult{}, err
	}

	return s.Recommend(ctx, userID, profile)
}

func effectiveLevel(t domain.SubscriptionTier) domain.TierLevel {
	if !t.Active() {
		return domain.TierNone
	}
	return t.Level
}
