package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glowSkincare/domain"
	"glowSkincare/pkg/logger"
)

// SubscriptionRepository contract interface
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	FindLatestByUser(ctx context.Context, userID uint) (domain.Subscription, error)
	UpdateStatus(ctx context.Context, id uint, status domain.SubscriptionStatus) error
}

// Plans are the purchasable plans, prices in KSh.
var Plans = []domain.Plan{
	{
		ID:           domain.TierStandard,
		Name:         "Standard",
		MonthlyPrice: 300,
		DailyPrice:   35,
		Features: []string{
			"Basic skin analysis",
			"General product recommendations",
			"Basic skincare tips",
			"Email support",
		},
	},
	{
		ID:           domain.TierPremium,
		Name:         "Premium",
		MonthlyPrice: 500,
		DailyPrice:   55,
		Popular:      true,
		Features: []string{
			"Advanced AI skin analysis",
			"Personalized skincare routines",
			"Custom product recommendations",
			"Daily routine tracking",
			"Priority support",
			"Exclusive product discounts",
			"Weekly skin progress reports",
		},
	},
}

type subscriptionService struct {
	subRepo SubscriptionRepository
	now     func() time.Time
}

func NewSubscriptionService(subRepo SubscriptionRepository) *subscriptionService {
	return &subscriptionService{
		subRepo: subRepo,
		now:     time.Now,
	}
}

func (s *subscriptionService) Plans() []domain.Plan {
	return Plans
}

func findPlan(id domain.TierLevel) (domain.Plan, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Plan{}, false
}

// CurrentTier resolves the tier the recommendation engine should use.
// Users without a subscription get domain.NoSubscription.
func (s *subscriptionService) CurrentTier(ctx context.Context, userID uint) (domain.SubscriptionTier, error) {
	sub, err := s.Current(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NoSubscription, nil
		}
		return domain.SubscriptionTier{}, err
	}

	return sub.Tier(s.now()), nil
}

// Current returns the user's latest subscription with its status resolved
// against the current time.
func (s *subscriptionService) Current(ctx context.Context, userID uint) (domain.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return domain.Subscription{}, fmt.Errorf("context error: %w", err)
	}

	sub, err := s.subRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to find subscription", err)
		}
		return domain.Subscription{}, err
	}

	sub.Status = sub.Tier(s.now()).Status
	return sub, nil
}

// Subscribe starts a new plan for the user, cancelling any active one.
// Payment is assumed to have succeeded.
func (s *subscriptionService) Subscribe(ctx context.Context, userID uint, planID domain.TierLevel, period domain.BillingPeriod, method domain.PaymentMethod) (domain.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return domain.Subscription{}, fmt.Errorf("context error: %w", err)
	}

	plan, ok := findPlan(planID)
	if !ok {
		return domain.Subscription{}, fmt.Errorf("%w: unknown plan %q", domain.ErrInvalidOption, planID)
	}
	if period != domain.PeriodDaily && period != domain.PeriodMonthly {
		return domain.Subscription{}, fmt.Errorf("%w: unknown billing period %q", domain.ErrInvalidOption, period)
	}
	if method != domain.PaymentMpesa && method != domain.PaymentCard {
		return domain.Subscription{}, fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidOption, method)
	}

	if current, err := s.Current(ctx, userID); err == nil && current.Status == domain.StatusActive {
		if err := s.subRepo.UpdateStatus(ctx, current.ID, domain.StatusCancelled); err != nil {
			logger.Error("failed to cancel previous subscription", err)
			return domain.Subscription{}, err
		}
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Subscription{}, err
	}

	start := s.now()
	end := start.AddDate(0, 1, 0)
	if period == domain.PeriodDaily {
		end = start.AddDate(0, 0, 1)
	}

	sub := domain.Subscription{
		UserID:        userID,
		Plan:          plan.ID,
		Price:         plan.Price(period),
		Period:        period,
		Status:        domain.StatusActive,
		PaymentMethod: method,
		StartDate:     start,
		EndDate:       end,
	}

	if err := s.subRepo.Create(ctx, &sub); err != nil {
		logger.Error("failed to create subscription", err)
		return domain.Subscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}

	logger.Info("subscription started", "user_id", userID, "plan", plan.ID, "period", period)

	return sub, nil
}

func (s *subscriptionService) Cancel(ctx context.Context, userID uint) (domain.Subscription, error) {
	sub, err := s.Current(ctx, userID)
	if err != nil {
		return domain.Subscription{}, err
	}

	if sub.Status != domain.StatusActive {
		return domain.Subscription{}, fmt.Errorf("%w: no active subscription", domain.ErrNotFound)
	}

	if err := s.subRepo.UpdateStatus(ctx, sub.ID, domain.StatusCancelled); err != nil {
		logger.Error("failed to cancel subscription", err)
		return domain.Subscription{}, err
	}

	sub.Status = domain.StatusCancelled
	logger.Info("subscription cancelled", "user_id", userID, "plan", sub.Plan)

	return sub, nil
}
