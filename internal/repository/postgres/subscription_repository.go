package postgres

import (
	"context"
	"errors"
	"fmt"

	"glowSkincare/business/subscription"
	"glowSkincare/domain"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

var _ subscription.SubscriptionRepository = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

func (r *SubscriptionRepository) FindLatestByUser(ctx context.Context, userID uint) (domain.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return domain.Subscription{}, fmt.Errorf("context error: %w", err)
	}

	var sub domain.Subscription
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Order("id DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Subscription{}, fmt.Errorf("%w: subscription", domain.ErrNotFound)
		}
		return domain.Subscription{}, fmt.Errorf("failed to find subscription: %w", err)
	}

	return sub, nil
}

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, id uint, status domain.SubscriptionStatus) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Subscription{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: subscription", domain.ErrNotFound)
	}

	return nil
}
