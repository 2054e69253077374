package postgres

import (
	"context"
	"errors"
	"fmt"

	"glowSkincare/business/profile"
	"glowSkincare/domain"

	"gorm.io/gorm"
)

type SkinProfileRepository struct {
	DB *gorm.DB
}

var _ profile.SkinProfileRepository = (*SkinProfileRepository)(nil)

func NewSkinProfileRepository(db *gorm.DB) *SkinProfileRepository {
	return &SkinProfileRepository{DB: db}
}

func (r *SkinProfileRepository) Create(ctx context.Context, record *domain.SkinProfileRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create skin profile: %w", err)
	}

	return nil
}

func (r *SkinProfileRepository) FindLatestByUser(ctx context.Context, userID uint) (domain.SkinProfileRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.SkinProfileRecord{}, fmt.Errorf("context error: %w", err)
	}

	var record domain.SkinProfileRecord
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SkinProfileRecord{}, fmt.Errorf("%w: skin profile", domain.ErrNotFound)
		}
		return domain.SkinProfileRecord{}, fmt.Errorf("failed to find skin profile: %w", err)
	}

	return record, nil
}

func (r *SkinProfileRepository) FindAllByUser(ctx context.Context, userID uint) ([]domain.SkinProfileRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.SkinProfileRecord
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find skin profiles: %w", err)
	}

	return records, nil
}
