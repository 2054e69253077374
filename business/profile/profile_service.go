package profile

import (
	"context"
	"errors"
	"fmt"

	"glowSkincare/domain"
	"glowSkincare/pkg/logger"
	"glowSkincare/pkg/metrics"
)

// SkinProfileRepository contract interface
type SkinProfileRepository interface {
	Create(ctx context.Context, record *domain.SkinProfileRecord) error
	FindLatestByUser(ctx context.Context, userID uint) (domain.SkinProfileRecord, error)
	FindAllByUser(ctx context.Context, userID uint) ([]domain.SkinProfileRecord, error)
}

// Analyzer is the image pipeline that estimates tone and type from a face photo.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte) (domain.FaceScanEstimate, error)
}

// ScanResult is the estimate returned to the client for review, with the
// sealed token it must send back on confirmation.
type ScanResult struct {
	Estimate       domain.FaceScanEstimate `json:"estimate"`
	HighConfidence bool                    `json:"high_confidence"`
	ScanToken      string                  `json:"scan_token"`
}

type profileService struct {
	profileRepo SkinProfileRepository
	analyzer    Analyzer
	sealer      *ScanSealer
}

func NewProfileService(profileRepo SkinProfileRepository, analyzer Analyzer, sealer *ScanSealer) *profileService {
	return &profileService{
		profileRepo: profileRepo,
		analyzer:    analyzer,
		sealer:      sealer,
	}
}

// SubmitQuestionnaire normalizes a questionnaire profile and, for a signed-in
// user, appends it to their profile history.
func (s *profileService) SubmitQuestionnaire(ctx context.Context, userID uint, partial domain.SkinProfile) (domain.SkinProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.SkinProfile{}, fmt.Errorf("context error: %w", err)
	}

	p, err := NormalizeQuestionnaire(partial)
	if err != nil {
		logger.Warn("questionnaire profile rejected", err)
		return domain.SkinProfile{}, err
	}

	if err := s.save(ctx, userID, p); err != nil {
		return domain.SkinProfile{}, err
	}

	return p, nil
}

// AnalyzeFace runs the image pipeline and seals the estimate for confirmation.
func (s *profileService) AnalyzeFace(ctx context.Context, image []byte) (ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return ScanResult{}, fmt.Errorf("context error: %w", err)
	}

	if len(image) == 0 {
		return ScanResult{}, &domain.ValidationError{Fields: []string{"image"}, Reason: "face image is required"}
	}

	estimate, err := s.analyzer.Analyze(ctx, image)
	if err == nil {
		err = validateEstimate(estimate)
	}
	if err != nil {
		metrics.FaceScanAnalyses.WithLabelValues("failed").Inc()
		logger.Error("face analysis failed", err)
		if errors.Is(err, domain.ErrAnalysisFailed) {
			return ScanResult{}, err
		}
		return ScanResult{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}

	token, err := s.sealer.Seal(estimate)
	if err != nil {
		logger.Error("failed to seal face scan estimate", err)
		return ScanResult{}, err
	}

	metrics.FaceScanAnalyses.WithLabelValues("succeeded").Inc()
	logger.Info("face analysis completed", "skin_type", estimate.SkinType, "skin_tone", estimate.SkinTone, "confidence", estimate.Confidence)

	return ScanResult{
		Estimate:       estimate,
		HighConfidence: estimate.HighConfidence(),
		ScanToken:      token,
	}, nil
}

// ConfirmFaceScan applies the user's corrections to a sealed estimate and
// stores the resulting profile.
func (s *profileService) ConfirmFaceScan(ctx context.Context, userID uint, scanToken string, overrides domain.FaceScanOverrides) (domain.SkinProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.SkinProfile{}, fmt.Errorf("context error: %w", err)
	}

	estimate, err := s.sealer.Open(scanToken)
	if err != nil {
		logger.Warn("face scan confirmation with invalid token", err)
		return domain.SkinProfile{}, err
	}

	p, err := SubmitFaceScan(estimate, overrides)
	if err != nil {
		logger.Warn("face scan overrides rejected", err)
		return domain.SkinProfile{}, err
	}

	if err := s.save(ctx, userID, p); err != nil {
		return domain.SkinProfile{}, err
	}

	return p, nil
}

func (s *profileService) LatestProfile(ctx context.Context, userID uint) (domain.SkinProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.SkinProfile{}, fmt.Errorf("context error: %w", err)
	}

	record, err := s.profileRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to find latest skin profile", err)
		}
		return domain.SkinProfile{}, err
	}

	return record.Profile(), nil
}

func (s *profileService) History(ctx context.Context, userID uint) ([]domain.SkinProfileRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	records, err := s.profileRepo.FindAllByUser(ctx, userID)
	if err != nil {
		logger.Error("failed to find skin profile history", err)
		return nil, err
	}

	return records, nil
}

// save is a no-op for anonymous users.
func (s *profileService) save(ctx context.Context, userID uint, p domain.SkinProfile) error {
	if userID == 0 {
		return nil
	}

	record := domain.NewSkinProfileRecord(userID, p)
	if err := s.profileRepo.Create(ctx, &record); err != nil {
		logger.Error("failed to save skin profile", err)
		return fmt.Errorf("failed to save skin profile: %w", err)
	}

	logger.Info("skin profile saved", "user_id", userID, "source", p.Source)
	return nil
}
