package profile

import (
	"fmt"

	"glowSkincare/domain"
)

// NormalizeQuestionnaire turns the answers emitted by a submitted
// questionnaire into a canonical profile. Concerns are de-duplicated keeping
// first-selection order; face-scan fields are dropped.
func NormalizeQuestionnaire(partial domain.SkinProfile) (domain.SkinProfile, error) {
	p := domain.SkinProfile{
		SkinType:     partial.SkinType,
		AgeGroup:     partial.AgeGroup,
		SkincareGoal: partial.SkincareGoal,
		Source:       domain.SourceQuestionnaire,
	}

	seen := make(map[domain.Concern]bool, len(partial.MainConcerns))
	for _, c := range partial.MainConcerns {
		if seen[c] {
			continue
		}
		seen[c] = true
		p.MainConcerns = append(p.MainConcerns, c)
	}

	if missing := p.MissingFields(); len(missing) > 0 {
		return domain.SkinProfile{}, &domain.ValidationError{Fields: missing, Reason: "questionnaire is incomplete"}
	}

	if !p.SkinType.Valid() {
		return domain.SkinProfile{}, fmt.Errorf("%w: skin type %q", domain.ErrInvalidOption, p.SkinType)
	}
	for _, c := range p.MainConcerns {
		if !c.Valid() {
			return domain.SkinProfile{}, fmt.Errorf("%w: concern %q", domain.ErrInvalidOption, c)
		}
	}
	if !p.AgeGroup.Valid() {
		return domain.SkinProfile{}, fmt.Errorf("%w: age group %q", domain.ErrInvalidOption, p.AgeGroup)
	}
	if !p.SkincareGoal.Valid() {
		return domain.SkinProfile{}, fmt.Errorf("%w: skincare goal %q", domain.ErrInvalidOption, p.SkincareGoal)
	}

	return p, nil
}

// SubmitFaceScan applies the user's corrections to a machine estimate.
// Only tone and type can be overridden; confidence is carried through as is.
// Concerns, age group and goal stay empty for face-scan profiles.
func SubmitFaceScan(estimate domain.FaceScanEstimate, overrides domain.FaceScanOverrides) (domain.SkinProfile, error) {
	if err := validateEstimate(estimate); err != nil {
		return domain.SkinProfile{}, err
	}

	tone := estimate.SkinTone
	skinType := estimate.SkinType

	if overrides.SkinTone != nil {
		if !overrides.SkinTone.Valid() {
			return domain.SkinProfile{}, fmt.Errorf("%w: skin tone %q", domain.ErrInvalidOption, *overrides.SkinTone)
		}
		tone = *overrides.SkinTone
	}
	if overrides.SkinType != nil {
		if !overrides.SkinType.Valid() {
			return domain.SkinProfile{}, fmt.Errorf("%w: skin type %q", domain.ErrInvalidOption, *overrides.SkinType)
		}
		skinType = *overrides.SkinType
	}

	confidence := estimate.Confidence

	return domain.SkinProfile{
		SkinType:         skinType,
		Source:           domain.SourceFaceScan,
		DetectedSkinTone: &tone,
		Confidence:       &confidence,
	}, nil
}

// validateEstimate rejects analyzer output that is outside the domain.
func validateEstimate(e domain.FaceScanEstimate) error {
	if !e.SkinTone.Valid() {
		return fmt.Errorf("%w: estimated skin tone %q", domain.ErrAnalysisFailed, e.SkinTone)
	}
	if !e.SkinType.Valid() {
		return fmt.Errorf("%w: estimated skin type %q", domain.ErrAnalysisFailed, e.SkinType)
	}
	if e.Confidence < 0 || e.Confidence > 1 {
		return fmt.Errorf("%w: confidence %v out of range", domain.ErrAnalysisFailed, e.Confidence)
	}
	return nil
}
