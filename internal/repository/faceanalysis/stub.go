package faceanalysis

import (
	"context"
	"fmt"

	"glowSkincare/domain"
)

// StubAnalyzer returns the same estimate for every image.
type StubAnalyzer struct {
	estimate domain.FaceScanEstimate
}

func NewStubAnalyzer() *StubAnalyzer {
	return &StubAnalyzer{
		estimate: domain.FaceScanEstimate{
			SkinTone:   domain.SkinToneMedium,
			SkinType:   domain.SkinTypeCombination,
			Confidence: 0.87,
		},
	}
}

func (a *StubAnalyzer) Analyze(ctx context.Context, image []byte) (domain.FaceScanEstimate, error) {
	if err := ctx.Err(); err != nil {
		return domain.FaceScanEstimate{}, fmt.Errorf("context error: %w", err)
	}
	if len(image) == 0 {
		return domain.FaceScanEstimate{}, fmt.Errorf("%w: empty image", domain.ErrAnalysisFailed)
	}
	return a.estimate, nil
}

func (a *StubAnalyzer) Close() error {
	return nil
}
