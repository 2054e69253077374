package faceanalysis

import (
	"context"
	"fmt"

	"glowSkincare/business/profile"
	"glowSkincare/pkg/config"
)

const (
	AnalyzerStub   = "stub"
	AnalyzerGemini = "gemini"
)

// Analyzer is a profile.Analyzer that may hold a connection to release.
type Analyzer interface {
	profile.Analyzer
	Close() error
}

// New builds the analyzer selected by FACE_ANALYZER.
func New(ctx context.Context, cfg config.FaceScanConfig) (Analyzer, error) {
	switch cfg.Analyzer {
	case "", AnalyzerStub:
		return NewStubAnalyzer(), nil
	case AnalyzerGemini:
		return NewGeminiAnalyzer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unsupported face analyzer: %s", cfg.Analyzer)
	}
}
