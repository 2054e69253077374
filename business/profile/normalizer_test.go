//go:build !integration

package profile

import (
	"errors"
	"reflect"
	"testing"

	"glowSkincare/domain"
)

func TestNormalizeQuestionnaire(t *testing.T) {
	tone := domain.SkinToneDark

	got, err := NormalizeQuestionnaire(domain.SkinProfile{
		SkinType:         domain.SkinTypeDry,
		MainConcerns:     []domain.Concern{domain.ConcernWrinkles, domain.ConcernDullness, domain.ConcernWrinkles},
		AgeGroup:         domain.AgeGroup45Plus,
		SkincareGoal:     domain.GoalAntiAging,
		DetectedSkinTone: &tone,
	})
	if err != nil {
		t.Fatalf("NormalizeQuestionnaire() error = %v", err)
	}

	want := domain.SkinProfile{
		SkinType:     domain.SkinTypeDry,
		MainConcerns: []domain.Concern{domain.ConcernWrinkles, domain.ConcernDullness},
		AgeGroup:     domain.AgeGroup45Plus,
		SkincareGoal: domain.GoalAntiAging,
		Source:       domain.SourceQuestionnaire,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeQuestionnaire() = %+v, want %+v", got, want)
	}
}

func TestNormalizeQuestionnaire_Errors(t *testing.T) {
	tests := []struct {
		name    string
		partial domain.SkinProfile
		wantErr error
	}{
		{
			name:    "missing concerns",
			partial: domain.SkinProfile{SkinType: "Oily", AgeGroup: "18-25", SkincareGoal: "Acne-free"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown skin type",
			partial: domain.SkinProfile{SkinType: "Greasy", MainConcerns: []domain.Concern{"Acne"}, AgeGroup: "18-25", SkincareGoal: "Acne-free"},
			wantErr: domain.ErrInvalidOption,
		},
		{
			name:    "catalog-only goal",
			partial: domain.SkinProfile{SkinType: "Oily", MainConcerns: []domain.Concern{"Acne"}, AgeGroup: "18-25", SkincareGoal: "Basic Care"},
			wantErr: domain.ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeQuestionnaire(tt.partial)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	var verr *domain.ValidationError
	_, err := NormalizeQuestionnaire(domain.SkinProfile{SkinType: "Oily"})
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T, want *domain.ValidationError", err)
	}
	if !reflect.DeepEqual(verr.Fields, []string{"main_concerns", "age_group", "skincare_goal"}) {
		t.Errorf("Fields = %v", verr.Fields)
	}
}

func TestSubmitFaceScan_OverrideKeepsConfidence(t *testing.T) {
	estimate := domain.FaceScanEstimate{SkinTone: domain.SkinToneMedium, SkinType: domain.SkinTypeCombination, Confidence: 0.87}
	dry := domain.SkinTypeDry

	p, err := SubmitFaceScan(estimate, domain.FaceScanOverrides{SkinType: &dry})
	if err != nil {
		t.Fatalf("SubmitFaceScan() error = %v", err)
	}

	if p.SkinType != domain.SkinTypeDry {
		t.Errorf("SkinType = %q, want Dry", p.SkinType)
	}
	if p.Confidence == nil || *p.Confidence != 0.87 {
		t.Errorf("Confidence = %v, want 0.87", p.Confidence)
	}
	if p.DetectedSkinTone == nil || *p.DetectedSkinTone != domain.SkinToneMedium {
		t.Errorf("DetectedSkinTone = %v, want Medium", p.DetectedSkinTone)
	}
	if p.Source != domain.SourceFaceScan {
		t.Errorf("Source = %q", p.Source)
	}
	if len(p.MainConcerns) != 0 || p.AgeGroup != "" || p.SkincareGoal != "" {
		t.Errorf("questionnaire fields populated: %+v", p)
	}
	if !p.IsComplete() {
		t.Errorf("profile incomplete: %v", p.MissingFields())
	}
}

func TestSubmitFaceScan_Errors(t *testing.T) {
	valid := domain.FaceScanEstimate{SkinTone: domain.SkinToneLight, SkinType: domain.SkinTypeNormal, Confidence: 0.5}
	badTone := domain.SkinTone("Olive")

	if _, err := SubmitFaceScan(valid, domain.FaceScanOverrides{SkinTone: &badTone}); !errors.Is(err, domain.ErrInvalidOption) {
		t.Errorf("bad override error = %v, want ErrInvalidOption", err)
	}

	out := valid
	out.Confidence = 1.2
	if _, err := SubmitFaceScan(out, domain.FaceScanOverrides{}); !errors.Is(err, domain.ErrAnalysisFailed) {
		t.Errorf("bad confidence error = %v, want ErrAnalysisFailed", err)
	}
}
