//go:build !integration

package faceanalysis

import (
	"context"
	"errors"
	"testing"

	"glowSkincare/domain"
	"glowSkincare/pkg/config"
)

func TestParseEstimate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    domain.FaceScanEstimate
		wantErr error
	}{
		{
			name: "plain json",
			text: `{"skin_tone":"Dark","skin_type":"Oily","confidence":0.64}`,
			want: domain.FaceScanEstimate{SkinTone: domain.SkinToneDark, SkinType: domain.SkinTypeOily, Confidence: 0.64},
		},
		{
			name: "fenced json",
			text: "```json\n{\"skin_tone\":\"Light\",\"skin_type\":\"Dry\",\"confidence\":0.9}\n```",
			want: domain.FaceScanEstimate{SkinTone: domain.SkinToneLight, SkinType: domain.SkinTypeDry, Confidence: 0.9},
		},
		{
			name:    "model reports no face",
			text:    `{"error":"image is too dark"}`,
			wantErr: errNoFace,
		},
		{
			name:    "unknown tone",
			text:    `{"skin_tone":"Olive","skin_type":"Dry","confidence":0.5}`,
			wantErr: domain.ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEstimate(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseEstimate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseEstimate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseEstimate() = %+v, want %+v", got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "not json", `{"skin_tone":"Dark","skin_type":"Oily"}`, `{"skin_tone":"Dark","skin_type":"Oily","confidence":3}`} {
		if _, err := parseEstimate(bad); err == nil {
			t.Errorf("parseEstimate(%q) error = nil", bad)
		}
	}
}

func TestImageFormat(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")
	if got := imageFormat(png); got != "png" {
		t.Errorf("imageFormat(png) = %q", got)
	}
	if got := imageFormat([]byte{0xff, 0xd8, 0xff, 0xe0}); got != "jpeg" {
		t.Errorf("imageFormat(jpeg) = %q", got)
	}
}

func TestStubAnalyzer(t *testing.T) {
	a, err := New(context.Background(), config.FaceScanConfig{Analyzer: AnalyzerStub})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := a.Analyze(context.Background(), []byte{1})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	want := domain.FaceScanEstimate{SkinTone: domain.SkinToneMedium, SkinType: domain.SkinTypeCombination, Confidence: 0.87}
	if got != want {
		t.Errorf("Analyze() = %+v, want %+v", got, want)
	}

	if _, err := a.Analyze(context.Background(), nil); !errors.Is(err, domain.ErrAnalysisFailed) {
		t.Errorf("Analyze(nil) error = %v, want ErrAnalysisFailed", err)
	}

	if _, err := New(context.Background(), config.FaceScanConfig{Analyzer: "opencv"}); err == nil {
		t.Error("New() with unknown analyzer succeeded")
	}
}
