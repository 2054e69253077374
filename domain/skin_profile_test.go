//go:build !integration

package domain

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestSkinProfile_MissingFields(t *testing.T) {
	tone := SkinToneMedium
	conf := 0.87

	tests := []struct {
		name    string
		profile SkinProfile
		want    []string
	}{
		{
			name: "complete questionnaire",
			profile: SkinProfile{
				Source:       SourceQuestionnaire,
				SkinType:     SkinTypeOily,
				MainConcerns: []Concern{ConcernAcne},
				AgeGroup:     AgeGroup18to25,
				SkincareGoal: GoalAcneFree,
			},
			want: nil,
		},
		{
			name: "questionnaire without concerns or goal",
			profile: SkinProfile{
				Source:   SourceQuestionnaire,
				SkinType: SkinTypeDry,
				AgeGroup: AgeGroup26to35,
			},
			want: []string{"main_concerns", "skincare_goal"},
		},
		{
			name: "complete face scan leaves questionnaire fields empty",
			profile: SkinProfile{
				Source:           SourceFaceScan,
				SkinType:         SkinTypeCombination,
				DetectedSkinTone: &tone,
				Confidence:       &conf,
			},
			want: nil,
		},
		{
			name: "face scan without confidence",
			profile: SkinProfile{
				Source:           SourceFaceScan,
				SkinType:         SkinTypeCombination,
				DetectedSkinTone: &tone,
			},
			want: []string{"confidence"},
		},
		{
			name:    "unknown source",
			profile: SkinProfile{SkinType: SkinTypeNormal},
			want:    []string{"source"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.profile.MissingFields()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingFields() = %v, want %v", got, tt.want)
			}
			if tt.profile.IsComplete() != (len(tt.want) == 0) {
				t.Errorf("IsComplete() = %v, want %v", tt.profile.IsComplete(), len(tt.want) == 0)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseSkinType("Oily"); err != nil {
		t.Errorf("ParseSkinType(Oily) error = %v", err)
	}
	if _, err := ParseSkinType("All"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("ParseSkinType(All) error = %v, want ErrInvalidOption", err)
	}
	if _, err := ParseGoal("Basic Care"); err != nil {
		t.Errorf("ParseGoal(Basic Care) error = %v", err)
	}
	if _, err := ParseSkinTone("Olive"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("ParseSkinTone(Olive) error = %v, want ErrInvalidOption", err)
	}
}

func TestSubscription_Tier(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sub := Subscription{Plan: TierPremium, Status: StatusActive, EndDate: now.Add(time.Hour)}
	if got := sub.Tier(now); got != (SubscriptionTier{TierPremium, StatusActive}) {
		t.Errorf("Tier() = %+v, want active premium", got)
	}

	sub.EndDate = now.Add(-time.Hour)
	if got := sub.Tier(now); got.Status != StatusExpired {
		t.Errorf("Tier() past end date status = %s, want expired", got.Status)
	}

	sub.Status = StatusCancelled
	if got := sub.Tier(now); got.Status != StatusCancelled {
		t.Errorf("Tier() cancelled status = %s, want cancelled", got.Status)
	}
}

func TestValidationError_Is(t *testing.T) {
	err := error(&ValidationError{Fields: []string{"skin_type"}, Reason: "incomplete profile"})
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError does not unwrap to ErrValidation")
	}
}
