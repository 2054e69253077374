package domain

import (
	"time"

	"gorm.io/datatypes"
)

type ProfileSource string

const (
	SourceQuestionnaire ProfileSource = "questionnaire"
	SourceFaceScan      ProfileSource = "face_scan"
)

// SkinProfile is the canonical profile handed to the recommendation engine.
// DetectedSkinTone and Confidence are only set for face-scan profiles.
type SkinProfile struct {
	SkinType         SkinType      `json:"skin_type"`
	MainConcerns     []Concern     `json:"main_concerns"`
	AgeGroup         AgeGroup      `json:"age_group"`
	SkincareGoal     Goal          `json:"skincare_goal"`
	Source           ProfileSource `json:"source"`
	DetectedSkinTone *SkinTone     `json:"detected_skin_tone,omitempty"`
	Confidence       *float64      `json:"confidence,omitempty"`
}

// MissingFields lists the fields required by the profile's source that are empty.
func (p SkinProfile) MissingFields() []string {
	var missing []string

	if p.SkinType == "" {
		missing = append(missing, "skin_type")
	}

	switch p.Source {
	case SourceQuestionnaire:
		if len(p.MainConcerns) == 0 {
			missing = append(missing, "main_concerns")
		}
		if p.AgeGroup == "" {
			missing = append(missing, "age_group")
		}
		if p.SkincareGoal == "" {
			missing = append(missing, "skincare_goal")
		}
	case SourceFaceScan:
		if p.DetectedSkinTone == nil || *p.DetectedSkinTone == "" {
			missing = append(missing, "detected_skin_tone")
		}
		if p.Confidence == nil {
			missing = append(missing, "confidence")
		}
	default:
		missing = append(missing, "source")
	}

	return missing
}

func (p SkinProfile) IsComplete() bool {
	return len(p.MissingFields()) == 0
}

// HasConcern reports whether c is one of the profile's main concerns.
func (p SkinProfile) HasConcern(c Concern) bool {
	for _, v := range p.MainConcerns {
		if v == c {
			return true
		}
	}
	return false
}

// CREATE TABLE public.skin_profiles (
//     id                 BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id            BIGINT NOT NULL,
//     source             TEXT NOT NULL,
//     skin_type          TEXT NOT NULL,
//     main_concerns      JSONB,
//     age_group          TEXT,
//     skincare_goal      TEXT,
//     detected_skin_tone TEXT,
//     confidence         NUMERIC,
//     created_at         TIMESTAMPTZ DEFAULT NOW()
// );

type SkinProfileRecord struct {
	ID               uint                         `gorm:"primaryKey" json:"id"`
	UserID           uint                         `gorm:"column:user_id;not null;index" json:"user_id"`
	Source           ProfileSource                `gorm:"column:source;type:text;not null" json:"source"`
	SkinType         SkinType                     `gorm:"column:skin_type;type:text;not null" json:"skin_type"`
	MainConcerns     datatypes.JSONSlice[Concern] `gorm:"column:main_concerns" json:"main_concerns"`
	AgeGroup         AgeGroup                     `gorm:"column:age_group;type:text" json:"age_group"`
	SkincareGoal     Goal                         `gorm:"column:skincare_goal;type:text" json:"skincare_goal"`
	DetectedSkinTone *SkinTone                    `gorm:"column:detected_skin_tone;type:text" json:"detected_skin_tone,omitempty"`
	Confidence       *float64                     `gorm:"column:confidence;type:numeric" json:"confidence,omitempty"`
	CreatedAt        time.Time                    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SkinProfileRecord) TableName() string {
	return "skin_profiles"
}

func NewSkinProfileRecord(userID uint, p SkinProfile) SkinProfileRecord {
	return SkinProfileRecord{
		UserID:           userID,
		Source:           p.Source,
		SkinType:         p.SkinType,
		MainConcerns:     datatypes.JSONSlice[Concern](append([]Concern(nil), p.MainConcerns...)),
		AgeGroup:         p.AgeGroup,
		SkincareGoal:     p.SkincareGoal,
		DetectedSkinTone: p.DetectedSkinTone,
		Confidence:       p.Confidence,
	}
}

func (r SkinProfileRecord) Profile() SkinProfile {
	return SkinProfile{
		SkinType:         r.SkinType,
		MainConcerns:     append([]Concern(nil), r.MainConcerns...),
		AgeGroup:         r.AgeGroup,
		SkincareGoal:     r.SkincareGoal,
		Source:           r.Source,
		DetectedSkinTone: r.DetectedSkinTone,
		Confidence:       r.Confidence,
	}
}
