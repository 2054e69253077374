package domain

import "fmt"

type (
	SkinType string
	Concern  string
	AgeGroup string
	Goal     string
	SkinTone string
)

const (
	SkinTypeOily        SkinType = "Oily"
	SkinTypeDry         SkinType = "Dry"
	SkinTypeCombination SkinType = "Combination"
	SkinTypeNormal      SkinType = "Normal"
	SkinTypeSensitive   SkinType = "Sensitive"

	// SkinTypeAll only appears on products: the product suits every skin type.
	SkinTypeAll SkinType = "All"
)

const (
	ConcernAcne        Concern = "Acne"
	ConcernWrinkles    Concern = "Wrinkles"
	ConcernDarkSpots   Concern = "Dark spots"
	ConcernDullness    Concern = "Dullness"
	ConcernSensitivity Concern = "Sensitivity"
)

const (
	AgeGroup18to25 AgeGroup = "18-25"
	AgeGroup26to35 AgeGroup = "26-35"
	AgeGroup36to45 AgeGroup = "36-45"
	AgeGroup45Plus AgeGroup = "45+"
)

const (
	GoalGlowingSkin Goal = "Glowing skin"
	GoalAntiAging   Goal = "Anti-aging"
	GoalAcneFree    Goal = "Acne-free"
	GoalHydration   Goal = "Hydration"
	GoalEvenTone    Goal = "Even tone"

	// GoalBasicCare is a catalog-only goal; the questionnaire never offers it.
	GoalBasicCare Goal = "Basic Care"
)

const (
	SkinToneLight  SkinTone = "Light"
	SkinToneMedium SkinTone = "Medium"
	SkinToneDark   SkinTone = "Dark"
)

// Option lists in display order.
var (
	SkinTypes = []SkinType{SkinTypeOily, SkinTypeDry, SkinTypeCombination, SkinTypeNormal, SkinTypeSensitive}
	Concerns  = []Concern{ConcernAcne, ConcernWrinkles, ConcernDarkSpots, ConcernDullness, ConcernSensitivity}
	AgeGroups = []AgeGroup{AgeGroup18to25, AgeGroup26to35, AgeGroup36to45, AgeGroup45Plus}
	Goals     = []Goal{GoalGlowingSkin, GoalAntiAging, GoalAcneFree, GoalHydration, GoalEvenTone}
	SkinTones = []SkinTone{SkinToneLight, SkinToneMedium, SkinToneDark}
)

func (t SkinType) Valid() bool {
	for _, v := range SkinTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidForProduct also accepts the "All" wildcard.
func (t SkinType) ValidForProduct() bool {
	return t == SkinTypeAll || t.Valid()
}

func (c Concern) Valid() bool {
	for _, v := range Concerns {
		if v == c {
			return true
		}
	}
	return false
}

func (a AgeGroup) Valid() bool {
	for _, v := range AgeGroups {
		if v == a {
			return true
		}
	}
	return false
}

func (g Goal) Valid() bool {
	for _, v := range Goals {
		if v == g {
			return true
		}
	}
	return false
}

// ValidForProduct also accepts catalog-only goals.
func (g Goal) ValidForProduct() bool {
	return g == GoalBasicCare || g.Valid()
}

func (t SkinTone) Valid() bool {
	for _, v := range SkinTones {
		if v == t {
			return true
		}
	}
	return false
}

func ParseSkinType(s string) (SkinType, error) {
	t := SkinType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown skin type %q", ErrInvalidOption, s)
	}
	return t, nil
}

func ParseGoal(s string) (Goal, error) {
	g := Goal(s)
	if !g.ValidForProduct() {
		return "", fmt.Errorf("%w: unknown skincare goal %q", ErrInvalidOption, s)
	}
	return g, nil
}

func ParseSkinTone(s string) (SkinTone, error) {
	t := SkinTone(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown skin tone %q", ErrInvalidOption, s)
	}
	return t, nil
}
