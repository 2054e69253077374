package domain

// FaceScanEstimate is the image pipeline's output.
type FaceScanEstimate struct {
	SkinTone   SkinTone `json:"skin_tone"`
	SkinType   SkinType `json:"skin_type"`
	Confidence float64  `json:"confidence"`
}

// FaceScanOverrides are user corrections; confidence cannot be overridden.
type FaceScanOverrides struct {
	SkinTone *SkinTone `json:"skin_tone,omitempty"`
	SkinType *SkinType `json:"skin_type,omitempty"`
}

// HighConfidence mirrors the threshold used when rendering the confidence badge.
func (e FaceScanEstimate) HighConfidence() bool {
	return e.Confidence > 0.8
}
