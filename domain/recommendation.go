package domain

// Routine maps each time of day to an ordered list of product names.
type Routine struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

type RecommendationResult struct {
	Personalized bool      `json:"personalized"`
	Routine      *Routine  `json:"routine,omitempty"`
	Products     []Product `json:"products"`
	Summary      string    `json:"summary"`
}
