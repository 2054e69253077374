package catalog

import (
	"fmt"
	"math"
	"strings"

	"glowSkincare/domain"
)

// Criteria narrows a catalog. Zero-valued fields match every product.
type Criteria struct {
	SearchText string          `json:"search_text,omitempty"`
	SkinType   domain.SkinType `json:"skin_type,omitempty"`
	Goal       domain.Goal     `json:"goal,omitempty"`
	MinRating  float64         `json:"min_rating,omitempty"`
}

// Clear resets every criterion, bringing back the whole catalog.
func (c Criteria) Clear() Criteria {
	return Criteria{}
}

func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}

// Page is a filtered view of the catalog: Shown of Total products.
type Page struct {
	Products []domain.Product `json:"products"`
	Shown    int              `json:"shown"`
	Total    int              `json:"total"`
	Criteria Criteria         `json:"criteria"`
}

// Filter keeps the products that match every set criterion, in catalog order.
// Criteria must already be parsed: an unknown skin type or goal, or a minimum
// rating outside [0,5], is a programming error and panics.
func Filter(products []domain.Product, c Criteria) []domain.Product {
	mustBeValidCriteria(c)

	term := strings.ToLower(strings.TrimSpace(c.SearchText))

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !matchesText(p, term) {
			continue
		}
		if c.SkinType != "" && !p.SuitsSkinType(c.SkinType) {
			continue
		}
		if c.Goal != "" && !p.HasGoal(c.Goal) {
			continue
		}
		if c.MinRating > 0 && p.Rating < c.MinRating {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Paginate filters products and reports how many are shown out of the catalog.
func Paginate(products []domain.Product, c Criteria) Page {
	filtered := Filter(products, c)
	return Page{
		Products: filtered,
		Shown:    len(filtered),
		Total:    len(products),
		Criteria: c,
	}
}

// "All" is a product tag, not a filter value.
func mustBeValidCriteria(c Criteria) {
	if c.SkinType != "" && !c.SkinType.Valid() {
		panic(fmt.Sprintf("catalog: filter skin type %q is not a skin type", c.SkinType))
	}
	if c.Goal != "" && !c.Goal.ValidForProduct() {
		panic(fmt.Sprintf("catalog: filter goal %q is not a skincare goal", c.Goal))
	}
	if math.IsNaN(c.MinRating) || c.MinRating < 0 || c.MinRating > 5 {
		panic(fmt.Sprintf("catalog: filter min rating %v outside [0,5]", c.MinRating))
	}
}

func matchesText(p domain.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}
