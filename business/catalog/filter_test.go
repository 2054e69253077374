//go:build !integration

package catalog

import (
	"reflect"
	"testing"

	"glowSkincare/domain"
)

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	products := SeedProducts()

	got := Filter(products, Criteria{})
	if !reflect.DeepEqual(got, products) {
		t.Errorf("Filter(catalog, {}) = %v, want the whole catalog", ids(got))
	}

	c := Criteria{SearchText: "serum", MinRating: 4}
	if !reflect.DeepEqual(Filter(products, c.Clear()), products) {
		t.Error("cleared criteria did not restore the catalog")
	}
}

func TestFilter_SkinTypeHonoursWildcard(t *testing.T) {
	products := SeedProducts()

	for _, st := range domain.SkinTypes {
		got := Filter(products, Criteria{SkinType: st})

		var want []string
		for _, p := range products {
			for _, v := range p.SkinTypes {
				if v == st || v == domain.SkinTypeAll {
					want = append(want, p.ID)
					break
				}
			}
		}
		if want == nil {
			want = []string{}
		}
		if !reflect.DeepEqual(ids(got), want) {
			t.Errorf("skin type %s: got %v, want %v", st, ids(got), want)
		}
	}
}

func TestFilter(t *testing.T) {
	products := SeedProducts()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{name: "oily and hydration", criteria: Criteria{SkinType: domain.SkinTypeOily, Goal: domain.GoalHydration}, want: []string{"1"}},
		{name: "search brand case insensitive", criteria: Criteria{SearchText: "NEUTROGENA"}, want: []string{"3"}},
		{name: "search description", criteria: Criteria{SearchText: "antioxidant"}, want: []string{"2"}},
		{name: "min rating inclusive", criteria: Criteria{MinRating: 4.5}, want: []string{"1", "2"}},
		{name: "goal has no wildcard", criteria: Criteria{Goal: domain.GoalAcneFree}, want: []string{}},
		{name: "and semantics", criteria: Criteria{SkinType: domain.SkinTypeDry, Goal: domain.GoalAntiAging, MinRating: 4.4}, want: []string{}},
		{name: "catalog order kept", criteria: Criteria{Goal: domain.GoalAntiAging}, want: []string{"2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(products, tt.criteria)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("Filter() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilter_PanicsOnUnparsedCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
	}{
		{name: "unknown skin type", criteria: Criteria{SkinType: "Purple"}},
		{name: "wildcard skin type", criteria: Criteria{SkinType: domain.SkinTypeAll}},
		{name: "unknown goal", criteria: Criteria{Goal: "Shine"}},
		{name: "rating above five", criteria: Criteria{MinRating: 7}},
		{name: "negative rating", criteria: Criteria{MinRating: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Filter(%+v) did not panic", tt.criteria)
				}
			}()
			Filter(SeedProducts(), tt.criteria)
		})
	}
}

func TestFilter_AcceptsBasicCareAndBoundaryRatings(t *testing.T) {
	products := SeedProducts()

	for _, c := range []Criteria{{Goal: domain.GoalBasicCare}, {MinRating: 0}, {MinRating: 5}} {
		Filter(products, c)
	}
}

func TestPaginate_ReportsShownOfTotal(t *testing.T) {
	page := Paginate(SeedProducts(), Criteria{Goal: domain.GoalHydration})
	if page.Shown != 2 || page.Total != 3 {
		t.Errorf("Paginate() shown %d of %d, want 2 of 3", page.Shown, page.Total)
	}
}
