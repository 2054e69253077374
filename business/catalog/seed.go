package catalog

import (
	"context"

	"glowSkincare/domain"
	"glowSkincare/pkg/logger"
)

// SeedProducts is the starter catalog loaded into an empty database.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:           "1",
			Name:         "Gentle Foaming Cleanser",
			Brand:        "Cetaphil",
			Rating:       4.5,
			ReviewsCount: 234,
			Description:  "A gentle, non-irritating cleanser perfect for daily use",
			SkinTypes:    []domain.SkinType{domain.SkinTypeAll, domain.SkinTypeSensitive, domain.SkinTypeDry},
			Goals:        []domain.Goal{domain.GoalHydration, domain.GoalBasicCare},
			Links: []domain.ProductLink{
				{Store: "Jumia", URL: "https://www.jumia.co.ke/cetaphil-gentle-foaming-cleanser"},
				{Store: "Amazon", URL: "https://www.amazon.com/cetaphil-gentle-foaming-cleanser"},
			},
		},
		{
			ID:           "2",
			Name:         "Vitamin C Brightening Serum",
			Brand:        "The Ordinary",
			Rating:       4.7,
			ReviewsCount: 456,
			Description:  "Powerful antioxidant serum for brighter, more even skin tone",
			SkinTypes:    []domain.SkinType{domain.SkinTypeNormal, domain.SkinTypeCombination, domain.SkinTypeOily},
			Goals:        []domain.Goal{domain.GoalGlowingSkin, domain.GoalEvenTone, domain.GoalAntiAging},
			Links: []domain.ProductLink{
				{Store: "Jumia", URL: "https://www.jumia.co.ke/the-ordinary-vitamin-c-serum"},
				{Store: "Beauty Click", URL: "https://www.beautyclick.co.ke/the-ordinary-vitamin-c"},
			},
		},
		{
			ID:           "3",
			Name:         "Hyaluronic Acid Moisturizer",
			Brand:        "Neutrogena",
			Rating:       4.3,
			ReviewsCount: 189,
			Description:  "Lightweight moisturizer that provides 24-hour hydration",
			SkinTypes:    []domain.SkinType{domain.SkinTypeDry, domain.SkinTypeNormal, domain.SkinTypeSensitive},
			Goals:        []domain.Goal{domain.GoalHydration, domain.GoalAntiAging},
			Links: []domain.ProductLink{
				{Store: "Jumia", URL: "https://www.jumia.co.ke/neutrogena-hyaluronic-moisturizer"},
			},
		},
	}
}

// SeedIfEmpty loads SeedProducts when the catalog has no products yet.
func (s *catalogService) SeedIfEmpty(ctx context.Context) error {
	existing, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range SeedProducts() {
		if err := s.productRepo.Create(ctx, &p); err != nil {
			logger.Error("failed to seed product", err)
			return err
		}
	}

	logger.Info("catalog seeded", "products", len(SeedProducts()))
	return nil
}
