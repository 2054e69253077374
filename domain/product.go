package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id              TEXT PRIMARY KEY,
//     name            TEXT NOT NULL,
//     brand           TEXT NOT NULL,
//     rating          NUMERIC NOT NULL,
//     reviews_count   INTEGER NOT NULL DEFAULT 0,
//     description     TEXT,
//     skin_types      JSONB,
//     goals           JSONB,
//     links           JSONB,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type ProductLink struct {
	Store string `json:"store"`
	URL   string `json:"url"`
}

type Product struct {
	ID           string                           `gorm:"primaryKey;column:id;type:text" json:"id"`
	Name         string                           `gorm:"column:name;type:text;not null" json:"name"`
	Brand        string                           `gorm:"column:brand;type:text;not null" json:"brand"`
	Rating       float64                          `gorm:"column:rating;type:numeric;not null" json:"rating"`
	ReviewsCount int                              `gorm:"column:reviews_count;not null;default:0" json:"reviews_count"`
	Description  string                           `gorm:"column:description;type:text" json:"description"`
	SkinTypes    datatypes.JSONSlice[SkinType]    `gorm:"column:skin_types" json:"skin_types"`
	Goals        datatypes.JSONSlice[Goal]        `gorm:"column:goals" json:"goals"`
	Links        datatypes.JSONSlice[ProductLink] `gorm:"column:links" json:"links"`
	CreatedAt    time.Time                        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

// SuitsSkinType is true when the product lists t or the "All" wildcard.
func (p Product) SuitsSkinType(t SkinType) bool {
	for _, v := range p.SkinTypes {
		if v == t || v == SkinTypeAll {
			return true
		}
	}
	return false
}

func (p Product) HasGoal(g Goal) bool {
	for _, v := range p.Goals {
		if v == g {
			return true
		}
	}
	return false
}

// PrimaryLink is the first store link, used for "Buy Now".
func (p Product) PrimaryLink() (ProductLink, bool) {
	if len(p.Links) == 0 {
		return ProductLink{}, false
	}
	return p.Links[0], true
}
