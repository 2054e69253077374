package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	PhoneNumber string         `gorm:"column:phone_number;unique;not null" json:"phone_number"`
	Pin         string         `gorm:"column:pin;not null" json:"-"`
	Role        string         `gorm:"column:role;default:customer" json:"role"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// CurrentUser is what the auth collaborator exposes for a request.
type CurrentUser struct {
	ID     uint               `json:"id"`
	Role   string             `json:"role"`
	Tier   TierLevel          `json:"tier"`
	Status SubscriptionStatus `json:"status"`
}
