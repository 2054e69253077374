package domain

import "time"

type TierLevel string

const (
	TierNone     TierLevel = "none"
	TierStandard TierLevel = "standard"
	TierPremium  TierLevel = "premium"
)

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
)

type BillingPeriod string

const (
	PeriodDaily   BillingPeriod = "daily"
	PeriodMonthly BillingPeriod = "monthly"
)

type PaymentMethod string

const (
	PaymentMpesa PaymentMethod = "mpesa"
	PaymentCard  PaymentMethod = "card"
)

// SubscriptionTier is the only subscription input the recommendation engine sees.
type SubscriptionTier struct {
	Level  TierLevel          `json:"level"`
	Status SubscriptionStatus `json:"status"`
}

// NoSubscription is the tier of anonymous users and users without a plan.
var NoSubscription = SubscriptionTier{Level: TierNone, Status: StatusActive}

func (t SubscriptionTier) Active() bool {
	return t.Status == StatusActive
}

// CREATE TABLE public.subscriptions (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id         BIGINT NOT NULL,
//     plan            TEXT NOT NULL,
//     price           NUMERIC NOT NULL,
//     period          TEXT NOT NULL,
//     status          TEXT NOT NULL,
//     payment_method  TEXT NOT NULL,
//     start_date      TIMESTAMPTZ NOT NULL,
//     end_date        TIMESTAMPTZ NOT NULL,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Subscription struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	UserID        uint               `gorm:"column:user_id;not null;index" json:"user_id"`
	Plan          TierLevel          `gorm:"column:plan;type:text;not null" json:"plan"`
	Price         float64            `gorm:"column:price;type:numeric;not null" json:"price"`
	Period        BillingPeriod      `gorm:"column:period;type:text;not null" json:"period"`
	Status        SubscriptionStatus `gorm:"column:status;type:text;not null" json:"status"`
	PaymentMethod PaymentMethod      `gorm:"column:payment_method;type:text;not null" json:"payment_method"`
	StartDate     time.Time          `gorm:"column:start_date;not null" json:"start_date"`
	EndDate       time.Time          `gorm:"column:end_date;not null" json:"end_date"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// Tier resolves the subscription at time now. An active subscription past
// its end date counts as expired.
func (s Subscription) Tier(now time.Time) SubscriptionTier {
	status := s.Status
	if status == StatusActive && !s.EndDate.IsZero() && now.After(s.EndDate) {
		status = StatusExpired
	}
	return SubscriptionTier{Level: s.Plan, Status: status}
}

// Plan is a purchasable plan with KSh prices.
type Plan struct {
	ID           TierLevel `json:"id"`
	Name         string    `json:"name"`
	MonthlyPrice float64   `json:"monthly_price"`
	DailyPrice   float64   `json:"daily_price"`
	Features     []string  `json:"features"`
	Popular      bool      `json:"popular"`
}

func (p Plan) Price(period BillingPeriod) float64 {
	if period == PeriodDaily {
		return p.DailyPrice
	}
	return p.MonthlyPrice
}
