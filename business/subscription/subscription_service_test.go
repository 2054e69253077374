//go:build !integration

package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"glowSkincare/domain"
)

type fakeSubRepo struct {
	subs []domain.Subscription
}

func (f *fakeSubRepo) Create(_ context.Context, sub *domain.Subscription) error {
	sub.ID = uint(len(f.subs) + 1)
	f.subs = append(f.subs, *sub)
	return nil
}

func (f *fakeSubRepo) FindLatestByUser(_ context.Context, userID uint) (domain.Subscription, error) {
	for i := len(f.subs) - 1; i >= 0; i-- {
		if f.subs[i].UserID == userID {
			return f.subs[i], nil
		}
	}
	return domain.Subscription{}, domain.ErrNotFound
}

func (f *fakeSubRepo) UpdateStatus(_ context.Context, id uint, status domain.SubscriptionStatus) error {
	for i := range f.subs {
		if f.subs[i].ID == id {
			f.subs[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func newTestService(now time.Time) (*subscriptionService, *fakeSubRepo) {
	repo := &fakeSubRepo{}
	svc := NewSubscriptionService(repo)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestSubscriptionService_NoSubscription(t *testing.T) {
	svc, _ := newTestService(time.Now())

	tier, err := svc.CurrentTier(context.Background(), 9)
	if err != nil {
		t.Fatalf("CurrentTier() error = %v", err)
	}
	if tier != domain.NoSubscription {
		t.Errorf("CurrentTier() = %+v, want NoSubscription", tier)
	}
}

func TestSubscriptionService_SubscribePricesAndEndDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	sub, err := svc.Subscribe(context.Background(), 1, domain.TierPremium, domain.PeriodDaily, domain.PaymentMpesa)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if sub.Price != 55 || !sub.EndDate.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("Subscribe() = price %v end %v", sub.Price, sub.EndDate)
	}

	tier, _ := svc.CurrentTier(context.Background(), 1)
	if tier.Level != domain.TierPremium || tier.Status != domain.StatusActive {
		t.Errorf("CurrentTier() = %+v", tier)
	}

	svc.now = func() time.Time { return now.AddDate(0, 0, 2) }
	tier, _ = svc.CurrentTier(context.Background(), 1)
	if tier.Status != domain.StatusExpired {
		t.Errorf("status after end date = %q, want expired", tier.Status)
	}
}

func TestSubscriptionService_ResubscribeCancelsPrevious(t *testing.T) {
	svc, repo := newTestService(time.Now())
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, 1, domain.TierStandard, domain.PeriodMonthly, domain.PaymentCard); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	sub, err := svc.Subscribe(ctx, 1, domain.TierPremium, domain.PeriodMonthly, domain.PaymentCard)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if sub.Price != 500 {
		t.Errorf("premium monthly price = %v, want 500", sub.Price)
	}
	if repo.subs[0].Status != domain.StatusCancelled {
		t.Errorf("previous subscription status = %q, want cancelled", repo.subs[0].Status)
	}
}

func TestSubscriptionService_Cancel(t *testing.T) {
	svc, _ := newTestService(time.Now())
	ctx := context.Background()

	if _, err := svc.Cancel(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Cancel() without plan error = %v, want ErrNotFound", err)
	}

	_, _ = svc.Subscribe(ctx, 1, domain.TierStandard, domain.PeriodMonthly, domain.PaymentMpesa)
	sub, err := svc.Cancel(ctx, 1)
	if err != nil || sub.Status != domain.StatusCancelled {
		t.Fatalf("Cancel() = %+v, %v", sub, err)
	}

	tier, _ := svc.CurrentTier(ctx, 1)
	if tier.Active() {
		t.Error("cancelled subscription still active")
	}
}

func TestSubscriptionService_RejectsUnknownValues(t *testing.T) {
	svc, _ := newTestService(time.Now())
	ctx := context.Background()

	cases := []struct {
		plan   domain.TierLevel
		period domain.BillingPeriod
		method domain.PaymentMethod
	}{
		{domain.TierNone, domain.PeriodMonthly, domain.PaymentMpesa},
		{domain.TierPremium, "weekly", domain.PaymentMpesa},
		{domain.TierPremium, domain.PeriodDaily, "paypal"},
	}
	for _, c := range cases {
		if _, err := svc.Subscribe(ctx, 1, c.plan, c.period, c.method); !errors.Is(err, domain.ErrInvalidOption) {
			t.Errorf("Subscribe(%v) error = %v, want ErrInvalidOption", c, err)
		}
	}
}
