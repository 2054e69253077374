//go:build !integration

package recommend

import (
	"context"
	"errors"
	"testing"

	"glowSkincare/business/catalog"
	"glowSkincare/domain"
)

type fakeProducts struct {
	products []domain.Product
	err      error
}

func (f fakeProducts) FindAll(context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

type fakeTiers map[uint]domain.SubscriptionTier

func (f fakeTiers) CurrentTier(_ context.Context, userID uint) (domain.SubscriptionTier, error) {
	if t, ok := f[userID]; ok {
		return t, nil
	}
	return domain.NoSubscription, nil
}

type fakeProfiles map[uint]domain.SkinProfile

func (f fakeProfiles) LatestProfile(_ context.Context, userID uint) (domain.SkinProfile, error) {
	if p, ok := f[userID]; ok {
		return p, nil
	}
	return domain.SkinProfile{}, domain.ErrNotFound
}

func newTestService() *RecommendService {
	return NewRecommendService(
		NewEngine(DefaultConfig()),
		fakeProducts{products: catalog.SeedProducts()},
		fakeTiers{1: premium, 2: standard},
		fakeProfiles{1: faceScanProfile(domain.SkinTypeNormal)},
	)
}

func TestRecommendService_TierComesFromSubscription(t *testing.T) {
	svc := newTestService()
	ctx := WithTraceID(context.Background(), "trace-1")

	anon, err := svc.Recommend(ctx, 0, faceScanProfile(domain.SkinTypeNormal))
	if err != nil {
		t.Fatalf("anonymous Recommend() error = %v", err)
	}
	if anon.Personalized || len(anon.Products) != 1 {
		t.Errorf("anonymous result = %+v", anon)
	}

	prem, err := svc.Recommend(ctx, 1, faceScanProfile(domain.SkinTypeNormal))
	if err != nil {
		t.Fatalf("premium Recommend() error = %v", err)
	}
	if !prem.Personalized || prem.Routine == nil || len(prem.Products) != 3 {
		t.Errorf("premium result = %+v", prem)
	}
}

func TestRecommendService_RecommendLatest(t *testing.T) {
	svc := newTestService()

	if _, err := svc.RecommendLatest(context.Background(), 0); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("anonymous RecommendLatest() error = %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.RecommendLatest(context.Background(), 2); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("RecommendLatest() without profile error = %v, want ErrNotFound", err)
	}

	res, err := svc.RecommendLatest(context.Background(), 1)
	if err != nil {
		t.Fatalf("RecommendLatest() error = %v", err)
	}
	if res.Routine == nil {
		t.Error("premium latest recommendation has no routine")
	}
}

func TestRecommendService_Errors(t *testing.T) {
	svc := newTestService()

	_, err := svc.Recommend(context.Background(), 1, domain.SkinProfile{Source: domain.SourceQuestionnaire})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("incomplete profile error = %v, want ErrValidation", err)
	}

	boom := errors.New("db down")
	svc.productRepo = fakeProducts{err: boom}
	if _, err := svc.Recommend(context.Background(), 1, faceScanProfile(domain.SkinTypeDry)); !errors.Is(err, boom) {
		t.Errorf("catalog error = %v, want %v", err, boom)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Recommend(ctx, 1, faceScanProfile(domain.SkinTypeDry)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context error = %v", err)
	}
}
