package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

func TestSiteStatsAssemblesCounts(t *testing.T) {
	users := &fakeUserRepo{countFn: func(ctx context.Context) (int64, error) { return 42, nil }}
	products := &fakeProductRepo{
		countFn: func(ctx context.Context, f db.ProductFilter) (int64, error) {
			if f.Reported == models.FlagYes {
				return 2, nil
			}
			return 30, nil
		},
		statusBreakdownFn: func(ctx context.Context, ownerEmail string) (map[string]int64, error) {
			assert.Empty(t, ownerEmail)
			return map[string]int64{
				models.StatusAccepted: 20,
				models.StatusPending:  7,
				models.StatusRejected: 3,
			}, nil
		},
	}
	reviews := &fakeReviewRepo{countFn: func(ctx context.Context) (int64, error) { return 55, nil }}
	svc := NewStatsService(users, products, reviews)

	stats, err := svc.Site(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.SiteStats{
		TotalUsers:    42,
		TotalProducts: 30,
		TotalReviews:  55,
		Accepted:      20,
		Pending:       7,
		Rejected:      3,
		Reported:      2,
	}, stats)
}

func TestOwnerStatsScopedToEmail(t *testing.T) {
	products := &fakeProductRepo{
		countFn: func(ctx context.Context, f db.ProductFilter) (int64, error) {
			assert.Equal(t, "alice@example.com", f.OwnerEmail)
			if f.Reported == models.FlagYes {
				return 1, nil
			}
			return 5, nil
		},
		statusBreakdownFn: func(ctx context.Context, ownerEmail string) (map[string]int64, error) {
			assert.Equal(t, "alice@example.com", ownerEmail)
			return map[string]int64{models.StatusAccepted: 4, models.StatusPending: 1}, nil
		},
	}
	svc := NewStatsService(&fakeUserRepo{}, products, &fakeReviewRepo{})

	stats, err := svc.Owner(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, &models.OwnerStats{
		TotalProducts: 5,
		Accepted:      4,
		Pending:       1,
		Rejected:      0,
		Reported:      1,
	}, stats)
}
