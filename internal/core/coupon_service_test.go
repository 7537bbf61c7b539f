package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productpulse-backend-go/internal/models"
)

func newCouponServiceAt(t *testing.T, repo *fakeCouponRepo, now time.Time) *couponService {
	t.Helper()
	svc, ok := NewCouponService(repo).(*couponService)
	require.True(t, ok)
	svc.now = func() time.Time { return now }
	return svc
}

func couponWithExpiry(code string, discount int, expiry string) *models.Coupon {
	return &models.Coupon{Code: code, DiscountAmount: discount, ExpiryDate: expiry}
}

func TestValidateUnknownCodeReturnsNotFound(t *testing.T) {
	svc := newCouponServiceAt(t, &fakeCouponRepo{}, time.Now())

	_, err := svc.Validate(context.Background(), "NOPE")

	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestValidateZeroDiscountCouponIsNotFound(t *testing.T) {
	repo := &fakeCouponRepo{getByCodeFn: func(ctx context.Context, code string) (*models.Coupon, error) {
		return couponWithExpiry(code, 0, "2099-01-01"), nil
	}}
	svc := newCouponServiceAt(t, repo, time.Now())

	_, err := svc.Validate(context.Background(), "FREEBIE")

	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestValidateCouponExpiryGraceWindow(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	tests := []struct {
		name         string
		expiry       string
		wantDiscount int
	}{
		{"expires today", "2026-03-10", 25},
		{"expired yesterday, still in grace", "2026-03-09", 25},
		{"expired two days ago", "2026-03-08", 0},
		{"far future", "2027-01-01", 25},
		{"unparsable date", "soon", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCouponRepo{getByCodeFn: func(ctx context.Context, code string) (*models.Coupon, error) {
				return couponWithExpiry(code, 25, tc.expiry), nil
			}}
			svc := newCouponServiceAt(t, repo, now)

			got, err := svc.Validate(context.Background(), "SAVE25")

			require.NoError(t, err)
			assert.Equal(t, tc.wantDiscount, got.Discount)
		})
	}
}

func TestActiveFiltersExpiredCoupons(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	repo := &fakeCouponRepo{listFn: func(ctx context.Context) ([]models.Coupon, error) {
		return []models.Coupon{
			*couponWithExpiry("LIVE", 10, "2026-04-01"),
			*couponWithExpiry("DEAD", 15, "2026-01-01"),
			*couponWithExpiry("EDGE", 20, "2026-03-09"),
		}, nil
	}}
	svc := newCouponServiceAt(t, repo, now)

	active, err := svc.Active(context.Background())

	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "LIVE", active[0].Code)
	assert.Equal(t, "EDGE", active[1].Code)
}

func TestCreateCouponRejectsBadExpiryDate(t *testing.T) {
	created := false
	repo := &fakeCouponRepo{createFn: func(ctx context.Context, c *models.Coupon) (string, error) {
		created = true
		return "id", nil
	}}
	svc := newCouponServiceAt(t, repo, time.Now())

	_, err := svc.Create(context.Background(), models.CouponRequest{
		Code:           "BAD",
		DiscountAmount: 5,
		ExpiryDate:     "01/02/2026",
	})

	assert.Error(t, err)
	assert.False(t, created)
}

func TestUpdateCouponValidatesExpiryWhenPresent(t *testing.T) {
	repo := &fakeCouponRepo{}
	svc := newCouponServiceAt(t, repo, time.Now())

	bad := "not-a-date"
	err := svc.Update(context.Background(), "id", models.UpdateCouponRequest{ExpiryDate: &bad})
	assert.Error(t, err)

	good := "2026-12-31"
	err = svc.Update(context.Background(), "id", models.UpdateCouponRequest{ExpiryDate: &good})
	assert.NoError(t, err)
}
