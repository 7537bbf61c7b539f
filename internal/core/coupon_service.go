package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

// ErrCouponNotFound is returned when no usable coupon exists for a code.
var ErrCouponNotFound = errors.New("coupon not found")

const expiryDateLayout = "2006-01-02"

type couponService struct {
	coupons db.CouponRepository
	now     func() time.Time
}

// NewCouponService creates a CouponService over the coupon repository.
func NewCouponService(coupons db.CouponRepository) CouponService {
	return &couponService{coupons: coupons, now: time.Now}
}

// couponExpired reports whether a stated expiry date has passed the
// one-day grace window: a coupon stays valid through its expiry date
// plus one day. Unparsable dates are treated as expired.
func couponExpired(expiryDate string, now time.Time) bool {
	exp, err := time.Parse(expiryDateLayout, expiryDate)
	if err != nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := today.AddDate(0, 0, -1)
	return exp.Before(cutoff)
}

// Validate implements the three-way contract: missing or zero-discount
// coupon → ErrCouponNotFound, expired → explicit zero discount, valid →
// the stated discount.
func (s *couponService) Validate(ctx context.Context, code string) (*models.CouponDiscount, error) {
	c, err := s.coupons.GetByCode(ctx, code)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up coupon %q: %w", code, err)
	}
	if c.DiscountAmount <= 0 {
		return nil, ErrCouponNotFound
	}
	if couponExpired(c.ExpiryDate, s.now().UTC()) {
		return &models.CouponDiscount{Discount: 0}, nil
	}
	return &models.CouponDiscount{Discount: c.DiscountAmount}, nil
}

// Active lists every coupon whose expiry has not passed, for display.
func (s *couponService) Active(ctx context.Context) ([]models.Coupon, error) {
	all, err := s.coupons.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	active := make([]models.Coupon, 0, len(all))
	for _, c := range all {
		if !couponExpired(c.ExpiryDate, now) {
			active = append(active, c)
		}
	}
	return active, nil
}

func (s *couponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.coupons.List(ctx)
}

func (s *couponService) Create(ctx context.Context, req models.CouponRequest) (string, error) {
	if _, err := time.Parse(expiryDateLayout, req.ExpiryDate); err != nil {
		return "", fmt.Errorf("invalid expiry date %q: %w", req.ExpiryDate, err)
	}
	return s.coupons.Create(ctx, &models.Coupon{
		Code:           req.Code,
		DiscountAmount: req.DiscountAmount,
		ExpiryDate:     req.ExpiryDate,
		Description:    req.Description,
	})
}

func (s *couponService) Update(ctx context.Context, id string, req models.UpdateCouponRequest) error {
	if req.ExpiryDate != nil {
		if _, err := time.Parse(expiryDateLayout, *req.ExpiryDate); err != nil {
			return fmt.Errorf("invalid expiry date %q: %w", *req.ExpiryDate, err)
		}
	}
	return s.coupons.Update(ctx, id, req)
}

func (s *couponService) Delete(ctx context.Context, id string) error {
	return s.coupons.Delete(ctx, id)
}
