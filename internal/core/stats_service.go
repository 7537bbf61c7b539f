package core

import (
	"context"
	"fmt"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

type statsService struct {
	users    db.UserRepository
	products db.ProductRepository
	reviews  db.ReviewRepository
}

// NewStatsService creates a StatsService over the user, product, and
// review repositories.
func NewStatsService(users db.UserRepository, products db.ProductRepository, reviews db.ReviewRepository) StatsService {
	return &statsService{users: users, products: products, reviews: reviews}
}

// Site assembles the admin dashboard counts. Each count is its own
// query; the snapshot is not atomic across fields.
func (s *statsService) Site(ctx context.Context) (*models.SiteStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	products, err := s.products.Count(ctx, db.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	reviews, err := s.reviews.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}
	byStatus, err := s.products.StatusBreakdown(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("product status breakdown: %w", err)
	}
	reported, err := s.products.Count(ctx, db.ProductFilter{Reported: models.FlagYes})
	if err != nil {
		return nil, fmt.Errorf("count reported products: %w", err)
	}
	return &models.SiteStats{
		TotalUsers:    users,
		TotalProducts: products,
		TotalReviews:  reviews,
		Accepted:      byStatus[models.StatusAccepted],
		Pending:       byStatus[models.StatusPending],
		Rejected:      byStatus[models.StatusRejected],
		Reported:      reported,
	}, nil
}

// Owner is the per-user variant, scoped to one owner email.
func (s *statsService) Owner(ctx context.Context, email string) (*models.OwnerStats, error) {
	total, err := s.products.Count(ctx, db.ProductFilter{OwnerEmail: email})
	if err != nil {
		return nil, fmt.Errorf("count products for %q: %w", email, err)
	}
	byStatus, err := s.products.StatusBreakdown(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("status breakdown for %q: %w", email, err)
	}
	reported, err := s.products.Count(ctx, db.ProductFilter{OwnerEmail: email, Reported: models.FlagYes})
	if err != nil {
		return nil, fmt.Errorf("count reported for %q: %w", email, err)
	}
	return &models.OwnerStats{
		TotalProducts: total,
		Accepted:      byStatus[models.StatusAccepted],
		Pending:       byStatus[models.StatusPending],
		Rejected:      byStatus[models.StatusRejected],
		Reported:      reported,
	}, nil
}
