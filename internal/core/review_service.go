package core

import (
	"context"
	"errors"
	"fmt"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

// ErrInvalidRating is returned for ratings outside the 1..5 range.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type reviewService struct {
	reviews db.ReviewRepository
}

// NewReviewService creates a ReviewService over the review repository.
func NewReviewService(reviews db.ReviewRepository) ReviewService {
	return &reviewService{reviews: reviews}
}

// Submit upserts the caller's review for the product, so a user revising
// their review replaces the old one.
func (s *reviewService) Submit(ctx context.Context, userEmail string, req models.SubmitReviewRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("%w: %v", ErrInvalidRating, req.Rating)
	}
	return s.reviews.Upsert(ctx, &models.Review{
		UserEmail: userEmail,
		ProductID: req.ProductID,
		UserName:  req.UserName,
		UserPhoto: req.UserPhoto,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
}

func (s *reviewService) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}
