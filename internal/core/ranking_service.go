package core

import (
	"context"
	"fmt"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

// DefaultTrendingLimit is used when a caller asks for trending products
// without a limit.
const DefaultTrendingLimit = 8

type rankingService struct {
	products db.ProductRepository
	votes    db.VoteRepository
}

// NewRankingService creates a RankingService over the product and vote
// repositories.
func NewRankingService(products db.ProductRepository, votes db.VoteRepository) RankingService {
	return &rankingService{products: products, votes: votes}
}

// Trending reads the full product and vote sets and ranks them in
// memory. No status filter is applied here; pending and rejected
// products rank alongside accepted ones.
func (s *rankingService) Trending(ctx context.Context, limit int) ([]models.RankedProduct, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products for ranking: %w", err)
	}
	votes, err := s.votes.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load votes for ranking: %w", err)
	}
	return rankProducts(products, votes, limit), nil
}

// Featured is an exact-match query, not a ranking: accepted products
// carrying the featured flag.
func (s *rankingService) Featured(ctx context.Context) ([]models.Product, error) {
	return s.products.Find(ctx, db.ProductFilter{
		Status:   models.StatusAccepted,
		Featured: models.FlagYes,
	})
}
