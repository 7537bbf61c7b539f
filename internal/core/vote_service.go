package core

import (
	"context"
	"errors"
	"fmt"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

// ErrInvalidVoteType is returned when a vote submission carries a type
// other than "upvote" or "downvote".
var ErrInvalidVoteType = errors.New("invalid vote type")

type voteService struct {
	votes db.VoteRepository
}

// NewVoteService creates a VoteService over the vote repository.
func NewVoteService(votes db.VoteRepository) VoteService {
	return &voteService{votes: votes}
}

func (s *voteService) Tally(ctx context.Context, productID, userEmail string) (models.VoteTally, error) {
	up, err := s.votes.Count(ctx, productID, userEmail, models.VoteUp)
	if err != nil {
		return models.VoteTally{}, fmt.Errorf("count upvotes: %w", err)
	}
	down, err := s.votes.Count(ctx, productID, userEmail, models.VoteDown)
	if err != nil {
		return models.VoteTally{}, fmt.Errorf("count downvotes: %w", err)
	}
	return models.VoteTally{Upvotes: up, Downvotes: down}, nil
}

func (s *voteService) Append(ctx context.Context, userEmail string, req models.SubmitVoteRequest) error {
	v, err := buildVote(userEmail, req)
	if err != nil {
		return err
	}
	return s.votes.Insert(ctx, v)
}

func (s *voteService) Upsert(ctx context.Context, userEmail string, req models.SubmitVoteRequest) error {
	v, err := buildVote(userEmail, req)
	if err != nil {
		return err
	}
	return s.votes.Upsert(ctx, v)
}

func buildVote(userEmail string, req models.SubmitVoteRequest) (*models.Vote, error) {
	if req.Type != models.VoteUp && req.Type != models.VoteDown {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVoteType, req.Type)
	}
	return &models.Vote{
		UserEmail: userEmail,
		ProductID: req.ProductID,
		Type:      req.Type,
	}, nil
}
