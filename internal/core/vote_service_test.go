package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productpulse-backend-go/internal/models"
)

func TestTallyCountsBothDirections(t *testing.T) {
	repo := &fakeVoteRepo{countFn: func(ctx context.Context, productID, userEmail, voteType string) (int64, error) {
		assert.Equal(t, "p1", productID)
		assert.Equal(t, "alice@example.com", userEmail)
		switch voteType {
		case models.VoteUp:
			return 7, nil
		case models.VoteDown:
			return 2, nil
		}
		t.Fatalf("unexpected vote type %q", voteType)
		return 0, nil
	}}
	svc := NewVoteService(repo)

	tally, err := svc.Tally(context.Background(), "p1", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.VoteTally{Upvotes: 7, Downvotes: 2}, tally)
}

func TestAppendInsertsVote(t *testing.T) {
	var inserted *models.Vote
	repo := &fakeVoteRepo{insertFn: func(ctx context.Context, v *models.Vote) error {
		inserted = v
		return nil
	}}
	svc := NewVoteService(repo)

	err := svc.Append(context.Background(), "alice@example.com", models.SubmitVoteRequest{
		ProductID: "p1",
		Type:      models.VoteUp,
	})

	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, "alice@example.com", inserted.UserEmail)
	assert.Equal(t, "p1", inserted.ProductID)
	assert.Equal(t, models.VoteUp, inserted.Type)
}

func TestUpsertReplacesVote(t *testing.T) {
	var upserted *models.Vote
	repo := &fakeVoteRepo{upsertFn: func(ctx context.Context, v *models.Vote) error {
		upserted = v
		return nil
	}}
	svc := NewVoteService(repo)

	err := svc.Upsert(context.Background(), "bob@example.com", models.SubmitVoteRequest{
		ProductID: "p2",
		Type:      models.VoteDown,
	})

	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, models.VoteDown, upserted.Type)
}

func TestVoteWritesRejectInvalidType(t *testing.T) {
	repo := &fakeVoteRepo{
		insertFn: func(ctx context.Context, v *models.Vote) error {
			t.Fatal("insert should not be reached")
			return nil
		},
		upsertFn: func(ctx context.Context, v *models.Vote) error {
			t.Fatal("upsert should not be reached")
			return nil
		},
	}
	svc := NewVoteService(repo)
	req := models.SubmitVoteRequest{ProductID: "p1", Type: "sideways"}

	assert.ErrorIs(t, svc.Append(context.Background(), "a@b.c", req), ErrInvalidVoteType)
	assert.ErrorIs(t, svc.Upsert(context.Background(), "a@b.c", req), ErrInvalidVoteType)
}
