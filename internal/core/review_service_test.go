package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productpulse-backend-go/internal/models"
)

func TestSubmitReviewUpsertsWithCallerEmail(t *testing.T) {
	var upserted *models.Review
	reviews := &fakeReviewRepo{upsertFn: func(ctx context.Context, r *models.Review) error {
		upserted = r
		return nil
	}}
	svc := NewReviewService(reviews)

	err := svc.Submit(context.Background(), "alice@example.com", models.SubmitReviewRequest{
		ProductID: "p1",
		Rating:    4.5,
		Comment:   "solid",
	})

	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, "alice@example.com", upserted.UserEmail)
	assert.Equal(t, "p1", upserted.ProductID)
	assert.Equal(t, 4.5, upserted.Rating)
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	reviews := &fakeReviewRepo{upsertFn: func(ctx context.Context, r *models.Review) error {
		t.Fatal("upsert should not be reached")
		return nil
	}}
	svc := NewReviewService(reviews)

	err := svc.Submit(context.Background(), "a@b.c", models.SubmitReviewRequest{ProductID: "p1", Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	err = svc.Submit(context.Background(), "a@b.c", models.SubmitReviewRequest{ProductID: "p1", Rating: 5.5})
	assert.ErrorIs(t, err, ErrInvalidRating)
}
