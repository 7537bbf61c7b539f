package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"productpulse-backend-go/internal/models"
)

type mongoVoteRepository struct {
	col *mongo.Collection
}

// NewMongoVoteRepository creates a vote repository over the given collection.
func NewMongoVoteRepository(col *mongo.Collection) VoteRepository {
	return &mongoVoteRepository{col: col}
}

// Insert appends a vote unconditionally. Duplicate votes from the same
// user for the same product are possible on this path.
func (r *mongoVoteRepository) Insert(ctx context.Context, v *models.Vote) error {
	_, err := r.col.InsertOne(ctx, v)
	if err != nil {
		return fmt.Errorf("insert vote: %w", err)
	}
	return nil
}

// Upsert replaces any prior vote by the same user on the same product,
// relying on the store's atomic update-or-insert.
func (r *mongoVoteRepository) Upsert(ctx context.Context, v *models.Vote) error {
	filter := bson.M{"userEmail": v.UserEmail, "productId": v.ProductID}
	update := bson.M{"$set": bson.M{"type": v.Type}}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}
	return nil
}

// Count tallies votes matching the given product, optional user, and
// vote type. An id that matches no stored productId simply counts zero.
func (r *mongoVoteRepository) Count(ctx context.Context, productID, userEmail, voteType string) (int64, error) {
	filter := bson.M{"productId": productID, "type": voteType}
	if userEmail != "" {
		filter["userEmail"] = userEmail
	}
	return r.col.CountDocuments(ctx, filter)
}

func (r *mongoVoteRepository) ListAll(ctx context.Context) ([]models.Vote, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer cur.Close(ctx)
	var votes []models.Vote
	if err := cur.All(ctx, &votes); err != nil {
		return nil, fmt.Errorf("decode votes: %w", err)
	}
	return votes, nil
}
