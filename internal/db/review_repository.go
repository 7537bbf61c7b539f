package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"productpulse-backend-go/internal/models"
)

type mongoReviewRepository struct {
	col *mongo.Collection
}

// NewMongoReviewRepository creates a review repository over the given collection.
func NewMongoReviewRepository(col *mongo.Collection) ReviewRepository {
	return &mongoReviewRepository{col: col}
}

// Upsert keeps at most one review per (userEmail, productId) pair.
func (r *mongoReviewRepository) Upsert(ctx context.Context, rev *models.Review) error {
	filter := bson.M{"userEmail": rev.UserEmail, "productId": rev.ProductID}
	update := bson.M{
		"$set": bson.M{
			"userName":  rev.UserName,
			"userPhoto": rev.UserPhoto,
			"rating":    rev.Rating,
			"comment":   rev.Comment,
		},
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert review: %w", err)
	}
	return nil
}

func (r *mongoReviewRepository) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, fmt.Errorf("list reviews for %q: %w", productID, err)
	}
	defer cur.Close(ctx)
	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *mongoReviewRepository) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"productId": productID})
	if err != nil {
		return 0, fmt.Errorf("delete reviews for %q: %w", productID, err)
	}
	return res.DeletedCount, nil
}

func (r *mongoReviewRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
