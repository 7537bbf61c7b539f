package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"productpulse-backend-go/internal/models"
)

type mongoSliderRepository struct {
	col *mongo.Collection
}

// NewMongoSliderRepository creates a slider repository over the given collection.
func NewMongoSliderRepository(col *mongo.Collection) SliderRepository {
	return &mongoSliderRepository{col: col}
}

func (r *mongoSliderRepository) List(ctx context.Context) ([]models.Slider, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list sliders: %w", err)
	}
	defer cur.Close(ctx)
	var sliders []models.Slider
	if err := cur.All(ctx, &sliders); err != nil {
		return nil, fmt.Errorf("decode sliders: %w", err)
	}
	return sliders, nil
}

func (r *mongoSliderRepository) Create(ctx context.Context, s *models.Slider) (string, error) {
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return "", fmt.Errorf("insert slider: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *mongoSliderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete slider %q: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
