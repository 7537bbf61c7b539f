package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"productpulse-backend-go/internal/models"
)

type mongoPaymentRepository struct {
	col *mongo.Collection
}

// NewMongoPaymentRepository creates a payment repository over the given collection.
func NewMongoPaymentRepository(col *mongo.Collection) PaymentRepository {
	return &mongoPaymentRepository{col: col}
}

func (r *mongoPaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	_, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *mongoPaymentRepository) ListByUser(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := r.col.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("list payments for %q: %w", email, err)
	}
	defer cur.Close(ctx)
	var payments []models.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}
