package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"productpulse-backend-go/internal/models"
)

type mongoReportRepository struct {
	col *mongo.Collection
}

// NewMongoReportRepository creates a report repository over the given collection.
func NewMongoReportRepository(col *mongo.Collection) ReportRepository {
	return &mongoReportRepository{col: col}
}

func (r *mongoReportRepository) Create(ctx context.Context, rep *models.Report) error {
	_, err := r.col.InsertOne(ctx, rep)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *mongoReportRepository) List(ctx context.Context) ([]models.Report, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer cur.Close(ctx)
	var reports []models.Report
	if err := cur.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return reports, nil
}

func (r *mongoReportRepository) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"productId": productID})
	if err != nil {
		return 0, fmt.Errorf("delete reports for %q: %w", productID, err)
	}
	return res.DeletedCount, nil
}
