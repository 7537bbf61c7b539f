package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"productpulse-backend-go/internal/models"
)

type mongoProductRepository struct {
	col *mongo.Collection
}

// NewMongoProductRepository creates a product repository over the given collection.
func NewMongoProductRepository(col *mongo.Collection) ProductRepository {
	return &mongoProductRepository{col: col}
}

func (f ProductFilter) query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Featured != "" {
		q["featured"] = f.Featured
	}
	if f.Reported != "" {
		q["reported"] = f.Reported
	}
	if f.OwnerEmail != "" {
		q["ownerEmail"] = f.OwnerEmail
	}
	if f.TagSearch != "" {
		q["tags"] = bson.M{"$regex": f.TagSearch, "$options": "i"}
	}
	return q
}

func (r *mongoProductRepository) Create(ctx context.Context, p *models.Product) (string, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var p models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %q: %w", id, err)
	}
	return &p, nil
}

func (r *mongoProductRepository) Find(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Skip > 0 {
		opts.SetSkip(f.Skip)
	}
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	cur, err := r.col.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *mongoProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	return r.Find(ctx, ProductFilter{})
}

// ListQueue returns every product sorted so pending submissions come
// first ("pending" > "accepted" > "Rejected" in byte order).
func (r *mongoProductRepository) ListQueue(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "status", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list queue: %w", err)
	}
	defer cur.Close(ctx)
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode queue: %w", err)
	}
	return products, nil
}

func (r *mongoProductRepository) UpdateDetails(ctx context.Context, id string, req models.UpdateProductRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Image != nil {
		set["image"] = *req.Image
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.ExternalLink != nil {
		set["externalLink"] = *req.ExternalLink
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}
	if len(set) == 0 {
		return nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update product %q: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProductRepository) setField(ctx context.Context, id, field, value string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("set %s on product %q: %w", field, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProductRepository) SetStatus(ctx context.Context, id, status string) error {
	return r.setField(ctx, id, "status", status)
}

func (r *mongoProductRepository) SetFeatured(ctx context.Context, id, flag string) error {
	return r.setField(ctx, id, "featured", flag)
}

func (r *mongoProductRepository) SetReported(ctx context.Context, id, flag string) error {
	return r.setField(ctx, id, "reported", flag)
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product %q: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProductRepository) Count(ctx context.Context, f ProductFilter) (int64, error) {
	return r.col.CountDocuments(ctx, f.query())
}

// StatusBreakdown groups products by status in a single aggregation,
// optionally scoped to one owner.
func (r *mongoProductRepository) StatusBreakdown(ctx context.Context, ownerEmail string) (map[string]int64, error) {
	match := bson.M{}
	if ownerEmail != "" {
		match["ownerEmail"] = ownerEmail
	}
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}
	defer cur.Close(ctx)
	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode status breakdown: %w", err)
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}
