package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"productpulse-backend-go/internal/models"
)

type mongoCouponRepository struct {
	col *mongo.Collection
}

// NewMongoCouponRepository creates a coupon repository over the given collection.
func NewMongoCouponRepository(col *mongo.Collection) CouponRepository {
	return &mongoCouponRepository{col: col}
}

func (r *mongoCouponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var c models.Coupon
	err := r.col.FindOne(ctx, bson.M{"code": code}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find coupon %q: %w", code, err)
	}
	return &c, nil
}

func (r *mongoCouponRepository) List(ctx context.Context) ([]models.Coupon, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer cur.Close(ctx)
	var coupons []models.Coupon
	if err := cur.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("decode coupons: %w", err)
	}
	return coupons, nil
}

func (r *mongoCouponRepository) Create(ctx context.Context, c *models.Coupon) (string, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return "", fmt.Errorf("insert coupon: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *mongoCouponRepository) Update(ctx context.Context, id string, req models.UpdateCouponRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	set := bson.M{}
	if req.Code != nil {
		set["code"] = *req.Code
	}
	if req.DiscountAmount != nil {
		set["discountAmount"] = *req.DiscountAmount
	}
	if req.ExpiryDate != nil {
		set["expiryDate"] = *req.ExpiryDate
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if len(set) == 0 {
		return nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update coupon %q: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCouponRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete coupon %q: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
