package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"productpulse-backend-go/internal/config"
)

// Connect opens a client against the configured deployment and verifies
// it with a ping before returning.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// Collections bundles the per-entity collection handles. It is built once
// at startup and injected into the repositories.
type Collections struct {
	Users    *mongo.Collection
	Products *mongo.Collection
	Votes    *mongo.Collection
	Reviews  *mongo.Collection
	Coupons  *mongo.Collection
	Payments *mongo.Collection
	Reports  *mongo.Collection
	Sliders  *mongo.Collection
}

// NewCollections resolves the collection handles on the named database.
func NewCollections(client *mongo.Client, database string) *Collections {
	d := client.Database(database)
	return &Collections{
		Users:    d.Collection("users"),
		Products: d.Collection("products"),
		Votes:    d.Collection("votes"),
		Reviews:  d.Collection("reviews"),
		Coupons:  d.Collection("coupons"),
		Payments: d.Collection("payments"),
		Reports:  d.Collection("reports"),
		Sliders:  d.Collection("sliders"),
	}
}
