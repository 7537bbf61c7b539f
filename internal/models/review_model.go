package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's rating and comment on a product. At most one review
// exists per (userEmail, productId) pair on the upsert write path.
type Review struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserEmail string             `json:"userEmail" bson:"userEmail"`
	ProductID string             `json:"productId" bson:"productId"`
	UserName  string             `json:"userName,omitempty" bson:"userName,omitempty"`
	UserPhoto string             `json:"userPhoto,omitempty" bson:"userPhoto,omitempty"`
	Rating    float64            `json:"rating" bson:"rating"`
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
