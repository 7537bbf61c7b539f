package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Slider is a homepage banner entry managed by admins.
type Slider struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title string             `json:"title" bson:"title"`
	Image string             `json:"image" bson:"image"`
	Link  string             `json:"link,omitempty" bson:"link,omitempty"`
}
