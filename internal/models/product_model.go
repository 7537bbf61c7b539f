package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product status values. The odd capitalisation of "Rejected" is part of
// the stored data contract and must not be normalised.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "Rejected"
)

// Flag values used for the featured and reported fields.
const (
	FlagYes = "yes"
	FlagNo  = "no"
)

// Product is a user-submitted listing. It starts in "pending" status and
// is moved through the lifecycle by moderators.
type Product struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	ExternalLink string             `json:"externalLink,omitempty" bson:"externalLink,omitempty"`
	Tags         []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	OwnerName    string             `json:"ownerName,omitempty" bson:"ownerName,omitempty"`
	OwnerEmail   string             `json:"ownerEmail" bson:"ownerEmail"`
	Status       string             `json:"status" bson:"status"`
	Featured     string             `json:"featured" bson:"featured"`
	Reported     string             `json:"reported" bson:"reported"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}
