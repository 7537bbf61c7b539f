package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Vote type values.
const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// Vote records a single upvote or downvote. ProductID is stored as the
// hex text of the product's object id, so the vote side of the
// product/vote join is always a string comparison.
type Vote struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserEmail string             `json:"userEmail" bson:"userEmail"`
	ProductID string             `json:"productId" bson:"productId"`
	Type      string             `json:"type" bson:"type"`
}

// VoteTally is the per-product (optionally per-user) vote count result.
type VoteTally struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
}

// RankedProduct is a product annotated with its computed vote totals,
// as returned by the trending ranker.
type RankedProduct struct {
	Product   `bson:",inline"`
	Upvotes   int64 `json:"prodUpvotes" bson:"prodUpvotes"`
	Downvotes int64 `json:"prodDownvotes" bson:"prodDownvotes"`
	NetScore  int64 `json:"netScore" bson:"netScore"`
}
