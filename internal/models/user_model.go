package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values stored on a user document.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// User represents a registered user. A document is created on first
// sign-in; the role is mutated only by an admin.
type User struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email"`
	Name       string             `json:"name,omitempty" bson:"name,omitempty"`
	Photo      string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role       string             `json:"role" bson:"role"`
	Subscribed string             `json:"subscribed" bson:"subscribed"` // "yes" or "no"
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
