package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Coupon is a discount code with a stated expiry date. Validity is
// computed at read time, never stored.
type Coupon struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code"`
	DiscountAmount int                `json:"discountAmount" bson:"discountAmount"`
	ExpiryDate     string             `json:"expiryDate" bson:"expiryDate"` // YYYY-MM-DD
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
}

// CouponDiscount is the result of validating a coupon code. Discount is
// zero when the coupon exists but has expired.
type CouponDiscount struct {
	Discount int `json:"discount"`
}
