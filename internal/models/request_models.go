package models

// RegisterUserRequest is the body for creating a user on first sign-in.
type RegisterUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// TokenRequest is the body for the token issuance endpoint.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateProductRequest is the body for submitting a new product.
type CreateProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Image        string   `json:"image,omitempty"`
	Description  string   `json:"description,omitempty"`
	ExternalLink string   `json:"externalLink,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	OwnerName    string   `json:"ownerName,omitempty"`
}

// UpdateProductRequest is the body for an owner editing a product.
// Pointers distinguish "clear this field" from "leave it alone".
type UpdateProductRequest struct {
	Name         *string   `json:"name,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ExternalLink *string   `json:"externalLink,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
}

// SubmitVoteRequest is the body for both vote write endpoints.
type SubmitVoteRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Type      string `json:"type" binding:"required"`
}

// SubmitReviewRequest is the body for posting a review.
type SubmitReviewRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	UserName  string  `json:"userName,omitempty"`
	UserPhoto string  `json:"userPhoto,omitempty"`
	Rating    float64 `json:"rating" binding:"required"`
	Comment   string  `json:"comment,omitempty"`
}

// SubmitReportRequest is the body for reporting a product.
type SubmitReportRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Reason    string `json:"reason,omitempty"`
}

// CouponRequest is the body for creating a coupon.
type CouponRequest struct {
	Code           string `json:"code" binding:"required"`
	DiscountAmount int    `json:"discountAmount" binding:"required"`
	ExpiryDate     string `json:"expiryDate" binding:"required"` // YYYY-MM-DD
	Description    string `json:"description,omitempty"`
}

// UpdateCouponRequest is the body for editing a coupon.
type UpdateCouponRequest struct {
	Code           *string `json:"code,omitempty"`
	DiscountAmount *int    `json:"discountAmount,omitempty"`
	ExpiryDate     *string `json:"expiryDate,omitempty"`
	Description    *string `json:"description,omitempty"`
}

// SliderRequest is the body for adding a slider entry.
type SliderRequest struct {
	Title string `json:"title" binding:"required"`
	Image string `json:"image" binding:"required"`
	Link  string `json:"link,omitempty"`
}

// RecordPaymentRequest is the body for logging a completed payment.
type RecordPaymentRequest struct {
	Amount        int64  `json:"amount" binding:"required"`
	TransactionID string `json:"transactionId" binding:"required"`
}

// CreatePaymentIntentRequest carries the charge amount in cents.
type CreatePaymentIntentRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// UpdateRoleRequest is the body for an admin changing a user's role.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
