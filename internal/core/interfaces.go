package core

import (
	"context"

	"productpulse-backend-go/internal/models"
)

// TokenService issues and verifies the bearer tokens used on protected
// routes.
type TokenService interface {
	Issue(email string) (string, error)
	Verify(token string) (*Claims, error)
}

// UserService defines user-related operations.
type UserService interface {
	// Register creates the user unless one with the same email exists.
	// The bool reports whether a document was created.
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	SetRole(ctx context.Context, email, role string) error
	Subscribe(ctx context.Context, email string) error
}

// VoteService counts and records votes.
type VoteService interface {
	// Tally counts matching upvote and downvote rows. userEmail narrows
	// the count when non-empty. Unknown product ids count zero.
	Tally(ctx context.Context, productID, userEmail string) (models.VoteTally, error)
	// Append blindly inserts a vote row (no dedup).
	Append(ctx context.Context, userEmail string, req models.SubmitVoteRequest) error
	// Upsert replaces the user's prior vote for the product, if any.
	Upsert(ctx context.Context, userEmail string, req models.SubmitVoteRequest) error
}

// RankingService computes the trending and featured product listings.
type RankingService interface {
	Trending(ctx context.Context, limit int) ([]models.RankedProduct, error)
	Featured(ctx context.Context) ([]models.Product, error)
}

// CouponService validates and manages coupons.
type CouponService interface {
	// Validate returns the discount for a code. ErrCouponNotFound means
	// no usable coupon exists; an expired coupon yields discount 0.
	Validate(ctx context.Context, code string) (*models.CouponDiscount, error)
	Active(ctx context.Context) ([]models.Coupon, error)
	List(ctx context.Context) ([]models.Coupon, error)
	Create(ctx context.Context, req models.CouponRequest) (string, error)
	Update(ctx context.Context, id string, req models.UpdateCouponRequest) error
	Delete(ctx context.Context, id string) error
}

// StatsService produces the moderation/admin dashboard snapshots.
type StatsService interface {
	Site(ctx context.Context) (*models.SiteStats, error)
	Owner(ctx context.Context, email string) (*models.OwnerStats, error)
}

// ProductService covers the product lifecycle: submission, listing,
// owner edits, moderation, and cascade deletion.
type ProductService interface {
	Submit(ctx context.Context, ownerEmail string, req models.CreateProductRequest) (string, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	ListAccepted(ctx context.Context, search string, page, pageSize int64) ([]models.Product, error)
	CountAccepted(ctx context.Context, search string) (int64, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.Product, error)
	ListQueue(ctx context.Context) ([]models.Product, error)
	ListReported(ctx context.Context) ([]models.Product, error)
	UpdateOwn(ctx context.Context, callerEmail, id string, req models.UpdateProductRequest) error
	SetStatus(ctx context.Context, id, status string) error
	SetFeatured(ctx context.Context, id, flag string) error
	MarkReported(ctx context.Context, id string) error
	// Delete removes the product and best-effort deletes its reviews and
	// reports. The steps are not atomic.
	Delete(ctx context.Context, id string) error
}

// ReviewService records and lists product reviews.
type ReviewService interface {
	Submit(ctx context.Context, userEmail string, req models.SubmitReviewRequest) error
	ListByProduct(ctx context.Context, productID string) ([]models.Review, error)
}

// ReportService records and lists product reports.
type ReportService interface {
	Submit(ctx context.Context, userEmail string, req models.SubmitReportRequest) error
	List(ctx context.Context) ([]models.Report, error)
}

// SliderService manages homepage slider entries.
type SliderService interface {
	List(ctx context.Context) ([]models.Slider, error)
	Create(ctx context.Context, req models.SliderRequest) (string, error)
	Delete(ctx context.Context, id string) error
}

// BillingService creates payment intents with the payment gateway and
// logs completed payments.
type BillingService interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
	RecordPayment(ctx context.Context, userEmail string, req models.RecordPaymentRequest) error
}
