package db

import (
	"context"
	"errors"

	"productpulse-backend-go/internal/models"
)

// ErrNotFound is returned by repositories when a query matches no document.
var ErrNotFound = errors.New("document not found")

// ProductFilter narrows product listings.
type ProductFilter struct {
	Status     string // exact match when non-empty
	Featured   string // "yes"/"no" when non-empty
	Reported   string
	OwnerEmail string
	TagSearch  string // case-insensitive regex over the tag set
	Skip       int64
	Limit      int64
}

// UserRepository defines user data storage operations.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
	UpdateRole(ctx context.Context, email, role string) error
	SetSubscribed(ctx context.Context, email string) error
	Count(ctx context.Context) (int64, error)
}

// ProductRepository defines product data storage operations.
type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) (string, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Find(ctx context.Context, f ProductFilter) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	ListQueue(ctx context.Context) ([]models.Product, error)
	UpdateDetails(ctx context.Context, id string, req models.UpdateProductRequest) error
	SetStatus(ctx context.Context, id, status string) error
	SetFeatured(ctx context.Context, id, flag string) error
	SetReported(ctx context.Context, id, flag string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, f ProductFilter) (int64, error)
	StatusBreakdown(ctx context.Context, ownerEmail string) (map[string]int64, error)
}

// VoteRepository defines vote data storage operations.
type VoteRepository interface {
	Insert(ctx context.Context, v *models.Vote) error
	Upsert(ctx context.Context, v *models.Vote) error
	Count(ctx context.Context, productID, userEmail, voteType string) (int64, error)
	ListAll(ctx context.Context) ([]models.Vote, error)
}

// ReviewRepository defines review data storage operations.
type ReviewRepository interface {
	Upsert(ctx context.Context, r *models.Review) error
	ListByProduct(ctx context.Context, productID string) ([]models.Review, error)
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// CouponRepository defines coupon data storage operations.
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	List(ctx context.Context) ([]models.Coupon, error)
	Create(ctx context.Context, c *models.Coupon) (string, error)
	Update(ctx context.Context, id string, req models.UpdateCouponRequest) error
	Delete(ctx context.Context, id string) error
}

// PaymentRepository defines payment log storage operations.
type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	ListByUser(ctx context.Context, email string) ([]models.Payment, error)
}

// ReportRepository defines report storage operations.
type ReportRepository interface {
	Create(ctx context.Context, r *models.Report) error
	List(ctx context.Context) ([]models.Report, error)
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}

// SliderRepository defines slider storage operations.
type SliderRepository interface {
	List(ctx context.Context) ([]models.Slider, error)
	Create(ctx context.Context, s *models.Slider) (string, error)
	Delete(ctx context.Context, id string) error
}
