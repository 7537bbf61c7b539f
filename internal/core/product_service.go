package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

// Product lifecycle errors.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("caller does not own this product")
	ErrInvalidStatus   = errors.New("invalid product status")
)

type productService struct {
	products db.ProductRepository
	reviews  db.ReviewRepository
	reports  db.ReportRepository
}

// NewProductService creates a ProductService. The review and report
// repositories are needed for cascade deletion.
func NewProductService(products db.ProductRepository, reviews db.ReviewRepository, reports db.ReportRepository) ProductService {
	return &productService{products: products, reviews: reviews, reports: reports}
}

func (s *productService) Submit(ctx context.Context, ownerEmail string, req models.CreateProductRequest) (string, error) {
	p := &models.Product{
		Name:         req.Name,
		Image:        req.Image,
		Description:  req.Description,
		ExternalLink: req.ExternalLink,
		Tags:         req.Tags,
		OwnerName:    req.OwnerName,
		OwnerEmail:   ownerEmail,
		Status:       models.StatusPending,
		Featured:     models.FlagNo,
		Reported:     models.FlagNo,
		CreatedAt:    time.Now(),
	}
	return s.products.Create(ctx, p)
}

func (s *productService) Get(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (s *productService) ListAccepted(ctx context.Context, search string, page, pageSize int64) ([]models.Product, error) {
	f := db.ProductFilter{Status: models.StatusAccepted, TagSearch: search}
	if pageSize > 0 {
		f.Limit = pageSize
		if page > 0 {
			f.Skip = page * pageSize
		}
	}
	return s.products.Find(ctx, f)
}

func (s *productService) CountAccepted(ctx context.Context, search string) (int64, error) {
	return s.products.Count(ctx, db.ProductFilter{Status: models.StatusAccepted, TagSearch: search})
}

func (s *productService) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Product, error) {
	return s.products.Find(ctx, db.ProductFilter{OwnerEmail: ownerEmail})
}

func (s *productService) ListQueue(ctx context.Context) ([]models.Product, error) {
	return s.products.ListQueue(ctx)
}

func (s *productService) ListReported(ctx context.Context) ([]models.Product, error) {
	return s.products.Find(ctx, db.ProductFilter{Reported: models.FlagYes})
}

// UpdateOwn lets a user edit their own submission. Moderation fields
// (status, featured, reported) are not reachable from here.
func (s *productService) UpdateOwn(ctx context.Context, callerEmail, id string, req models.UpdateProductRequest) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.OwnerEmail != callerEmail {
		return ErrNotOwner
	}
	return s.products.UpdateDetails(ctx, id, req)
}

func (s *productService) SetStatus(ctx context.Context, id, status string) error {
	if status != models.StatusAccepted && status != models.StatusRejected && status != models.StatusPending {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	err := s.products.SetStatus(ctx, id, status)
	if errors.Is(err, db.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *productService) SetFeatured(ctx context.Context, id, flag string) error {
	if flag != models.FlagYes {
		flag = models.FlagNo
	}
	err := s.products.SetFeatured(ctx, id, flag)
	if errors.Is(err, db.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *productService) MarkReported(ctx context.Context, id string) error {
	err := s.products.SetReported(ctx, id, models.FlagYes)
	if errors.Is(err, db.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

// Delete removes the product, then its reviews and reports. The cascade
// is best-effort: a failure partway leaves orphaned child records, as
// there is no multi-document transaction.
func (s *productService) Delete(ctx context.Context, id string) error {
	err := s.products.Delete(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}
	if _, err := s.reviews.DeleteByProduct(ctx, id); err != nil {
		return fmt.Errorf("product deleted, review cascade failed: %w", err)
	}
	if _, err := s.reports.DeleteByProduct(ctx, id); err != nil {
		return fmt.Errorf("product deleted, report cascade failed: %w", err)
	}
	return nil
}
