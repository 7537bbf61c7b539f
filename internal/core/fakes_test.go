package core

import (
	"context"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

// Function-field fakes for the repository interfaces. A nil field means
// "return zero values"; tests set only what they need.

type fakeUserRepo struct {
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	createFn        func(ctx context.Context, u *models.User) error
	updateRoleFn    func(ctx context.Context, email, role string) error
	setSubscribedFn func(ctx context.Context, email string) error
	countFn         func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn == nil {
		return nil, db.ErrNotFound
	}
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, u)
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) { return nil, nil }

func (f *fakeUserRepo) UpdateRole(ctx context.Context, email, role string) error {
	if f.updateRoleFn == nil {
		return nil
	}
	return f.updateRoleFn(ctx, email, role)
}

func (f *fakeUserRepo) SetSubscribed(ctx context.Context, email string) error {
	if f.setSubscribedFn == nil {
		return nil
	}
	return f.setSubscribedFn(ctx, email)
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx)
}

type fakeProductRepo struct {
	createFn          func(ctx context.Context, p *models.Product) (string, error)
	getByIDFn         func(ctx context.Context, id string) (*models.Product, error)
	findFn            func(ctx context.Context, f db.ProductFilter) ([]models.Product, error)
	listAllFn         func(ctx context.Context) ([]models.Product, error)
	listQueueFn       func(ctx context.Context) ([]models.Product, error)
	updateDetailsFn   func(ctx context.Context, id string, req models.UpdateProductRequest) error
	setStatusFn       func(ctx context.Context, id, status string) error
	setFeaturedFn     func(ctx context.Context, id, flag string) error
	setReportedFn     func(ctx context.Context, id, flag string) error
	deleteFn          func(ctx context.Context, id string) error
	countFn           func(ctx context.Context, f db.ProductFilter) (int64, error)
	statusBreakdownFn func(ctx context.Context, ownerEmail string) (map[string]int64, error)
}

func (f *fakeProductRepo) Create(ctx context.Context, p *models.Product) (string, error) {
	if f.createFn == nil {
		return "", nil
	}
	return f.createFn(ctx, p)
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if f.getByIDFn == nil {
		return nil, db.ErrNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeProductRepo) Find(ctx context.Context, filter db.ProductFilter) ([]models.Product, error) {
	if f.findFn == nil {
		return nil, nil
	}
	return f.findFn(ctx, filter)
}

func (f *fakeProductRepo) ListAll(ctx context.Context) ([]models.Product, error) {
	if f.listAllFn == nil {
		return nil, nil
	}
	return f.listAllFn(ctx)
}

func (f *fakeProductRepo) ListQueue(ctx context.Context) ([]models.Product, error) {
	if f.listQueueFn == nil {
		return nil, nil
	}
	return f.listQueueFn(ctx)
}

func (f *fakeProductRepo) UpdateDetails(ctx context.Context, id string, req models.UpdateProductRequest) error {
	if f.updateDetailsFn == nil {
		return nil
	}
	return f.updateDetailsFn(ctx, id, req)
}

func (f *fakeProductRepo) SetStatus(ctx context.Context, id, status string) error {
	if f.setStatusFn == nil {
		return nil
	}
	return f.setStatusFn(ctx, id, status)
}

func (f *fakeProductRepo) SetFeatured(ctx context.Context, id, flag string) error {
	if f.setFeaturedFn == nil {
		return nil
	}
	return f.setFeaturedFn(ctx, id, flag)
}

func (f *fakeProductRepo) SetReported(ctx context.Context, id, flag string) error {
	if f.setReportedFn == nil {
		return nil
	}
	return f.setReportedFn(ctx, id, flag)
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeProductRepo) Count(ctx context.Context, filter db.ProductFilter) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx, filter)
}

func (f *fakeProductRepo) StatusBreakdown(ctx context.Context, ownerEmail string) (map[string]int64, error) {
	if f.statusBreakdownFn == nil {
		return map[string]int64{}, nil
	}
	return f.statusBreakdownFn(ctx, ownerEmail)
}

type fakeVoteRepo struct {
	insertFn  func(ctx context.Context, v *models.Vote) error
	upsertFn  func(ctx context.Context, v *models.Vote) error
	countFn   func(ctx context.Context, productID, userEmail, voteType string) (int64, error)
	listAllFn func(ctx context.Context) ([]models.Vote, error)
}

func (f *fakeVoteRepo) Insert(ctx context.Context, v *models.Vote) error {
	if f.insertFn == nil {
		return nil
	}
	return f.insertFn(ctx, v)
}

func (f *fakeVoteRepo) Upsert(ctx context.Context, v *models.Vote) error {
	if f.upsertFn == nil {
		return nil
	}
	return f.upsertFn(ctx, v)
}

func (f *fakeVoteRepo) Count(ctx context.Context, productID, userEmail, voteType string) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx, productID, userEmail, voteType)
}

func (f *fakeVoteRepo) ListAll(ctx context.Context) ([]models.Vote, error) {
	if f.listAllFn == nil {
		return nil, nil
	}
	return f.listAllFn(ctx)
}

type fakeReviewRepo struct {
	upsertFn          func(ctx context.Context, r *models.Review) error
	listByProductFn   func(ctx context.Context, productID string) ([]models.Review, error)
	deleteByProductFn func(ctx context.Context, productID string) (int64, error)
	countFn           func(ctx context.Context) (int64, error)
}

func (f *fakeReviewRepo) Upsert(ctx context.Context, r *models.Review) error {
	if f.upsertFn == nil {
		return nil
	}
	return f.upsertFn(ctx, r)
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	if f.listByProductFn == nil {
		return nil, nil
	}
	return f.listByProductFn(ctx, productID)
}

func (f *fakeReviewRepo) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	if f.deleteByProductFn == nil {
		return 0, nil
	}
	return f.deleteByProductFn(ctx, productID)
}

func (f *fakeReviewRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx)
}

type fakeReportRepo struct {
	createFn          func(ctx context.Context, r *models.Report) error
	listFn            func(ctx context.Context) ([]models.Report, error)
	deleteByProductFn func(ctx context.Context, productID string) (int64, error)
}

func (f *fakeReportRepo) Create(ctx context.Context, r *models.Report) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, r)
}

func (f *fakeReportRepo) List(ctx context.Context) ([]models.Report, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

func (f *fakeReportRepo) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	if f.deleteByProductFn == nil {
		return 0, nil
	}
	return f.deleteByProductFn(ctx, productID)
}

type fakeCouponRepo struct {
	getByCodeFn func(ctx context.Context, code string) (*models.Coupon, error)
	listFn      func(ctx context.Context) ([]models.Coupon, error)
	createFn    func(ctx context.Context, c *models.Coupon) (string, error)
	updateFn    func(ctx context.Context, id string, req models.UpdateCouponRequest) error
	deleteFn    func(ctx context.Context, id string) error
}

func (f *fakeCouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	if f.getByCodeFn == nil {
		return nil, db.ErrNotFound
	}
	return f.getByCodeFn(ctx, code)
}

func (f *fakeCouponRepo) List(ctx context.Context) ([]models.Coupon, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

func (f *fakeCouponRepo) Create(ctx context.Context, c *models.Coupon) (string, error) {
	if f.createFn == nil {
		return "", nil
	}
	return f.createFn(ctx, c)
}

func (f *fakeCouponRepo) Update(ctx context.Context, id string, req models.UpdateCouponRequest) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, id, req)
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

type fakePaymentRepo struct {
	createFn func(ctx context.Context, p *models.Payment) error
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, p)
}

func (f *fakePaymentRepo) ListByUser(ctx context.Context, email string) ([]models.Payment, error) {
	return nil, nil
}
